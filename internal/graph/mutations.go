package graph

import (
	"context"

	apierrors "memberhub/internal/errors"
	"memberhub/internal/models"
	"memberhub/internal/store"
)

// Confirmation strings returned by the delete and unsubscribe mutations.
const (
	UserDeleted    = "User deleted"
	PostDeleted    = "Post deleted"
	ProfileDeleted = "Profile deleted"
	Unsubscribed   = "Unsubscribed"
)

type CreateUserInput struct {
	Name    string
	Balance float64
}

type ChangeUserInput struct {
	Name    *string
	Balance *float64
}

type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID UUID
}

type ChangePostInput struct {
	Title   *string
	Content *string
}

type CreateProfileInput struct {
	IsMale       bool
	YearOfBirth  int32
	MemberTypeID models.MemberTypeID
	UserID       UUID
}

type ChangeProfileInput struct {
	IsMale       *bool
	YearOfBirth  *int32
	MemberTypeID *models.MemberTypeID
}

type subscriptionArgs struct {
	UserID   UUID
	AuthorID UUID
}

// mutate runs fn and drops every cached relation once it succeeds.
func (r *Resolver) mutate(ctx context.Context, fn func(*Session) error) error {
	s, err := r.session(ctx)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return s.fail(err)
	}
	s.Loaders.Reset()
	return nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Dto CreateUserInput }) (*userResolver, error) {
	var out *userResolver
	err := r.mutate(ctx, func(s *Session) error {
		u := models.User{Name: args.Dto.Name, Balance: args.Dto.Balance}
		if err := s.Store.CreateUser(ctx, &u); err != nil {
			return err
		}
		out = &userResolver{s: s, u: u}
		return nil
	})
	return out, err
}

func (r *Resolver) ChangeUser(ctx context.Context, args struct {
	ID  UUID
	Dto ChangeUserInput
}) (*userResolver, error) {
	var out *userResolver
	err := r.mutate(ctx, func(s *Session) error {
		u, err := s.Store.UpdateUser(ctx, args.ID.UUID, store.UserPatch{
			Name:    args.Dto.Name,
			Balance: args.Dto.Balance,
		})
		if err != nil {
			return err
		}
		out = &userResolver{s: s, u: *u}
		return nil
	})
	return out, err
}

func (r *Resolver) DeleteUser(ctx context.Context, args idArgs) (*string, error) {
	err := r.mutate(ctx, func(s *Session) error {
		return s.Store.DeleteUser(ctx, args.ID.UUID)
	})
	return confirm(UserDeleted, err)
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ Dto CreatePostInput }) (*postResolver, error) {
	var out *postResolver
	err := r.mutate(ctx, func(s *Session) error {
		p := models.Post{Title: args.Dto.Title, Content: args.Dto.Content, AuthorID: args.Dto.AuthorID.UUID}
		if err := s.Store.CreatePost(ctx, &p); err != nil {
			return err
		}
		out = &postResolver{s: s, p: p}
		return nil
	})
	return out, err
}

func (r *Resolver) ChangePost(ctx context.Context, args struct {
	ID  UUID
	Dto ChangePostInput
}) (*postResolver, error) {
	var out *postResolver
	err := r.mutate(ctx, func(s *Session) error {
		p, err := s.Store.UpdatePost(ctx, args.ID.UUID, store.PostPatch{
			Title:   args.Dto.Title,
			Content: args.Dto.Content,
		})
		if err != nil {
			return err
		}
		out = &postResolver{s: s, p: *p}
		return nil
	})
	return out, err
}

func (r *Resolver) DeletePost(ctx context.Context, args idArgs) (*string, error) {
	err := r.mutate(ctx, func(s *Session) error {
		return s.Store.DeletePost(ctx, args.ID.UUID)
	})
	return confirm(PostDeleted, err)
}

func (r *Resolver) CreateProfile(ctx context.Context, args struct{ Dto CreateProfileInput }) (*profileResolver, error) {
	var out *profileResolver
	err := r.mutate(ctx, func(s *Session) error {
		p := models.Profile{
			IsMale:       args.Dto.IsMale,
			YearOfBirth:  int(args.Dto.YearOfBirth),
			MemberTypeID: args.Dto.MemberTypeID,
			UserID:       args.Dto.UserID.UUID,
		}
		if err := s.Store.CreateProfile(ctx, &p); err != nil {
			return err
		}
		out = &profileResolver{s: s, p: p}
		return nil
	})
	return out, err
}

func (r *Resolver) ChangeProfile(ctx context.Context, args struct {
	ID  UUID
	Dto ChangeProfileInput
}) (*profileResolver, error) {
	var out *profileResolver
	err := r.mutate(ctx, func(s *Session) error {
		patch := store.ProfilePatch{
			IsMale:       args.Dto.IsMale,
			MemberTypeID: args.Dto.MemberTypeID,
		}
		if args.Dto.YearOfBirth != nil {
			year := int(*args.Dto.YearOfBirth)
			patch.YearOfBirth = &year
		}
		p, err := s.Store.UpdateProfile(ctx, args.ID.UUID, patch)
		if err != nil {
			return err
		}
		out = &profileResolver{s: s, p: *p}
		return nil
	})
	return out, err
}

func (r *Resolver) DeleteProfile(ctx context.Context, args idArgs) (*string, error) {
	err := r.mutate(ctx, func(s *Session) error {
		return s.Store.DeleteProfile(ctx, args.ID.UUID)
	})
	return confirm(ProfileDeleted, err)
}

func (r *Resolver) SubscribeTo(ctx context.Context, args subscriptionArgs) (*userResolver, error) {
	if !r.allowSelfSubscription && args.UserID == args.AuthorID {
		return nil, apierrors.InvalidArgument("a user cannot subscribe to themselves")
	}
	var out *userResolver
	err := r.mutate(ctx, func(s *Session) error {
		u, err := s.Store.Subscribe(ctx, args.UserID.UUID, args.AuthorID.UUID)
		if err != nil {
			return err
		}
		out = &userResolver{s: s, u: *u}
		return nil
	})
	return out, err
}

func (r *Resolver) UnsubscribeFrom(ctx context.Context, args subscriptionArgs) (*string, error) {
	err := r.mutate(ctx, func(s *Session) error {
		return s.Store.Unsubscribe(ctx, args.UserID.UUID, args.AuthorID.UUID)
	})
	return confirm(Unsubscribed, err)
}

func confirm(message string, err error) (*string, error) {
	if err != nil {
		return nil, err
	}
	return &message, nil
}
