package graph

import (
	"context"

	"github.com/google/uuid"

	"memberhub/internal/models"
)

type memberTypeResolver struct {
	s *Session
	m models.MemberType
}

func (r *memberTypeResolver) ID() models.MemberTypeID { return r.m.ID }

func (r *memberTypeResolver) Discount() float64 { return r.m.Discount }

func (r *memberTypeResolver) PostsLimitPerMonth() int32 { return int32(r.m.PostsLimitPerMonth) }

func (r *memberTypeResolver) Profiles(ctx context.Context) ([]*profileResolver, error) {
	rows, err := r.s.Loaders.ProfilesByMemberType(ctx, r.m.ID)
	if err != nil {
		return nil, r.s.fail(err)
	}
	return newProfileResolvers(r.s, rows), nil
}

type userResolver struct {
	s *Session
	u models.User
}

func newUserResolvers(ctx context.Context, s *Session, rows []models.User) []*userResolver {
	out := make([]*userResolver, len(rows))
	for i, u := range rows {
		s.Loaders.PrimeUser(ctx, u)
		out[i] = &userResolver{s: s, u: u}
	}
	return out
}

func (r *userResolver) ID() UUID { return UUID{UUID: r.u.ID} }

func (r *userResolver) Name() string { return r.u.Name }

func (r *userResolver) Balance() float64 { return r.u.Balance }

func (r *userResolver) Profile(ctx context.Context) (*profileResolver, error) {
	p, err := r.s.Loaders.ProfileByUser(ctx, r.u.ID)
	if err != nil {
		return nil, r.s.fail(err)
	}
	if p == nil {
		return nil, nil
	}
	return &profileResolver{s: r.s, p: *p}, nil
}

func (r *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	rows, err := r.s.Loaders.PostsByAuthor(ctx, r.u.ID)
	if err != nil {
		return nil, r.s.fail(err)
	}
	return newPostResolvers(r.s, rows), nil
}

func (r *userResolver) UserSubscribedTo(ctx context.Context) ([]*userResolver, error) {
	rows, err := r.s.Loaders.AuthorsOf(ctx, r.u.ID)
	if err != nil {
		return nil, r.s.fail(err)
	}
	return newUserResolvers(ctx, r.s, rows), nil
}

func (r *userResolver) SubscribedToUser(ctx context.Context) ([]*userResolver, error) {
	rows, err := r.s.Loaders.SubscribersOf(ctx, r.u.ID)
	if err != nil {
		return nil, r.s.fail(err)
	}
	return newUserResolvers(ctx, r.s, rows), nil
}

type postResolver struct {
	s *Session
	p models.Post
}

func newPostResolvers(s *Session, rows []models.Post) []*postResolver {
	out := make([]*postResolver, len(rows))
	for i, p := range rows {
		out[i] = &postResolver{s: s, p: p}
	}
	return out
}

func (r *postResolver) ID() UUID { return UUID{UUID: r.p.ID} }

func (r *postResolver) Title() string { return r.p.Title }

func (r *postResolver) Content() string { return r.p.Content }

func (r *postResolver) AuthorID() UUID { return UUID{UUID: r.p.AuthorID} }

func (r *postResolver) Author(ctx context.Context) (*userResolver, error) {
	return loadUser(ctx, r.s, r.p.AuthorID)
}

type profileResolver struct {
	s *Session
	p models.Profile
}

func newProfileResolvers(s *Session, rows []models.Profile) []*profileResolver {
	out := make([]*profileResolver, len(rows))
	for i, p := range rows {
		out[i] = &profileResolver{s: s, p: p}
	}
	return out
}

func (r *profileResolver) ID() UUID { return UUID{UUID: r.p.ID} }

func (r *profileResolver) IsMale() bool { return r.p.IsMale }

func (r *profileResolver) YearOfBirth() int32 { return int32(r.p.YearOfBirth) }

func (r *profileResolver) UserID() UUID { return UUID{UUID: r.p.UserID} }

func (r *profileResolver) MemberTypeID() models.MemberTypeID { return r.p.MemberTypeID }

func (r *profileResolver) MemberType(ctx context.Context) (*memberTypeResolver, error) {
	m, err := r.s.Loaders.MemberType(ctx, r.p.MemberTypeID)
	if err != nil {
		return nil, r.s.fail(err)
	}
	if m == nil {
		return nil, nil
	}
	return &memberTypeResolver{s: r.s, m: *m}, nil
}

func (r *profileResolver) User(ctx context.Context) (*userResolver, error) {
	return loadUser(ctx, r.s, r.p.UserID)
}

func loadUser(ctx context.Context, s *Session, id uuid.UUID) (*userResolver, error) {
	u, err := s.Loaders.User(ctx, id)
	if err != nil {
		return nil, s.fail(err)
	}
	if u == nil {
		return nil, nil
	}
	return &userResolver{s: s, u: *u}, nil
}
