package graph

import (
	"context"

	apierrors "memberhub/internal/errors"
	"memberhub/internal/models"
	"memberhub/pkg/logging"
)

// Resolver is the root of the Query and Mutation types.
type Resolver struct {
	logger                logging.FieldLogger
	allowSelfSubscription bool
}

func (r *Resolver) session(ctx context.Context) (*Session, error) {
	s, err := sessionFrom(ctx)
	if err != nil {
		return nil, apierrors.Present(r.logger, err)
	}
	return s, nil
}

type idArgs struct {
	ID UUID
}

type memberTypeArgs struct {
	ID models.MemberTypeID
}

func (r *Resolver) MemberTypes(ctx context.Context) ([]*memberTypeResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.Store.MemberTypes(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	out := make([]*memberTypeResolver, len(rows))
	for i, m := range rows {
		s.Loaders.PrimeMemberType(ctx, m)
		out[i] = &memberTypeResolver{s: s, m: m}
	}
	return out, nil
}

func (r *Resolver) MemberType(ctx context.Context, args memberTypeArgs) (*memberTypeResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.Store.MemberType(ctx, args.ID)
	if err != nil {
		return nil, s.fail(err)
	}
	if m == nil {
		return nil, nil
	}
	return &memberTypeResolver{s: s, m: *m}, nil
}

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.Store.Users(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return newUserResolvers(ctx, s, rows), nil
}

func (r *Resolver) User(ctx context.Context, args idArgs) (*userResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.Store.User(ctx, args.ID.UUID)
	if err != nil {
		return nil, s.fail(err)
	}
	if u == nil {
		return nil, nil
	}
	s.Loaders.PrimeUser(ctx, *u)
	return &userResolver{s: s, u: *u}, nil
}

func (r *Resolver) Posts(ctx context.Context) ([]*postResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.Store.Posts(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return newPostResolvers(s, rows), nil
}

func (r *Resolver) Post(ctx context.Context, args idArgs) (*postResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.Store.Post(ctx, args.ID.UUID)
	if err != nil {
		return nil, s.fail(err)
	}
	if p == nil {
		return nil, nil
	}
	return &postResolver{s: s, p: *p}, nil
}

func (r *Resolver) Profiles(ctx context.Context) ([]*profileResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.Store.Profiles(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return newProfileResolvers(s, rows), nil
}

func (r *Resolver) Profile(ctx context.Context, args idArgs) (*profileResolver, error) {
	s, err := r.session(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.Store.Profile(ctx, args.ID.UUID)
	if err != nil {
		return nil, s.fail(err)
	}
	if p == nil {
		return nil, nil
	}
	return &profileResolver{s: s, p: *p}, nil
}
