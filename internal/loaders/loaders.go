// Package loaders batches the relation lookups made while resolving one
// GraphQL request. A Loaders value must not outlive its request.
package loaders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"memberhub/internal/models"
)

// DefaultWait is how long a loader collects keys before issuing its batch.
const DefaultWait = 2 * time.Millisecond

// Source is the keyed batch half of the record store.
type Source interface {
	UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
	MemberTypesByIDs(ctx context.Context, ids []models.MemberTypeID) ([]models.MemberType, error)
	ProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.Profile, error)
	ProfilesByMemberTypeIDs(ctx context.Context, ids []models.MemberTypeID) ([]models.Profile, error)
	PostsByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]models.Post, error)
	AuthorsOf(ctx context.Context, subscriberIDs []uuid.UUID) (map[uuid.UUID][]models.User, error)
	SubscribersOf(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID][]models.User, error)
}

// Options tunes the loaders. The zero value is usable.
type Options struct {
	Wait time.Duration
	// Observe, when set, is called once per batch with the loader name and key count.
	Observe func(loader string, keys int)
}

// Loaders bundles one batched loader per relation.
type Loaders struct {
	users         *dataloader.Loader[uuid.UUID, *models.User]
	memberTypes   *dataloader.Loader[models.MemberTypeID, *models.MemberType]
	profileByUser *dataloader.Loader[uuid.UUID, *models.Profile]
	profilesByMT  *dataloader.Loader[models.MemberTypeID, []models.Profile]
	postsByAuthor *dataloader.Loader[uuid.UUID, []models.Post]
	authorsOf     *dataloader.Loader[uuid.UUID, []models.User]
	subscribersOf *dataloader.Loader[uuid.UUID, []models.User]
}

// New builds request-scoped loaders reading from src.
func New(src Source, opts Options) *Loaders {
	if opts.Wait <= 0 {
		opts.Wait = DefaultWait
	}
	observe := opts.Observe
	if observe == nil {
		observe = func(string, int) {}
	}

	return &Loaders{
		users: newLoader(opts.Wait, "user", observe, func(ctx context.Context, ids []uuid.UUID) ([]*dataloader.Result[*models.User], error) {
			rows, err := src.UsersByIDs(ctx, ids)
			return indexOne(ids, rows, func(u models.User) uuid.UUID { return u.ID }), err
		}),
		memberTypes: newLoader(opts.Wait, "member_type", observe, func(ctx context.Context, ids []models.MemberTypeID) ([]*dataloader.Result[*models.MemberType], error) {
			rows, err := src.MemberTypesByIDs(ctx, ids)
			return indexOne(ids, rows, func(m models.MemberType) models.MemberTypeID { return m.ID }), err
		}),
		profileByUser: newLoader(opts.Wait, "profile_by_user", observe, func(ctx context.Context, ids []uuid.UUID) ([]*dataloader.Result[*models.Profile], error) {
			rows, err := src.ProfilesByUserIDs(ctx, ids)
			return indexOne(ids, rows, func(p models.Profile) uuid.UUID { return p.UserID }), err
		}),
		profilesByMT: newLoader(opts.Wait, "profiles_by_member_type", observe, func(ctx context.Context, ids []models.MemberTypeID) ([]*dataloader.Result[[]models.Profile], error) {
			rows, err := src.ProfilesByMemberTypeIDs(ctx, ids)
			return groupBy(ids, rows, func(p models.Profile) models.MemberTypeID { return p.MemberTypeID }), err
		}),
		postsByAuthor: newLoader(opts.Wait, "posts_by_author", observe, func(ctx context.Context, ids []uuid.UUID) ([]*dataloader.Result[[]models.Post], error) {
			rows, err := src.PostsByAuthorIDs(ctx, ids)
			return groupBy(ids, rows, func(p models.Post) uuid.UUID { return p.AuthorID }), err
		}),
		authorsOf: newLoader(opts.Wait, "authors_of", observe, func(ctx context.Context, ids []uuid.UUID) ([]*dataloader.Result[[]models.User], error) {
			byKey, err := src.AuthorsOf(ctx, ids)
			return fromMap(ids, byKey), err
		}),
		subscribersOf: newLoader(opts.Wait, "subscribers_of", observe, func(ctx context.Context, ids []uuid.UUID) ([]*dataloader.Result[[]models.User], error) {
			byKey, err := src.SubscribersOf(ctx, ids)
			return fromMap(ids, byKey), err
		}),
	}
}

// User returns the user or nil when it does not exist.
func (l *Loaders) User(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return l.users.Load(ctx, id)()
}

func (l *Loaders) MemberType(ctx context.Context, id models.MemberTypeID) (*models.MemberType, error) {
	return l.memberTypes.Load(ctx, id)()
}

// ProfileByUser returns the profile owned by userID, or nil.
func (l *Loaders) ProfileByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return l.profileByUser.Load(ctx, userID)()
}

func (l *Loaders) ProfilesByMemberType(ctx context.Context, id models.MemberTypeID) ([]models.Profile, error) {
	return l.profilesByMT.Load(ctx, id)()
}

func (l *Loaders) PostsByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Post, error) {
	return l.postsByAuthor.Load(ctx, authorID)()
}

// AuthorsOf lists the users subscriberID follows.
func (l *Loaders) AuthorsOf(ctx context.Context, subscriberID uuid.UUID) ([]models.User, error) {
	return l.authorsOf.Load(ctx, subscriberID)()
}

// SubscribersOf lists the users following authorID.
func (l *Loaders) SubscribersOf(ctx context.Context, authorID uuid.UUID) ([]models.User, error) {
	return l.subscribersOf.Load(ctx, authorID)()
}

// PrimeUser seeds the by-id cache with a user fetched elsewhere.
func (l *Loaders) PrimeUser(ctx context.Context, u models.User) {
	l.users.Prime(ctx, u.ID, &u)
}

func (l *Loaders) PrimeMemberType(ctx context.Context, m models.MemberType) {
	l.memberTypes.Prime(ctx, m.ID, &m)
}

// Reset drops every cached value. Mutations call it after writing.
func (l *Loaders) Reset() {
	l.users.ClearAll()
	l.memberTypes.ClearAll()
	l.profileByUser.ClearAll()
	l.profilesByMT.ClearAll()
	l.postsByAuthor.ClearAll()
	l.authorsOf.ClearAll()
	l.subscribersOf.ClearAll()
}
