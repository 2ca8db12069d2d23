package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memberhub/internal/models"
)

func findAll[T any](ctx context.Context, db *gorm.DB, op string) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, classify(op, err)
	}
	return rows, nil
}

// findOne returns nil without error when no row matches.
func findOne[T any](ctx context.Context, db *gorm.DB, op string, id interface{}) (*T, error) {
	var row T
	res := db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&row)
	if res.Error != nil {
		return nil, classify(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func findIn[T any, K any](ctx context.Context, db *gorm.DB, op, column string, keys []K) ([]T, error) {
	rows := make([]T, 0)
	if len(keys) == 0 {
		return rows, nil
	}
	err := db.WithContext(ctx).Where(column+" IN ?", keys).Order("id").Find(&rows).Error
	if err != nil {
		return nil, classify(op, err)
	}
	return rows, nil
}

func (s *GormStore) MemberTypes(ctx context.Context) ([]models.MemberType, error) {
	return findAll[models.MemberType](ctx, s.db, "list member types")
}

func (s *GormStore) MemberType(ctx context.Context, id models.MemberTypeID) (*models.MemberType, error) {
	return findOne[models.MemberType](ctx, s.db, "get member type", id)
}

func (s *GormStore) MemberTypesByIDs(ctx context.Context, ids []models.MemberTypeID) ([]models.MemberType, error) {
	return findIn[models.MemberType](ctx, s.db, "load member types", "id", ids)
}

func (s *GormStore) Users(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, s.db, "list users")
}

func (s *GormStore) User(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return findOne[models.User](ctx, s.db, "get user", id)
}

func (s *GormStore) UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error) {
	return findIn[models.User](ctx, s.db, "load users", "id", ids)
}

func (s *GormStore) Posts(ctx context.Context) ([]models.Post, error) {
	return findAll[models.Post](ctx, s.db, "list posts")
}

func (s *GormStore) Post(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return findOne[models.Post](ctx, s.db, "get post", id)
}

func (s *GormStore) PostsByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]models.Post, error) {
	return findIn[models.Post](ctx, s.db, "load posts", "author_id", authorIDs)
}

func (s *GormStore) Profiles(ctx context.Context) ([]models.Profile, error) {
	return findAll[models.Profile](ctx, s.db, "list profiles")
}

func (s *GormStore) Profile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return findOne[models.Profile](ctx, s.db, "get profile", id)
}

func (s *GormStore) ProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.Profile, error) {
	return findIn[models.Profile](ctx, s.db, "load profiles", "user_id", userIDs)
}

func (s *GormStore) ProfilesByMemberTypeIDs(ctx context.Context, ids []models.MemberTypeID) ([]models.Profile, error) {
	return findIn[models.Profile](ctx, s.db, "load profiles", "member_type_id", ids)
}

// AuthorsOf maps each subscriber to the users they follow.
func (s *GormStore) AuthorsOf(ctx context.Context, subscriberIDs []uuid.UUID) (map[uuid.UUID][]models.User, error) {
	return s.follows(ctx, "load subscriptions", "subscriber_id", subscriberIDs, func(e models.Subscription) (uuid.UUID, uuid.UUID) {
		return e.SubscriberID, e.AuthorID
	})
}

// SubscribersOf maps each author to the users following them.
func (s *GormStore) SubscribersOf(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID][]models.User, error) {
	return s.follows(ctx, "load subscribers", "author_id", authorIDs, func(e models.Subscription) (uuid.UUID, uuid.UUID) {
		return e.AuthorID, e.SubscriberID
	})
}

// follows resolves subscription edges keyed by one side into the users on the
// other side, using one query for the edges and one for the users.
func (s *GormStore) follows(ctx context.Context, op, column string, keys []uuid.UUID, split func(models.Subscription) (key, other uuid.UUID)) (map[uuid.UUID][]models.User, error) {
	out := make(map[uuid.UUID][]models.User, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	var edges []models.Subscription
	err := s.db.WithContext(ctx).
		Where(column+" IN ?", keys).
		Order("subscriber_id, author_id").
		Find(&edges).Error
	if err != nil {
		return nil, classify(op, err)
	}
	if len(edges) == 0 {
		return out, nil
	}

	otherIDs := make([]uuid.UUID, 0, len(edges))
	seen := make(map[uuid.UUID]struct{}, len(edges))
	for _, e := range edges {
		_, other := split(e)
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		otherIDs = append(otherIDs, other)
	}

	users, err := s.UsersByIDs(ctx, otherIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, e := range edges {
		key, other := split(e)
		if u, ok := byID[other]; ok {
			out[key] = append(out[key], u)
		}
	}
	return out, nil
}
