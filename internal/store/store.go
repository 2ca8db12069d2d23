// Package store is the data-access handle behind the GraphQL resolvers.
// GormStore implements it on top of gorm for PostgreSQL and SQLite.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"memberhub/internal/models"
)

var (
	// ErrNotFound is returned when a mutation targets a record that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned on unique or primary key violations.
	ErrConflict = errors.New("record already exists")
	// ErrInvalidReference is returned when a foreign key points at nothing.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Store exposes find-many, find-unique, create, update and delete per entity
// kind, plus the keyed batch lookups used by the relation loaders.
type Store interface {
	MemberTypes(ctx context.Context) ([]models.MemberType, error)
	MemberType(ctx context.Context, id models.MemberTypeID) (*models.MemberType, error)
	MemberTypesByIDs(ctx context.Context, ids []models.MemberTypeID) ([]models.MemberType, error)

	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id uuid.UUID) (*models.User, error)
	UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	Posts(ctx context.Context) ([]models.Post, error)
	Post(ctx context.Context, id uuid.UUID) (*models.Post, error)
	PostsByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID) ([]models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, id uuid.UUID, patch PostPatch) (*models.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	Profiles(ctx context.Context) ([]models.Profile, error)
	Profile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	ProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.Profile, error)
	ProfilesByMemberTypeIDs(ctx context.Context, ids []models.MemberTypeID) ([]models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
	UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error

	Subscribe(ctx context.Context, subscriberID, authorID uuid.UUID) (*models.User, error)
	Unsubscribe(ctx context.Context, subscriberID, authorID uuid.UUID) error
	AuthorsOf(ctx context.Context, subscriberIDs []uuid.UUID) (map[uuid.UUID][]models.User, error)
	SubscribersOf(ctx context.Context, authorIDs []uuid.UUID) (map[uuid.UUID][]models.User, error)

	Ping(ctx context.Context) error
}

// GormStore implements Store on a gorm session.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// New wraps db. The session should be opened with TranslateError enabled.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB returns the underlying gorm session.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the tables for every model.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedMemberTypes inserts the default tiers, leaving existing rows untouched.
func (s *GormStore) SeedMemberTypes(ctx context.Context) (int64, error) {
	tiers := models.DefaultMemberTypes()
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tiers)
	if res.Error != nil {
		return 0, classify("seed member types", res.Error)
	}
	return res.RowsAffected, nil
}
