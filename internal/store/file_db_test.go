package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberhub/internal/models"
	"memberhub/internal/store"
	"memberhub/internal/testutil"
	"memberhub/pkg/database"
)

// newFileStore opens a store the way `memberhub serve` does for
// DATABASE_DRIVER=sqlite with a plain file path.
func newFileStore(t *testing.T) *store.GormStore {
	t.Helper()
	ctx := context.Background()

	cfg := database.DefaultConfig()
	cfg.Driver = "sqlite"
	cfg.URL = filepath.Join(t.TempDir(), "dev.db")

	sqlDB, err := database.Connect(ctx, cfg, testutil.QuietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	orm, err := database.OpenORM(sqlDB, cfg.Driver, testutil.QuietLogger())
	require.NoError(t, err)

	s := store.New(orm)
	require.NoError(t, s.Migrate(ctx))
	_, err = s.SeedMemberTypes(ctx)
	require.NoError(t, err)
	return s
}

func TestFileDatabaseEnforcesReferences(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	err := s.CreatePost(ctx, &models.Post{Title: "t", Content: "c", AuthorID: uuid.New()})
	assert.ErrorIs(t, err, store.ErrInvalidReference)

	err = s.CreateProfile(ctx, &models.Profile{UserID: uuid.New(), MemberTypeID: models.MemberTypeBasic, YearOfBirth: 1990})
	assert.ErrorIs(t, err, store.ErrInvalidReference)

	posts, err := s.Posts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFailedSubscribeLeavesNoEdge(t *testing.T) {
	s := newFileStore(t)
	f := testutil.NewDatabaseFixtures(t, s)
	ctx := context.Background()

	_, err := s.Subscribe(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)

	u := f.User("A", 0)
	_, err = s.Subscribe(ctx, u.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Subscribe(ctx, uuid.New(), u.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts["subscriptions"])
}

func TestFileDatabaseCascadesUserDelete(t *testing.T) {
	s := newFileStore(t)
	f := testutil.NewDatabaseFixtures(t, s)
	ctx := context.Background()

	a := f.User("A", 0)
	b := f.User("B", 0)
	f.Post(a.ID, "t", "c")
	f.Profile(a.ID, models.MemberTypeBasic, true, 1990)
	f.Subscribe(b.ID, a.ID)

	require.NoError(t, s.DeleteUser(ctx, a.ID))

	counts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts["users"])
	assert.Zero(t, counts["posts"])
	assert.Zero(t, counts["profiles"])
	assert.Zero(t, counts["subscriptions"])
}
