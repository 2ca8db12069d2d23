package loaders

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memberhub/internal/models"
)

type fakeSource struct {
	mu    sync.Mutex
	calls map[string][]int
	err   error

	users    []models.User
	profiles []models.Profile
	posts    []models.Post
	follows  map[uuid.UUID][]models.User
}

func newFakeSource() *fakeSource {
	return &fakeSource{calls: map[string][]int{}, follows: map[uuid.UUID][]models.User{}}
}

func (f *fakeSource) record(name string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name] = append(f.calls[name], n)
}

func (f *fakeSource) batches(name string) []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.calls[name]...)
}

func (f *fakeSource) UsersByIDs(_ context.Context, ids []uuid.UUID) ([]models.User, error) {
	f.record("users", len(ids))
	if f.err != nil {
		return nil, f.err
	}
	var out []models.User
	for _, u := range f.users {
		for _, id := range ids {
			if u.ID == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (f *fakeSource) MemberTypesByIDs(_ context.Context, ids []models.MemberTypeID) ([]models.MemberType, error) {
	f.record("member_types", len(ids))
	var out []models.MemberType
	for _, m := range models.DefaultMemberTypes() {
		for _, id := range ids {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (f *fakeSource) ProfilesByUserIDs(_ context.Context, ids []uuid.UUID) ([]models.Profile, error) {
	f.record("profiles_by_user", len(ids))
	var out []models.Profile
	for _, p := range f.profiles {
		for _, id := range ids {
			if p.UserID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeSource) ProfilesByMemberTypeIDs(_ context.Context, ids []models.MemberTypeID) ([]models.Profile, error) {
	f.record("profiles_by_member_type", len(ids))
	var out []models.Profile
	for _, p := range f.profiles {
		for _, id := range ids {
			if p.MemberTypeID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeSource) PostsByAuthorIDs(_ context.Context, ids []uuid.UUID) ([]models.Post, error) {
	f.record("posts", len(ids))
	var out []models.Post
	for _, p := range f.posts {
		for _, id := range ids {
			if p.AuthorID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeSource) AuthorsOf(_ context.Context, ids []uuid.UUID) (map[uuid.UUID][]models.User, error) {
	f.record("authors_of", len(ids))
	return f.follows, nil
}

func (f *fakeSource) SubscribersOf(_ context.Context, ids []uuid.UUID) (map[uuid.UUID][]models.User, error) {
	f.record("subscribers_of", len(ids))
	return map[uuid.UUID][]models.User{}, nil
}

func testOptions() Options {
	return Options{Wait: 20 * time.Millisecond}
}

func TestUserLoaderBatchesConcurrentLoads(t *testing.T) {
	src := newFakeSource()
	src.users = []models.User{{ID: uuid.New(), Name: "a"}, {ID: uuid.New(), Name: "b"}, {ID: uuid.New(), Name: "c"}}
	l := New(src, testOptions())

	ctx := context.Background()
	got := make([]*models.User, len(src.users))
	var wg sync.WaitGroup
	for i, u := range src.users {
		wg.Add(1)
		go func(i int, id uuid.UUID) {
			defer wg.Done()
			user, err := l.User(ctx, id)
			assert.NoError(t, err)
			got[i] = user
		}(i, u.ID)
	}
	wg.Wait()

	assert.Equal(t, []int{3}, src.batches("users"))
	for i, u := range src.users {
		require.NotNil(t, got[i])
		assert.Equal(t, u.Name, got[i].Name)
	}

	_, err := l.User(ctx, src.users[0].ID)
	require.NoError(t, err)
	assert.Len(t, src.batches("users"), 1, "cached key must not refetch")

	l.Reset()
	_, err = l.User(ctx, src.users[0].ID)
	require.NoError(t, err)
	assert.Len(t, src.batches("users"), 2, "reset must drop the cache")
}

func TestMissingKeysResolveToEmptyValues(t *testing.T) {
	src := newFakeSource()
	l := New(src, testOptions())
	ctx := context.Background()

	u, err := l.User(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, u)

	p, err := l.ProfileByUser(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, p)

	posts, err := l.PostsByAuthor(ctx, uuid.New())
	assert.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	authors, err := l.AuthorsOf(ctx, uuid.New())
	assert.NoError(t, err)
	assert.NotNil(t, authors)
}

func TestGroupedLoaders(t *testing.T) {
	src := newFakeSource()
	author := uuid.New()
	src.posts = []models.Post{
		{ID: uuid.New(), AuthorID: author, Title: "1"},
		{ID: uuid.New(), AuthorID: uuid.New(), Title: "other"},
		{ID: uuid.New(), AuthorID: author, Title: "2"},
	}
	src.profiles = []models.Profile{
		{ID: uuid.New(), UserID: uuid.New(), MemberTypeID: models.MemberTypeBasic},
		{ID: uuid.New(), UserID: uuid.New(), MemberTypeID: models.MemberTypeBasic},
	}
	l := New(src, testOptions())
	ctx := context.Background()

	posts, err := l.PostsByAuthor(ctx, author)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "1", posts[0].Title)
	assert.Equal(t, "2", posts[1].Title)

	basic, err := l.ProfilesByMemberType(ctx, models.MemberTypeBasic)
	require.NoError(t, err)
	assert.Len(t, basic, 2)

	business, err := l.ProfilesByMemberType(ctx, models.MemberTypeBusiness)
	require.NoError(t, err)
	assert.Empty(t, business)
}

func TestBatchErrorReachesEveryKey(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("db down")
	l := New(src, testOptions())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.User(ctx, uuid.New())
			assert.ErrorIs(t, err, src.err)
		}()
	}
	wg.Wait()
}

func TestPrimeSkipsFetch(t *testing.T) {
	src := newFakeSource()
	var observed []string
	var mu sync.Mutex
	l := New(src, Options{Wait: time.Millisecond, Observe: func(name string, n int) {
		mu.Lock()
		defer mu.Unlock()
		observed = append(observed, name)
	}})
	ctx := context.Background()

	u := models.User{ID: uuid.New(), Name: "primed"}
	l.PrimeUser(ctx, u)
	got, err := l.User(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "primed", got.Name)
	assert.Empty(t, src.batches("users"))

	l.PrimeMemberType(ctx, models.MemberType{ID: models.MemberTypeBasic, Discount: 1})
	mt, err := l.MemberType(ctx, models.MemberTypeBasic)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mt.Discount)

	_, err = l.MemberType(ctx, models.MemberTypeBusiness)
	require.NoError(t, err)
	mu.Lock()
	assert.Equal(t, []string{"member_type"}, observed)
	mu.Unlock()
}
