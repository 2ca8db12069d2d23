package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"memberhub/internal/models"
	"memberhub/internal/store"
)

// DatabaseFixtures inserts records through the store and fails the test on error.
type DatabaseFixtures struct {
	t     testing.TB
	store store.Store
}

// NewDatabaseFixtures creates a new database fixtures helper
func NewDatabaseFixtures(t testing.TB, s store.Store) *DatabaseFixtures {
	return &DatabaseFixtures{t: t, store: s}
}

func (f *DatabaseFixtures) User(name string, balance float64) *models.User {
	f.t.Helper()
	u := &models.User{Name: name, Balance: balance}
	if err := f.store.CreateUser(context.Background(), u); err != nil {
		f.t.Fatalf("create user %s: %v", name, err)
	}
	return u
}

func (f *DatabaseFixtures) Post(authorID uuid.UUID, title, content string) *models.Post {
	f.t.Helper()
	p := &models.Post{Title: title, Content: content, AuthorID: authorID}
	if err := f.store.CreatePost(context.Background(), p); err != nil {
		f.t.Fatalf("create post %s: %v", title, err)
	}
	return p
}

func (f *DatabaseFixtures) Profile(userID uuid.UUID, tier models.MemberTypeID, isMale bool, yearOfBirth int) *models.Profile {
	f.t.Helper()
	p := &models.Profile{UserID: userID, MemberTypeID: tier, IsMale: isMale, YearOfBirth: yearOfBirth}
	if err := f.store.CreateProfile(context.Background(), p); err != nil {
		f.t.Fatalf("create profile for %s: %v", userID, err)
	}
	return p
}

func (f *DatabaseFixtures) Subscribe(subscriberID, authorID uuid.UUID) {
	f.t.Helper()
	if _, err := f.store.Subscribe(context.Background(), subscriberID, authorID); err != nil {
		f.t.Fatalf("subscribe %s -> %s: %v", subscriberID, authorID, err)
	}
}
