package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"memberhub/internal/models"
)

// SeedDemo inserts a small graph of users, profiles, posts and subscriptions
// in one transaction. It is meant for empty development databases.
func (s *GormStore) SeedDemo(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		alice := models.User{Name: "Alice", Balance: 120.5}
		bob := models.User{Name: "Bob", Balance: 42}
		if err := tx.Create(&alice).Error; err != nil {
			return classify("seed users", err)
		}
		if err := tx.Create(&bob).Error; err != nil {
			return classify("seed users", err)
		}

		profiles := []models.Profile{
			{UserID: alice.ID, IsMale: false, YearOfBirth: 1990, MemberTypeID: models.MemberTypeBusiness},
			{UserID: bob.ID, IsMale: true, YearOfBirth: 1985, MemberTypeID: models.MemberTypeBasic},
		}
		if err := tx.Create(&profiles).Error; err != nil {
			return classify("seed profiles", err)
		}

		posts := []models.Post{
			{AuthorID: alice.ID, Title: "Hello", Content: "First post"},
			{AuthorID: alice.ID, Title: "Again", Content: "Second post"},
			{AuthorID: bob.ID, Title: "Hi", Content: "Bob was here"},
		}
		if err := tx.Create(&posts).Error; err != nil {
			return classify("seed posts", err)
		}

		edges := []models.Subscription{
			{SubscriberID: bob.ID, AuthorID: alice.ID},
			{SubscriberID: alice.ID, AuthorID: bob.ID},
		}
		if err := tx.Create(&edges).Error; err != nil {
			return classify("seed subscriptions", err)
		}
		return nil
	})
}

// Counts reports the number of rows per table.
func (s *GormStore) Counts(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, 5)
	for _, m := range models.All() {
		tabler, ok := m.(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("counts: %T has no table name", m)
		}
		var n int64
		if err := s.db.WithContext(ctx).Model(m).Count(&n).Error; err != nil {
			return nil, classify("count "+tabler.TableName(), err)
		}
		out[tabler.TableName()] = n
	}
	return out, nil
}
