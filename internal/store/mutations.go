package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memberhub/internal/models"
)

// UserPatch carries the user fields to change. Nil fields are left untouched.
type UserPatch struct {
	Name    *string
	Balance *float64
}

func (p UserPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Balance != nil {
		cols["balance"] = *p.Balance
	}
	return cols
}

// PostPatch carries the post fields to change.
type PostPatch struct {
	Title   *string
	Content *string
}

func (p PostPatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Content != nil {
		cols["content"] = *p.Content
	}
	return cols
}

// ProfilePatch carries the profile fields to change. The owning user is fixed.
type ProfilePatch struct {
	IsMale       *bool
	YearOfBirth  *int
	MemberTypeID *models.MemberTypeID
}

func (p ProfilePatch) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.IsMale != nil {
		cols["is_male"] = *p.IsMale
	}
	if p.YearOfBirth != nil {
		cols["year_of_birth"] = *p.YearOfBirth
	}
	if p.MemberTypeID != nil {
		cols["member_type_id"] = *p.MemberTypeID
	}
	return cols
}

func create[T any](ctx context.Context, db *gorm.DB, op string, row *T) error {
	return classify(op, db.WithContext(ctx).Create(row).Error)
}

// update applies cols to the row with the given id and returns the stored row.
// An empty patch only reloads it.
func update[T any](ctx context.Context, db *gorm.DB, op string, id uuid.UUID, cols map[string]interface{}) (*T, error) {
	if len(cols) > 0 {
		res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, classify(op, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, classify(op, gorm.ErrRecordNotFound)
		}
	}
	row, err := findOne[T](ctx, db, op, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, classify(op, gorm.ErrRecordNotFound)
	}
	return row, nil
}

func remove[T any](ctx context.Context, db *gorm.DB, op string, id uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return classify(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return classify(op, gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return create(ctx, s.db, "create user", user)
}

func (s *GormStore) UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*models.User, error) {
	return update[models.User](ctx, s.db, "update user", id, patch.columns())
}

// DeleteUser removes the user. Profile, posts and subscription edges cascade.
func (s *GormStore) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return remove[models.User](ctx, s.db, "delete user", id)
}

func (s *GormStore) CreatePost(ctx context.Context, post *models.Post) error {
	return create(ctx, s.db, "create post", post)
}

func (s *GormStore) UpdatePost(ctx context.Context, id uuid.UUID, patch PostPatch) (*models.Post, error) {
	return update[models.Post](ctx, s.db, "update post", id, patch.columns())
}

func (s *GormStore) DeletePost(ctx context.Context, id uuid.UUID) error {
	return remove[models.Post](ctx, s.db, "delete post", id)
}

func (s *GormStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	return create(ctx, s.db, "create profile", profile)
}

func (s *GormStore) UpdateProfile(ctx context.Context, id uuid.UUID, patch ProfilePatch) (*models.Profile, error) {
	return update[models.Profile](ctx, s.db, "update profile", id, patch.columns())
}

func (s *GormStore) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return remove[models.Profile](ctx, s.db, "delete profile", id)
}

// Subscribe records that subscriberID follows authorID and returns the subscriber.
// A missing user on either side is reported as ErrNotFound.
func (s *GormStore) Subscribe(ctx context.Context, subscriberID, authorID uuid.UUID) (*models.User, error) {
	const op = "subscribe"
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users []models.User
		if err := tx.Where("id IN ?", []uuid.UUID{subscriberID, authorID}).Find(&users).Error; err != nil {
			return err
		}
		found := make(map[uuid.UUID]models.User, len(users))
		for _, u := range users {
			found[u.ID] = u
		}
		subscriber, ok := found[subscriberID]
		if _, authorOK := found[authorID]; !ok || !authorOK {
			return gorm.ErrRecordNotFound
		}

		edge := models.Subscription{SubscriberID: subscriberID, AuthorID: authorID}
		if err := tx.Create(&edge).Error; err != nil {
			if isForeignKeyViolation(err) {
				return gorm.ErrRecordNotFound
			}
			return err
		}
		user = subscriber
		return nil
	})
	if err != nil {
		return nil, classify(op, err)
	}
	return &user, nil
}

// Unsubscribe deletes the edge by its composite key.
func (s *GormStore) Unsubscribe(ctx context.Context, subscriberID, authorID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Delete(&models.Subscription{})
	if res.Error != nil {
		return classify("unsubscribe", res.Error)
	}
	if res.RowsAffected == 0 {
		return classify("unsubscribe", gorm.ErrRecordNotFound)
	}
	return nil
}
