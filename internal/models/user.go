package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that may own a profile, write posts and follow other users.
type User struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name    string    `json:"name" gorm:"not null"`
	Balance float64   `json:"balance" gorm:"not null"`
}

func (User) TableName() string { return "users" }

// BeforeCreate assigns a random identifier when none was set.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile holds the personal details of exactly one user.
type Profile struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	IsMale       bool         `json:"isMale" gorm:"not null"`
	YearOfBirth  int          `json:"yearOfBirth" gorm:"not null"`
	UserID       uuid.UUID    `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	User         *User        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MemberTypeID MemberTypeID `json:"memberTypeId" gorm:"type:varchar(16);not null;index"`
	MemberType   *MemberType  `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Post is authored by exactly one user.
type Post struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title    string    `json:"title" gorm:"not null"`
	Content  string    `json:"content" gorm:"not null"`
	AuthorID uuid.UUID `json:"authorId" gorm:"type:uuid;not null;index"`
	Author   *User     `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string { return "posts" }

func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Subscription is a directed edge: SubscriberID follows AuthorID.
type Subscription struct {
	SubscriberID uuid.UUID `json:"subscriberId" gorm:"type:uuid;primaryKey"`
	Subscriber   *User     `json:"-" gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
	AuthorID     uuid.UUID `json:"authorId" gorm:"type:uuid;primaryKey;index"`
	Author       *User     `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (Subscription) TableName() string { return "subscriptions" }

// All returns one value of every persisted model, parents first.
func All() []interface{} {
	return []interface{}{
		&MemberType{},
		&User{},
		&Profile{},
		&Post{},
		&Subscription{},
	}
}
