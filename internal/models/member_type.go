package models

import "fmt"

// MemberTypeID identifies a membership tier. Only the two declared tiers are valid.
type MemberTypeID string

const (
	MemberTypeBasic    MemberTypeID = "basic"
	MemberTypeBusiness MemberTypeID = "business"
)

// MemberTypeIDs lists every valid tier in declaration order.
var MemberTypeIDs = []MemberTypeID{MemberTypeBasic, MemberTypeBusiness}

// ParseMemberTypeID returns the tier named by s. Matching is exact.
func ParseMemberTypeID(s string) (MemberTypeID, error) {
	id := MemberTypeID(s)
	if !id.Valid() {
		return "", fmt.Errorf("invalid member type id %q: expected one of basic, business", s)
	}
	return id, nil
}

func (id MemberTypeID) Valid() bool {
	switch id {
	case MemberTypeBasic, MemberTypeBusiness:
		return true
	}
	return false
}

func (id MemberTypeID) String() string { return string(id) }

// ImplementsGraphQLType binds MemberTypeID to the MemberTypeId enum.
func (MemberTypeID) ImplementsGraphQLType(name string) bool { return name == "MemberTypeId" }

// UnmarshalGraphQL accepts enum values and their string form.
func (id *MemberTypeID) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("invalid member type id: expected string, got %T", input)
	}
	parsed, err := ParseMemberTypeID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MemberType is a membership tier with its discount and monthly post quota.
type MemberType struct {
	ID                 MemberTypeID `json:"id" gorm:"primaryKey;type:varchar(16)"`
	Discount           float64      `json:"discount" gorm:"not null"`
	PostsLimitPerMonth int          `json:"postsLimitPerMonth" gorm:"not null"`
}

func (MemberType) TableName() string { return "member_types" }

// DefaultMemberTypes are the tiers every deployment starts with.
func DefaultMemberTypes() []MemberType {
	return []MemberType{
		{ID: MemberTypeBasic, Discount: 2.3, PostsLimitPerMonth: 20},
		{ID: MemberTypeBusiness, Discount: 7.7, PostsLimitPerMonth: 100},
	}
}
