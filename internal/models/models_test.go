package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemberTypeID(t *testing.T) {
	for _, id := range MemberTypeIDs {
		got, err := ParseMemberTypeID(string(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	for _, bad := range []string{"", "Basic", "BUSINESS", "premium", " basic"} {
		_, err := ParseMemberTypeID(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestMemberTypeIDUnmarshalGraphQL(t *testing.T) {
	var id MemberTypeID
	require.NoError(t, id.UnmarshalGraphQL("business"))
	assert.Equal(t, MemberTypeBusiness, id)

	assert.Error(t, id.UnmarshalGraphQL("gold"))
	assert.Error(t, id.UnmarshalGraphQL(42))
	assert.Equal(t, MemberTypeBusiness, id, "failed unmarshal must not modify the value")

	assert.True(t, id.ImplementsGraphQLType("MemberTypeId"))
	assert.False(t, id.ImplementsGraphQLType("String"))
}

func TestDefaultMemberTypes(t *testing.T) {
	tiers := DefaultMemberTypes()
	require.Len(t, tiers, 2)
	assert.Equal(t, MemberType{ID: MemberTypeBasic, Discount: 2.3, PostsLimitPerMonth: 20}, tiers[0])
	assert.Equal(t, MemberType{ID: MemberTypeBusiness, Discount: 7.7, PostsLimitPerMonth: 100}, tiers[1])
}

func TestBeforeCreateAssignsIDs(t *testing.T) {
	u := &User{}
	require.NoError(t, u.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, uuid.Version(4), u.ID.Version())

	fixed := uuid.New()
	p := &Post{ID: fixed}
	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, fixed, p.ID, "explicit ids are kept")

	pr := &Profile{}
	require.NoError(t, pr.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, pr.ID)
}
