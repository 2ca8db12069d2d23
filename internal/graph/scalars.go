package graph

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// UUID is the GraphQL UUID scalar. Input must be a 36 character version 4 UUID.
type UUID struct {
	uuid.UUID
}

// ParseUUID validates s the same way the scalar does.
func ParseUUID(s string) (UUID, error) {
	if len(s) != 36 {
		return UUID{}, fmt.Errorf("invalid UUID %q: expected 36 characters", s)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	if id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		return UUID{}, fmt.Errorf("invalid UUID %q: expected an RFC 4122 version 4 UUID", s)
	}
	return UUID{UUID: id}, nil
}

func (UUID) ImplementsGraphQLType(name string) bool { return name == "UUID" }

func (u *UUID) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("invalid UUID: expected string, got %T", input)
	}
	parsed, err := ParseUUID(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.UUID.String())
}
