package graph

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "v4", input: valid},
		{name: "upper case v4", input: strings.ToUpper(valid)},
		{name: "empty", input: "", wantErr: "36 characters"},
		{name: "braced", input: "{" + valid + "}", wantErr: "36 characters"},
		{name: "urn", input: "urn:uuid:" + valid, wantErr: "36 characters"},
		{name: "no hyphens", input: strings.ReplaceAll(valid, "-", ""), wantErr: "36 characters"},
		{name: "version 1", input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", wantErr: "version 4"},
		{name: "wrong variant", input: "0f8fad5b-d9cb-469f-c165-70867728950e", wantErr: "version 4"},
		{name: "garbage", input: "zzzzzzzz-zzzz-4zzz-8zzz-zzzzzzzzzzzz", wantErr: "invalid UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUUID(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(tt.input), got.String())
		})
	}
}

func TestUUIDUnmarshalGraphQL(t *testing.T) {
	var u UUID
	assert.True(t, u.ImplementsGraphQLType("UUID"))
	assert.False(t, u.ImplementsGraphQLType("ID"))

	require.Error(t, u.UnmarshalGraphQL(42))
	require.Error(t, u.UnmarshalGraphQL("nope"))

	id := uuid.New()
	require.NoError(t, u.UnmarshalGraphQL(id.String()))
	assert.Equal(t, id, u.UUID)
}

func TestUUIDMarshalJSON(t *testing.T) {
	id := uuid.New()
	raw, err := json.Marshal(UUID{UUID: id})
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(raw))
}
