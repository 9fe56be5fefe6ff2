package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPatch_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantName  Optional[string]
		wantEmail Optional[string]
		wantAge   Optional[int]
		wantRoles Optional[[]RoleRef]
	}{
		{
			name: "empty object leaves everything unset",
			body: `{}`,
		},
		{
			name:     "explicit null is treated as absent",
			body:     `{"name": null, "roles": null}`,
			wantName: Optional[string]{},
		},
		{
			name:     "present fields are set",
			body:     `{"name": "Jane", "age": 0, "email": "jane@example.com"}`,
			wantName: Some("Jane"), wantAge: Some(0), wantEmail: Some("jane@example.com"),
		},
		{
			name:      "empty role list is set",
			body:      `{"roles": []}`,
			wantRoles: Some([]RoleRef{}),
		},
		{
			name:      "role references",
			body:      `{"roles": [{"id": 1}, {"id": 3, "name": "ignored"}]}`,
			wantRoles: Some([]RoleRef{{ID: 1}, {ID: 3}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch UserPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))
			assert.Equal(t, tt.wantName, patch.Name)
			assert.Equal(t, tt.wantEmail, patch.Email)
			assert.Equal(t, tt.wantAge, patch.Age)
			assert.Equal(t, tt.wantRoles, patch.Roles)
		})
	}
}

func TestOptional_InvalidType(t *testing.T) {
	var patch UserPatch
	err := json.Unmarshal([]byte(`{"age": "ten"}`), &patch)
	assert.Error(t, err)
}

func TestOptional_Marshal(t *testing.T) {
	out, err := json.Marshal(UserPatch{Name: Some("Bob")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bob","email":null,"age":null,"roles":null}`, string(out))
}
