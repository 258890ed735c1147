package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleEmployee.IsValid())
	assert.False(t, Role("owner").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestUser_PublicOmitsPassword(t *testing.T) {
	u := User{ID: "u1", Name: "Jane", Email: "jane@example.com", PasswordHash: "hash", Role: RoleEmployee}

	body, err := json.Marshal(u.Public("http://cdn/a.png"))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "hash")
	assert.JSONEq(t, `{"_id":"u1","name":"Jane","email":"jane@example.com","role":"employee","profileImage":"http://cdn/a.png"}`, string(body))
}
