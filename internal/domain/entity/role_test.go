package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoles(t *testing.T) {
	roles, err := ParseRoles([]string{"user", "operator", "user"})
	require.NoError(t, err)
	assert.Equal(t, Roles{RoleUser, RoleOperator}, roles)
	assert.Equal(t, []string{"user", "operator"}, roles.Strings())

	_, err = ParseRoles([]string{"user", "admin"})
	assert.Error(t, err)
}

func TestHasRole(t *testing.T) {
	assert.True(t, HasRole([]string{"user", "operator"}, RoleOperator))
	assert.False(t, HasRole([]string{"user"}, RoleOperator))
	assert.False(t, HasRole([]string{"admin"}, Role("admin")))
}
