package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestAll_TableNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)

	for _, m := range All() {
		tabler, ok := m.(schema.Tabler)
		require.True(t, ok, "%T has no TableName", m)

		name := tabler.TableName()
		assert.False(t, seen[name], "duplicate table %s", name)
		seen[name] = true
	}

	assert.Len(t, seen, 9)
}

func TestUserDeviceModel_Columns(t *testing.T) {
	s, err := schema.Parse(&UserDeviceModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, column := range []string{"fcm_token", "device_id", "is_active", "deleted_at"} {
		assert.NotNil(t, s.LookUpField(column), column)
	}
}
