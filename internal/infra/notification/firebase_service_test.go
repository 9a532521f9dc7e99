package notification

import (
	"testing"
	"time"

	"gasradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMulticast(t *testing.T) {
	msg := &service.PushMessage{
		Title: "Precio bajo",
		Body:  "Diésel a 1.389 €/L",
		Data:  map[string]string{"id_eess": "1001"},
		TTL:   2 * time.Hour,
	}

	built := buildMulticast([]string{"a", "b"}, msg)

	assert.Equal(t, []string{"a", "b"}, built.Tokens)
	assert.Equal(t, "Precio bajo", built.Notification.Title)
	assert.Equal(t, "1001", built.Data["id_eess"])
	require.NotNil(t, built.Android.TTL)
	assert.Equal(t, 2*time.Hour, *built.Android.TTL)
	assert.Equal(t, "high", built.Android.Priority)
	assert.Equal(t, "default", built.APNS.Payload.Aps.Sound)
}

func TestBuildMulticast_NoTTL(t *testing.T) {
	built := buildMulticast([]string{"a"}, &service.PushMessage{Title: "t"})

	assert.Nil(t, built.Android.TTL)
}
