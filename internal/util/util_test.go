package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:                      "0 B",
		512:                    "512 B",
		1024:                   "1.0 KB",
		1536:                   "1.5 KB",
		3 * 1024 * 1024:        "3.0 MB",
		5 * 1024 * 1024 * 1024: "5.0 GB",
	}

	for in, want := range tests {
		assert.Equal(t, want, FormatBytes(in), "bytes=%d", in)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := map[time.Duration]string{
		45 * time.Second:                           "45s",
		59*time.Second + 500*time.Millisecond:      "1m0s",
		2*time.Minute + 30*time.Second:             "2m30s",
		time.Hour + 30*time.Minute:                 "1h30m",
		26*time.Hour + 5*time.Minute + time.Second: "26h5m",
	}

	for in, want := range tests {
		assert.Equal(t, want, FormatDuration(in), "duration=%s", in)
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.3, RoundTo(0.30412, 2), 1e-9)
	assert.InDelta(t, 1.24, RoundTo(1.235, 2), 1e-9)
	assert.InDelta(t, 2.0, RoundTo(2, 2), 1e-9)
	assert.InDelta(t, 1.459, RoundTo(1.45949, 3), 1e-9)
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.389", PriceString(1.389))
	assert.Equal(t, "1.400", PriceString(1.4))
	assert.Equal(t, "1.459 €/L", FormatPrice(1.4589))
}
