package util

import (
	"fmt"
	"strconv"
	"time"
)

var byteUnits = []string{"KB", "MB", "GB", "TB"}

// FormatBytes renders a size in binary units, e.g. "1.5 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	v, unit := float64(n), -1
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", v, byteUnits[unit])
}

// FormatDuration renders d at second precision with the two largest units, e.g. "1h30m" or "5m10s".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
