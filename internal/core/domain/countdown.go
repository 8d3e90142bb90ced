package domain

import (
	"fmt"
	"strings"
	"time"
)

// Countdown renders the distance between now and target as "2d 4h 10m left"
// or "1h 30m ago". Units are floored from the absolute millisecond
// difference; days are omitted when zero and hours when days are zero too.
// A target equal to now reads "0m left".
func Countdown(target, now time.Time) string {
	diff := target.UnixMilli() - now.UnixMilli()

	abs := diff
	if abs < 0 {
		abs = -abs
	}

	minutes := abs / (1000 * 60)
	days := minutes / (60 * 24)
	hours := (minutes % (60 * 24)) / 60
	mins := minutes % 60

	var parts []string

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}

	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}

	parts = append(parts, fmt.Sprintf("%dm", mins))

	direction := "left"
	if diff < 0 {
		direction = "ago"
	}

	return strings.Join(parts, " ") + " " + direction
}
