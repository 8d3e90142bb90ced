package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todotrack/internal/core/domain"
)

func TestCountdown(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"exactly now", now, "0m left"},
		{"future minutes", now.Add(45 * time.Minute), "45m left"},
		{"future hours and minutes", now.Add(90 * time.Minute), "1h 30m left"},
		{"past hours and minutes", now.Add(-90 * time.Minute), "1h 30m ago"},
		{"future days", now.Add(49 * time.Hour), "2d 1h 0m left"},
		{"past days", now.Add(-(24*time.Hour + 10*time.Minute)), "1d 0h 10m ago"},
		{"sub-minute future floors to zero", now.Add(30 * time.Second), "0m left"},
		{"sub-minute past floors to zero", now.Add(-30 * time.Second), "0m ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.Countdown(tc.target, now))
		})
	}
}
