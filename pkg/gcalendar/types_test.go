package gcalendar_test

import (
	"testing"
	"time"

	"assistant-widget/pkg/gcalendar"
)

func TestFormatDuration(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"minutes only", base.Add(45 * time.Minute), "45m"},
		{"hours and minutes", base.Add(90 * time.Minute), "1h 30m"},
		{"exact hours", base.Add(2 * time.Hour), "2h"},
		{"zero window", base, "0m"},
		{"negative window clamps", base.Add(-time.Hour), "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gcalendar.FormatDuration(base, tt.end)
			if got != tt.want {
				t.Errorf("FormatDuration() = %q, want %q", got, tt.want)
			}
		})
	}
}
