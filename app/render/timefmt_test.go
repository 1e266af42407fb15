package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"thirty seconds", now.Add(-30 * time.Second), "Just now"},
		{"five minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"three hours", now.Add(-3 * time.Hour), "3h ago"},
		{"two days", now.Add(-48 * time.Hour), "2d ago"},
		{"six days", now.Add(-6 * 24 * time.Hour), "6d ago"},
		{"same year", time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), "Mar 3"},
		{"previous year", time.Date(2024, time.November, 20, 9, 0, 0, 0, time.UTC), "Nov 20, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(tt.ts, now))
		})
	}
}

func TestFormatRelativeTimeIsPure(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	ts := now.Add(-90 * time.Minute)

	first := FormatRelativeTime(ts, now)
	second := FormatRelativeTime(ts, now)
	assert.Equal(t, first, second)
}

func TestAvatarFor(t *testing.T) {
	t.Run("two word name", func(t *testing.T) {
		avatar := AvatarFor("Ada Lovelace")
		assert.Equal(t, "AL", avatar.Initials)
	})

	t.Run("single word name", func(t *testing.T) {
		avatar := AvatarFor("grace")
		assert.Equal(t, "G", avatar.Initials)
	})

	t.Run("three word name keeps two initials", func(t *testing.T) {
		avatar := AvatarFor("Jean Luc Picard")
		assert.Equal(t, "JL", avatar.Initials)
	})

	t.Run("empty name", func(t *testing.T) {
		avatar := AvatarFor("")
		assert.Equal(t, "?", avatar.Initials)
		assert.Equal(t, avatarPalette[0], avatar.Color)
	})

	t.Run("color keyed by name length", func(t *testing.T) {
		assert.Equal(t, avatarPalette[3%5], AvatarFor("Ada").Color)
		assert.Equal(t, avatarPalette[5%5], AvatarFor("Grace").Color)
	})

	t.Run("same name same avatar", func(t *testing.T) {
		assert.Equal(t, AvatarFor("Ada Lovelace"), AvatarFor("Ada Lovelace"))
	})
}
