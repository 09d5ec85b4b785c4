package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyUsesLocalCalendarDay(t *testing.T) {
	instant := time.Date(2024, 3, 7, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-03-07", Key(instant))
}

func TestKeyZeroPads(t *testing.T) {
	instant := time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-02", Key(instant))
}

func TestKeyStableAcrossRepresentations(t *testing.T) {
	// The same instant expressed in different zones must bucket to the
	// same local day.
	local := time.Date(2024, 6, 15, 14, 0, 0, 0, time.Local)
	assert.Equal(t, Key(local), Key(local.UTC()))
	assert.Equal(t, Key(local), Key(local.In(time.FixedZone("weird", -11*3600))))
}

func TestKeyIdempotentWithinDay(t *testing.T) {
	morning := time.Date(2024, 6, 15, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 6, 15, 23, 59, 59, 0, time.Local)
	assert.Equal(t, Key(morning), Key(night))
}

func TestTodayMatchesKeyOfNow(t *testing.T) {
	assert.Equal(t, Key(time.Now()), Today())
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-01", true},
		{"2024-12-31", true},
		{"2024-1-1", false},
		{"2024-13-01", false},
		{"not-a-date", false},
		{"", false},
		{"2024-01-01T10:00:00Z", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.input), "input %q", tt.input)
	}
}
