package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	dl, ok := ParseDeadline("2024-03-10")
	require.True(t, ok)
	assert.Equal(t, 2024, dl.Year())
	assert.Equal(t, time.March, dl.Month())
	assert.Equal(t, 10, dl.Day())

	_, ok = ParseDeadline("2024-03-10T15:04:05Z")
	assert.True(t, ok)

	for _, bad := range []string{"", "not-a-date", "2024-13-99", "10/03/2024"} {
		_, ok := ParseDeadline(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestIsOverdue_BreachesOnlyAfterDayEnd(t *testing.T) {
	deadline := "2024-03-10"

	morning := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	assert.False(t, IsOverdue(deadline, morning))

	lastInstant := time.Date(2024, 3, 10, 23, 59, 59, int(999*time.Millisecond), time.Local)
	assert.False(t, IsOverdue(deadline, lastInstant))

	nextDay := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	assert.True(t, IsOverdue(deadline, nextDay))
}

func TestIsOverdue_MalformedFailsClosed(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	assert.False(t, IsOverdue("", now))
	assert.False(t, IsOverdue("garbage", now))
}

func TestDaysUntil_CalendarDayDifference(t *testing.T) {
	// Late in the day vs. early deadline day: still a whole calendar day apart.
	now := time.Date(2024, 3, 10, 23, 0, 0, 0, time.Local)

	days, ok := DaysUntil("2024-03-11", now)
	require.True(t, ok)
	assert.Equal(t, 1, days)

	days, ok = DaysUntil("2024-03-10", now)
	require.True(t, ok)
	assert.Equal(t, 0, days)

	days, ok = DaysUntil("2024-03-06", now)
	require.True(t, ok)
	assert.Equal(t, -4, days)

	_, ok = DaysUntil("", now)
	assert.False(t, ok)
}

func TestBand(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	assert.Equal(t, BandOverdue, Band("2024-03-09", now))
	assert.Equal(t, BandDueToday, Band("2024-03-10", now))
	assert.Equal(t, BandDueSoon, Band("2024-03-12", now))
	assert.Equal(t, BandSafe, Band("2024-03-20", now))
	assert.Equal(t, BandSafe, Band("", now))
}
