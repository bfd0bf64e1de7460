package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", Date(2024, 3, 1), Date(2024, 3, 1), 0},
		{"leap february", Date(2024, 2, 1), Date(2024, 3, 1), 29},
		{"reversed", Date(2024, 3, 1), Date(2024, 2, 1), -29},
		{"sentinel span", UnboundedStart, UnboundedEnd, 73048},
		{"ignores time of day", time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), Date(2024, 1, 2), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysBetween(tc.a, tc.b))
		})
	}
	assert.Equal(t, 366, InclusiveDays(Date(2024, 1, 1), Date(2024, 12, 31)))
}

func TestMonthBounds(t *testing.T) {
	require.Equal(t, Date(2024, 2, 1), StartOfMonth(Date(2024, 2, 17)))
	require.Equal(t, Date(2024, 2, 29), EndOfMonth(Date(2024, 2, 17)))
	require.Equal(t, Date(2023, 12, 31), EndOfMonth(Date(2023, 12, 1)))
}

func TestDateOnly_KeepsLocalCalendarDate(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	got := DateOnly(time.Date(2024, 6, 1, 0, 30, 0, 0, berlin))
	require.Equal(t, Date(2024, 6, 1), got)
	require.True(t, DateOnly(time.Time{}).IsZero())
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	require.Equal(t, Date(2024, 3, 15), got)

	got, err = ParseDate("2024-03-15T10:00:00Z")
	require.NoError(t, err)
	require.Equal(t, Date(2024, 3, 15), got)

	_, err = ParseDate("15/03/2024")
	require.Error(t, err)
	_, err = ParseDate("  ")
	require.Error(t, err)
}

func TestDateRange(t *testing.T) {
	r := DateRange{Start: Date(2024, 1, 1), End: Date(2024, 1, 31)}
	assert.Equal(t, 31, r.Days())
	assert.True(t, r.Contains(Date(2024, 1, 31)))
	assert.False(t, r.Contains(Date(2024, 2, 1)))

	clipped := r.Intersect(DateRange{Start: Date(2024, 1, 20), End: Date(2024, 6, 1)})
	assert.Equal(t, DateRange{Start: Date(2024, 1, 20), End: Date(2024, 1, 31)}, clipped)

	empty := r.Intersect(DateRange{Start: Date(2025, 1, 1), End: Date(2025, 2, 1)})
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Days())
}
