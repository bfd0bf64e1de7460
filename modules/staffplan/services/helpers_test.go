package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
	"github.com/tum-aet/staffplan/pkg/intl"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func d(year int, month time.Month, day int) time.Time {
	return timeline.Date(year, month, day)
}

func pct(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func assignmentRecord(objectID, pernr, percentage, start, end string) position.Record {
	return position.Record{
		ObjectID:          objectID,
		ObjectDescription: "Research Associate",
		TariffGroup:       "E13",
		PersonnelNumber:   pernr,
		Percentage:        pct(percentage),
		StartDate:         start,
		EndDate:           end,
	}
}

// scenarioC is two overlapping assignments: 60% Jan-Mar and 50% Mar-Jun 2024.
func scenarioC(t *testing.T) *position.Group {
	t.Helper()
	g := GroupRecords([]position.Record{
		assignmentRecord("OBJ-1", "P1", "60", "2024-01-01", "2024-03-31"),
		assignmentRecord("OBJ-1", "P2", "50", "2024-03-01", "2024-06-30"),
	}, now)
	group, ok := g.Lookup("OBJ-1")
	require.True(t, ok)
	return group
}

func localizer(t *testing.T, code string) *intl.Localizer {
	t.Helper()
	lang, err := intl.Lookup(code)
	require.NoError(t, err)
	return intl.NewLocalizer(intl.LoadBundle(), lang)
}

func fullYear2024() timeline.DateRange {
	return timeline.DateRange{Start: d(2024, 1, 1), End: d(2024, 12, 31)}
}
