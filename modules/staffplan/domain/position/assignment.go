package position

import (
	"time"

	"github.com/shopspring/decimal"
)

const UnknownPersonnel = "Unknown"

// Assignment is a percentage-valued occupancy of a position over a closed date interval.
// Open bounds are stored as the timeline sentinels and flagged so they are never rendered.
type Assignment struct {
	PersonnelNumber string          `json:"personnelNumber"`
	Percentage      decimal.Decimal `json:"percentage"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	OpenStart       bool            `json:"openStart,omitempty"`
	OpenEnd         bool            `json:"openEnd,omitempty"`
	Source          int             `json:"source"`
}

// Overlaps reports whether the assignment is active on any day of [start, end].
// An assignment ending before it starts is never active.
func (a Assignment) Overlaps(start, end time.Time) bool {
	if a.End.Before(a.Start) {
		return false
	}
	return !a.Start.After(end) && !a.End.Before(start)
}

func (a Assignment) ActiveOn(day time.Time) bool {
	return a.Overlaps(day, day)
}
