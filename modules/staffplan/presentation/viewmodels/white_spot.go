package viewmodels

import (
	"github.com/google/uuid"
)

// WhiteSpot is a position that is not fully staffed somewhere in the visible window.
type WhiteSpot struct {
	RowKey           uuid.UUID `json:"rowKey"`
	Key              string    `json:"key"`
	Label            string    `json:"label"`
	OrganizationUnit string    `json:"organizationUnit,omitempty"`
	TariffGroup      string    `json:"tariffGroup,omitempty"`
	ReferenceDate    string    `json:"referenceDate"`
	CurrentFill      string    `json:"currentFill"`
	Unfilled         string    `json:"unfilled"`
	HasGaps          bool      `json:"hasGaps"`
}
