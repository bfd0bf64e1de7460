package position

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

// rowNamespace seeds the deterministic row keys.
var rowNamespace = uuid.MustParse("6f1c8a52-3d0e-5b7a-9c4e-2a1b7d9e0f31")

// Group is the aggregate of all records sharing a position key.
type Group struct {
	Key                   string             `json:"key"`
	RowKey                uuid.UUID          `json:"rowKey"`
	ID                    string             `json:"id,omitempty"`
	Status                string             `json:"status,omitempty"`
	ObjectCode            string             `json:"objectCode,omitempty"`
	ObjectDescription     string             `json:"objectDescription,omitempty"`
	PositionRelevanceType string             `json:"positionRelevanceType,omitempty"`
	OrganizationUnit      string             `json:"organizationUnit,omitempty"`
	DepartmentID          string             `json:"departmentId,omitempty"`
	TariffGroup           string             `json:"tariffGroup,omitempty"`
	BaseGrade             string             `json:"baseGrade,omitempty"`
	Fund                  string             `json:"fund,omitempty"`
	PositionValue         decimal.Decimal    `json:"positionValue"`
	Assignments           []Assignment       `json:"assignments"`
	DateRange             timeline.DateRange `json:"dateRange"`
}

func NewGroup(key string) *Group {
	return &Group{
		Key:           key,
		RowKey:        RowKeyFor(key),
		PositionValue: decimal.NewFromInt(1),
		Assignments:   []Assignment{},
	}
}

// RowKeyFor derives a stable identifier for a position key.
func RowKeyFor(key string) uuid.UUID {
	return uuid.NewSHA1(rowNamespace, []byte(key))
}

func (g *Group) HasAssignments() bool {
	return len(g.Assignments) > 0
}

// Label is the display name: description, then code. Empty when neither is known.
func (g *Group) Label() string {
	if d := strings.TrimSpace(g.ObjectDescription); d != "" {
		return d
	}
	return strings.TrimSpace(g.ObjectCode)
}

// GradeClass buckets the pay grade by its leading letter.
func (g *Group) GradeClass() string {
	grade := strings.ToUpper(strings.TrimSpace(g.TariffGroup))
	switch {
	case grade == "":
		return "grade-other"
	case strings.HasPrefix(grade, "W"):
		return "grade-w"
	case strings.HasPrefix(grade, "A"):
		return "grade-a"
	case strings.HasPrefix(grade, "E"):
		return "grade-e"
	default:
		return "grade-other"
	}
}
