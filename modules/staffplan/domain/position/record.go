package position

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one employee-position-period row as delivered by the ingestion boundary.
// Empty strings mean "absent".
type Record struct {
	ID                    string           `json:"id,omitempty"`
	ObjectID              string           `json:"objectId,omitempty"`
	Status                string           `json:"status,omitempty"`
	ObjectCode            string           `json:"objectCode,omitempty"`
	ObjectDescription     string           `json:"objectDescription,omitempty"`
	PositionRelevanceType string           `json:"positionRelevanceType,omitempty"`
	OrganizationUnit      string           `json:"organizationUnit,omitempty"`
	DepartmentID          string           `json:"departmentId,omitempty"`
	DepartmentID2         string           `json:"departmentId2,omitempty"`
	TariffGroup           string           `json:"tariffGroup,omitempty"`
	BaseGrade             string           `json:"baseGrade,omitempty"`
	Fund                  string           `json:"fund,omitempty"`
	PositionValue         *decimal.Decimal `json:"positionValue,omitempty"`
	PersonnelNumber       string           `json:"personnelNumber,omitempty"`
	Percentage            *decimal.Decimal `json:"percentage,omitempty"`
	StartDate             string           `json:"startDate,omitempty"`
	EndDate               string           `json:"endDate,omitempty"`
	EmployeeGroup         string           `json:"employeeGroup,omitempty"`
	EmployeeCircle        string           `json:"employeeCircle,omitempty"`
	EntryDate             string           `json:"entryDate,omitempty"`
	ExpectedExitDate      string           `json:"expectedExitDate,omitempty"`
}

// Key is the logical position identifier: objectId, falling back to id.
func (r Record) Key() string {
	if k := strings.TrimSpace(r.ObjectID); k != "" {
		return k
	}
	return strings.TrimSpace(r.ID)
}

// CarriesAssignment reports whether the row describes an occupancy and not just the position.
func (r Record) CarriesAssignment() bool {
	if strings.TrimSpace(r.PersonnelNumber) != "" {
		return true
	}
	return r.Percentage != nil && !r.Percentage.IsZero()
}
