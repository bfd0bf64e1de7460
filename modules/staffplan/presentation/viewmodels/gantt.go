package viewmodels

import (
	"github.com/google/uuid"
)

type GanttView struct {
	Locale          string        `json:"locale"`
	WindowStart     string        `json:"windowStart"`
	WindowEnd       string        `json:"windowEnd"`
	WindowLabel     string        `json:"windowLabel"`
	Zoom            int           `json:"zoom"`
	RangeStart      int           `json:"rangeStart"`
	RangeEnd        int           `json:"rangeEnd"`
	Today           string        `json:"today"`
	ReferenceDate   string        `json:"referenceDate"`
	TodayMarker     *float64      `json:"todayMarker,omitempty"`
	ReferenceMarker *float64      `json:"referenceMarker,omitempty"`
	Months          []MonthHeader `json:"months"`
	Years           []YearHeader  `json:"years"`
	Rows            []PositionRow `json:"rows"`
	Shown           int           `json:"shown"`
	Total           int           `json:"total"`
	WhiteSpots      int           `json:"whiteSpots"`
	GapsAtReference int           `json:"gapsAtReference"`
}

type MonthHeader struct {
	Key           string  `json:"key"`
	Label         string  `json:"label"`
	WidthPercent  float64 `json:"widthPercent"`
	IsFirstOfYear bool    `json:"isFirstOfYear"`
}

type YearHeader struct {
	Year         int     `json:"year"`
	StartPercent float64 `json:"startPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

type PositionRow struct {
	RowKey           uuid.UUID `json:"rowKey"`
	Key              string    `json:"key"`
	Label            string    `json:"label"`
	ObjectCode       string    `json:"objectCode,omitempty"`
	Description      string    `json:"description,omitempty"`
	GradeClass       string    `json:"gradeClass"`
	RelevanceType    string    `json:"relevanceType,omitempty"`
	OrganizationUnit string    `json:"organizationUnit,omitempty"`
	TariffGroup      string    `json:"tariffGroup,omitempty"`
	CurrentFill      string    `json:"currentFill"`
	HasGaps          bool      `json:"hasGaps"`
	IsUnfilled       bool      `json:"isUnfilled"`
	Bands            []Band    `json:"bands"`
	Slices           []Slice   `json:"slices,omitempty"`
}

type Band struct {
	Level     int       `json:"level"`
	Threshold string    `json:"threshold"`
	Segments  []Segment `json:"segments"`
}

type Segment struct {
	Start        string   `json:"start"`
	End          string   `json:"end"`
	StartPercent float64  `json:"startPercent"`
	WidthPercent float64  `json:"widthPercent"`
	FillLevel    int      `json:"fillLevel"`
	IsFilled     bool     `json:"isFilled"`
	Personnel    []string `json:"personnel,omitempty"`
	Tooltip      string   `json:"tooltip"`
}

// Slice is one constant-occupancy interval of a row.
type Slice struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	TotalFill   string `json:"totalFill"`
	RawFill     string `json:"rawFill"`
	Overfilled  bool   `json:"overfilled,omitempty"`
	Assignments int    `json:"assignments"`
}
