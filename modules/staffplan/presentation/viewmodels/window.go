package viewmodels

type Window struct {
	Locale          string        `json:"locale"`
	State           string        `json:"state"`
	Today           string        `json:"today"`
	OuterStart      string        `json:"outerStart"`
	OuterEnd        string        `json:"outerEnd"`
	TotalDays       int           `json:"totalDays"`
	Zoom            int           `json:"zoom"`
	RangeStart      int           `json:"rangeStart"`
	RangeEnd        int           `json:"rangeEnd"`
	RangeStartLabel string        `json:"rangeStartLabel"`
	RangeEndLabel   string        `json:"rangeEndLabel"`
	VisibleStart    string        `json:"visibleStart"`
	VisibleEnd      string        `json:"visibleEnd"`
	VisibleLabel    string        `json:"visibleLabel"`
	TodayMarker     *float64      `json:"todayMarker,omitempty"`
	Presets         []ZoomPreset  `json:"presets"`
	Months          []MonthHeader `json:"months"`
	Years           []YearHeader  `json:"years"`
}

type ZoomPreset struct {
	Months   int    `json:"months"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type Options struct {
	RelevanceTypes    []string `json:"relevanceTypes"`
	OrganizationUnits []string `json:"organizationUnits"`
	TariffGroups      []string `json:"tariffGroups"`
}
