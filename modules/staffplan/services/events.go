package services

import (
	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

type RecordsLoadedEvent struct {
	Version   uint64
	Records   int
	Positions int
	Skipped   int
}

type WindowChangedEvent struct {
	Window timeline.DateRange
	Zoom   int
	State  WindowState
}

type ViewRecomputedEvent struct {
	Window     timeline.DateRange
	Total      int
	Shown      int
	WhiteSpots int
}
