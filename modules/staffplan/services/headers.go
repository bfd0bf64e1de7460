package services

import (
	"fmt"
	"time"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

type MonthHeader struct {
	Key           string     `json:"key"`
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	WidthPercent  float64    `json:"widthPercent"`
	IsFirstOfYear bool       `json:"isFirstOfYear"`
}

type YearHeader struct {
	Year         int     `json:"year"`
	StartPercent float64 `json:"startPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// MonthHeaders splits the window into calendar months, clipped at the window edges.
func MonthHeaders(window timeline.DateRange) []MonthHeader {
	if window.IsEmpty() {
		return nil
	}
	var out []MonthHeader
	lastYear := -1
	for cur := window.Start; !cur.After(window.End); cur = timeline.StartOfMonth(cur).AddDate(0, 1, 0) {
		end := timeline.Min(timeline.EndOfMonth(cur), window.End)
		_, width := WindowOffset(window, cur, end)
		out = append(out, MonthHeader{
			Key:           fmt.Sprintf("%04d-%02d", cur.Year(), int(cur.Month())),
			Year:          cur.Year(),
			Month:         cur.Month(),
			WidthPercent:  width,
			IsFirstOfYear: cur.Month() == time.January && lastYear != cur.Year(),
		})
		lastYear = cur.Year()
	}
	return out
}

// YearHeaders aggregates month headers so year cells line up with their months.
func YearHeaders(months []MonthHeader) []YearHeader {
	var out []YearHeader
	cumulative := 0.0
	for _, m := range months {
		if len(out) == 0 || out[len(out)-1].Year != m.Year {
			out = append(out, YearHeader{Year: m.Year, StartPercent: cumulative})
		}
		out[len(out)-1].WidthPercent += m.WidthPercent
		cumulative += m.WidthPercent
	}
	return out
}
