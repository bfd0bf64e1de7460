package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

const isoLayout = "2006-01-02"

// US slash dates with one or two digit month and day, German dotted dates and ISO.
// Two-digit year layouts come last so four-digit years are never truncated.
var dateLayouts = []string{
	"1/2/2006",
	"2.1.2006",
	isoLayout,
	"1/2/06",
	"2.1.06",
}

var excelSerial = regexp.MustCompile(`^\d{4,5}(\.\d+)?$`)

// parseDecimal accepts a dot or a comma as decimal separator and a trailing percent sign.
func parseDecimal(v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
	return decimal.NewFromString(strings.Replace(v, ",", ".", 1))
}

// parseDate reads the date formats found in position exports. Two-digit years
// 00-30 land in the 2000s, 31-99 in the 1900s.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if excelSerial.MatchString(v) {
		serial, err := strconv.ParseFloat(v, 64)
		if err == nil {
			t, err := excelize.ExcelDateToTime(serial, false)
			if err == nil {
				return timeline.DateOnly(t), nil
			}
		}
	}
	if t, err := timeline.ParseDate(v); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err != nil {
			continue
		}
		if strings.HasSuffix(layout, "06") && !strings.HasSuffix(layout, "2006") {
			t = pivotYear(t)
		}
		return timeline.DateOnly(t), nil
	}
	return time.Time{}, gerrors.Errorf("unrecognized date %q", v)
}

// pivotYear moves a year parsed from two digits into 2000-2030 or 1931-1999.
func pivotYear(t time.Time) time.Time {
	yy := t.Year() % 100
	year := 1900 + yy
	if yy <= 30 {
		year = 2000 + yy
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
