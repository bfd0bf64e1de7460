package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

const reasonMissingKey = "missing objectId and id"

type SkippedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// FieldConflict is a later record disagreeing with the value kept for its position.
type FieldConflict struct {
	Key     string `json:"key"`
	Field   string `json:"field"`
	Kept    string `json:"kept"`
	Ignored string `json:"ignored"`
	Index   int    `json:"index"`
}

// DateIssue is a date that could not be used as given.
type DateIssue struct {
	Key    string `json:"key"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Grouping is the grouper output for one record snapshot. Groups keep first-seen order.
type Grouping struct {
	Groups     []*position.Group `json:"groups"`
	Skipped    []SkippedRecord   `json:"skipped,omitempty"`
	Conflicts  []FieldConflict   `json:"conflicts,omitempty"`
	DateIssues []DateIssue       `json:"dateIssues,omitempty"`
	index      map[string]int
}

func (gr *Grouping) Lookup(key string) (*position.Group, bool) {
	i, ok := gr.index[key]
	if !ok {
		return nil, false
	}
	return gr.Groups[i], true
}

type descriptiveField struct {
	name   string
	record func(*position.Record) string
	group  func(*position.Group) *string
}

var descriptiveFields = []descriptiveField{
	{"id", func(r *position.Record) string { return r.ID }, func(g *position.Group) *string { return &g.ID }},
	{"status", func(r *position.Record) string { return r.Status }, func(g *position.Group) *string { return &g.Status }},
	{"objectCode", func(r *position.Record) string { return r.ObjectCode }, func(g *position.Group) *string { return &g.ObjectCode }},
	{"objectDescription", func(r *position.Record) string { return r.ObjectDescription }, func(g *position.Group) *string { return &g.ObjectDescription }},
	{"positionRelevanceType", func(r *position.Record) string { return r.PositionRelevanceType }, func(g *position.Group) *string { return &g.PositionRelevanceType }},
	{"organizationUnit", func(r *position.Record) string { return r.OrganizationUnit }, func(g *position.Group) *string { return &g.OrganizationUnit }},
	{"departmentId", func(r *position.Record) string { return r.DepartmentID }, func(g *position.Group) *string { return &g.DepartmentID }},
	{"tariffGroup", func(r *position.Record) string { return r.TariffGroup }, func(g *position.Group) *string { return &g.TariffGroup }},
	{"baseGrade", func(r *position.Record) string { return r.BaseGrade }, func(g *position.Group) *string { return &g.BaseGrade }},
	{"fund", func(r *position.Record) string { return r.Fund }, func(g *position.Group) *string { return &g.Fund }},
}

// GroupRecords collapses records into one group per position key in a single pass.
// The first non-empty value of a descriptive field wins; disagreeing later values are
// reported, not applied. now is used as the degenerate date range of groups without assignments.
func GroupRecords(records []position.Record, now time.Time) *Grouping {
	out := &Grouping{
		Groups: make([]*position.Group, 0),
		index:  make(map[string]int),
	}
	valueSet := make(map[string]bool)

	for i := range records {
		rec := &records[i]
		key := rec.Key()
		if key == "" {
			out.Skipped = append(out.Skipped, SkippedRecord{Index: i, Reason: reasonMissingKey})
			continue
		}

		idx, ok := out.index[key]
		if !ok {
			idx = len(out.Groups)
			out.index[key] = idx
			out.Groups = append(out.Groups, position.NewGroup(key))
		}
		g := out.Groups[idx]

		for _, f := range descriptiveFields {
			v := strings.TrimSpace(f.record(rec))
			if v == "" {
				continue
			}
			slot := f.group(g)
			switch {
			case *slot == "":
				*slot = v
			case *slot != v:
				out.Conflicts = append(out.Conflicts, FieldConflict{Key: key, Field: f.name, Kept: *slot, Ignored: v, Index: i})
			}
		}

		if rec.PositionValue != nil && !rec.PositionValue.IsZero() {
			switch {
			case !valueSet[key]:
				g.PositionValue = *rec.PositionValue
				valueSet[key] = true
			case !g.PositionValue.Equal(*rec.PositionValue):
				out.Conflicts = append(out.Conflicts, FieldConflict{
					Key: key, Field: "positionValue", Kept: g.PositionValue.String(), Ignored: rec.PositionValue.String(), Index: i,
				})
			}
		}

		if rec.CarriesAssignment() {
			g.Assignments = append(g.Assignments, out.assignmentFrom(key, i, rec))
		}
	}

	today := timeline.DateOnly(now)
	for _, g := range out.Groups {
		g.DateRange = dateRangeOf(g.Assignments, today)
	}
	return out
}

func (gr *Grouping) assignmentFrom(key string, idx int, rec *position.Record) position.Assignment {
	a := position.Assignment{
		PersonnelNumber: strings.TrimSpace(rec.PersonnelNumber),
		Percentage:      decimal.Zero,
		Source:          idx,
	}
	if a.PersonnelNumber == "" {
		a.PersonnelNumber = position.UnknownPersonnel
	}
	if rec.Percentage != nil {
		a.Percentage = *rec.Percentage
	}

	var ok bool
	if a.Start, ok = gr.resolveDate(key, idx, "startDate", rec.StartDate); !ok {
		a.Start, a.OpenStart = timeline.UnboundedStart, true
	}
	if a.End, ok = gr.resolveDate(key, idx, "endDate", rec.EndDate); !ok {
		a.End, a.OpenEnd = timeline.UnboundedEnd, true
	}
	if a.End.Before(a.Start) {
		gr.DateIssues = append(gr.DateIssues, DateIssue{
			Key: key, Field: "endDate", Value: rec.EndDate, Index: idx, Reason: "end before start",
		})
	}
	return a
}

// resolveDate parses a record date. Missing and malformed values report false;
// malformed ones are additionally recorded as a date issue.
func (gr *Grouping) resolveDate(key string, idx int, field, raw string) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, false
	}
	t, err := timeline.ParseDate(raw)
	if err != nil {
		gr.DateIssues = append(gr.DateIssues, DateIssue{
			Key: key, Field: field, Value: raw, Index: idx, Reason: "unparsable, treated as unbounded",
		})
		return time.Time{}, false
	}
	return t, true
}

func dateRangeOf(assignments []position.Assignment, today time.Time) timeline.DateRange {
	if len(assignments) == 0 {
		return timeline.DateRange{Start: today, End: today}
	}
	r := timeline.DateRange{Start: assignments[0].Start, End: assignments[0].End}
	for _, a := range assignments[1:] {
		r.Start = timeline.Min(r.Start, a.Start)
		r.End = timeline.Max(r.End, a.End)
	}
	return r
}
