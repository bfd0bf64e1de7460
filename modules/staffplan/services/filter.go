package services

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/shopspring/decimal"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/pkg/intl"
)

// Criteria are the user-driven row predicates. Empty fields do not filter.
type Criteria struct {
	Search string `json:"search,omitempty"`
	// Fuzzy matches the search as an in-order subsequence instead of a substring.
	Fuzzy            bool   `json:"fuzzy,omitempty"`
	RelevanceType    string `json:"relevanceType,omitempty"`
	OrganizationUnit string `json:"organizationUnit,omitempty"`
	TariffGroup      string `json:"tariffGroup,omitempty"`
	UnfilledOnly     bool   `json:"unfilledOnly,omitempty"`
}

// Row is one position with its slices, bands and occupancy at the reference date.
type Row struct {
	Group       *position.Group `json:"group"`
	Slices      []TimeSlice     `json:"slices"`
	Projection  Projection      `json:"projection"`
	CurrentFill decimal.Decimal `json:"currentFill"`
}

func (r Row) HasGaps() bool {
	return r.Projection.HasGaps
}

// IsUnfilled is true when the row has a visible gap or is under 100 at the reference date.
func (r Row) IsUnfilled() bool {
	return r.Projection.HasGaps || r.CurrentFill.LessThan(hundred)
}

type FilterResult struct {
	Rows []Row `json:"rows"`
	// WhiteSpots counts unfilled rows of the unfiltered input.
	WhiteSpots int `json:"whiteSpots"`
	// GapsAtReference counts unfiltered rows under 100 at the reference date.
	GapsAtReference int `json:"gapsAtReference"`
	Total           int `json:"total"`
}

// ApplyFilter keeps the rows matching c in input order. The counters always cover all rows.
func ApplyFilter(rows []Row, c Criteria) FilterResult {
	res := FilterResult{Rows: make([]Row, 0, len(rows)), Total: len(rows)}
	m := newMatcher(c)
	for _, r := range rows {
		if r.IsUnfilled() {
			res.WhiteSpots++
		}
		if r.CurrentFill.LessThan(hundred) {
			res.GapsAtReference++
		}
		if m.match(r) {
			res.Rows = append(res.Rows, r)
		}
	}
	return res
}

type matcher struct {
	c      Criteria
	needle string
}

func newMatcher(c Criteria) matcher {
	return matcher{c: c, needle: intl.Fold(strings.TrimSpace(c.Search))}
}

func (m matcher) match(r Row) bool {
	g := r.Group
	if m.c.RelevanceType != "" && g.PositionRelevanceType != m.c.RelevanceType {
		return false
	}
	if m.c.OrganizationUnit != "" && g.OrganizationUnit != m.c.OrganizationUnit {
		return false
	}
	if m.c.TariffGroup != "" && g.TariffGroup != m.c.TariffGroup {
		return false
	}
	if m.c.UnfilledOnly && !r.IsUnfilled() {
		return false
	}
	return m.matchText(g)
}

func (m matcher) matchText(g *position.Group) bool {
	if m.needle == "" {
		return true
	}
	for _, field := range searchableFields(g) {
		if field == "" {
			continue
		}
		if m.c.Fuzzy {
			if fuzzy.MatchNormalizedFold(m.needle, field) {
				return true
			}
			continue
		}
		if strings.Contains(intl.Fold(field), m.needle) {
			return true
		}
	}
	return false
}

func searchableFields(g *position.Group) []string {
	fields := []string{g.ObjectDescription, g.ObjectCode, g.TariffGroup, g.OrganizationUnit}
	for _, a := range g.Assignments {
		fields = append(fields, a.PersonnelNumber)
	}
	return fields
}

// Options are the distinct values offered by the category selectors.
type Options struct {
	RelevanceTypes    []string `json:"relevanceTypes"`
	OrganizationUnits []string `json:"organizationUnits"`
	TariffGroups      []string `json:"tariffGroups"`
}

func FilterOptions(groups []*position.Group) Options {
	rel, units, grades := map[string]struct{}{}, map[string]struct{}{}, map[string]struct{}{}
	for _, g := range groups {
		addNonEmpty(rel, g.PositionRelevanceType)
		addNonEmpty(units, g.OrganizationUnit)
		addNonEmpty(grades, g.TariffGroup)
	}
	return Options{
		RelevanceTypes:    sortedKeys(rel),
		OrganizationUnits: sortedKeys(units),
		TariffGroups:      sortedKeys(grades),
	}
}

func addNonEmpty(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
