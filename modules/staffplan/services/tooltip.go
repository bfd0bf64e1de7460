package services

import (
	"strings"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/pkg/intl"
)

// TooltipBuilder renders the multi-line slice summary shown on hover.
type TooltipBuilder struct {
	l *intl.Localizer
}

func NewTooltipBuilder(l *intl.Localizer) *TooltipBuilder {
	return &TooltipBuilder{l: l}
}

func (b *TooltipBuilder) Build(g *position.Group, slice TimeSlice) string {
	if b == nil || b.l == nil {
		return ""
	}
	l := b.l
	label := g.Label()
	if label == "" {
		label = l.T("Tooltip.UnknownPosition", nil)
	}
	grade := strings.TrimSpace(g.TariffGroup)
	if grade == "" {
		grade = l.T("Tooltip.GradeMissing", nil)
	}
	lines := []string{
		label,
		l.T("Tooltip.Grade", map[string]any{"Grade": grade}),
		"",
	}

	if len(slice.Assignments) == 0 {
		lines = append(lines, l.T("Tooltip.NoAssignments", nil))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, l.T("Tooltip.AssignmentsHeader", nil))
	for _, a := range slice.Assignments {
		start := l.T("Tooltip.OpenStart", nil)
		if !a.OpenStart {
			start = l.Date(a.Start)
		}
		end := l.T("Tooltip.OpenEnd", nil)
		if !a.OpenEnd {
			end = l.Date(a.End)
		}
		lines = append(lines, l.T("Tooltip.AssignmentLine", map[string]any{
			"Personnel": a.PersonnelNumber,
			"Percent":   l.Number(a.Percentage),
			"Start":     start,
			"End":       end,
		}))
	}
	lines = append(lines, "", l.T("Tooltip.Total", map[string]any{"Total": l.Fixed(slice.RawFill, 1)}))
	if slice.IsGap() {
		lines = append(lines, l.T("Tooltip.Gap", map[string]any{"Gap": l.Fixed(hundred.Sub(slice.RawFill), 1)}))
	}
	return strings.Join(lines, "\n")
}
