package main

import (
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/tum-aet/staffplan/modules/staffplan/services"
)

// windowSetter is satisfied by both the gantt service and a bare window controller.
type windowSetter interface {
	SetZoom(months int) error
	SetDates(start, end time.Time) error
}

// windowFlags select the visible window: a zoom preset or an explicit date range.
type windowFlags struct {
	zoom int
	rng  string
}

func (f *windowFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.zoom, "zoom", 0, "Zoom preset in months (3, 6, 12, 24, 36, 60)")
	cmd.Flags().StringVar(&f.rng, "range", "", "Custom window START,END (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("zoom", "range")
}

// apply reports whether a window was chosen by flag or profile.
func (f *windowFlags) apply(cmd *cobra.Command, s *session, target windowSetter) (bool, error) {
	var err error
	switch {
	case cmd.Flags().Changed("zoom"):
		err = target.SetZoom(f.zoom)
	case cmd.Flags().Changed("range"):
		err = setRange(target, f.rng)
	case s.profile.Range != nil:
		err = setRange(target, s.profile.Range.Start+","+s.profile.Range.End)
	case s.profile.Zoom > 0:
		err = target.SetZoom(s.profile.Zoom)
	default:
		return false, nil
	}
	if gerrors.Is(err, services.ErrUnknownZoom) || gerrors.Is(err, services.ErrInvalidRange) {
		return false, withCode(exitUsage, err)
	}
	return err == nil, err
}

func setRange(target windowSetter, v string) error {
	start, end, err := parseRangeFlag(v)
	if err != nil {
		return err
	}
	return target.SetDates(start, end)
}

// viewFlags are the inputs of commands that render rows.
type viewFlags struct {
	windowFlags
	input        string
	reference    string
	search       string
	relevance    string
	unit         string
	grade        string
	unfilledOnly bool
	fuzzy        bool
}

func (f *viewFlags) bind(cmd *cobra.Command) {
	f.windowFlags.bind(cmd)
	fl := cmd.Flags()
	fl.StringVar(&f.input, "input", "", "Position export (.csv, .tsv, .txt, .xlsx, .xls, .json)")
	fl.StringVar(&f.reference, "reference", "", "Date current occupancy is read at (YYYY-MM-DD); defaults to today")
	fl.StringVar(&f.search, "search", "", "Case-insensitive text search over code, description, unit and grade")
	fl.StringVar(&f.relevance, "relevance", "", "Only positions of this relevance type")
	fl.StringVar(&f.unit, "unit", "", "Only positions of this organization unit")
	fl.StringVar(&f.grade, "grade", "", "Only positions of this tariff group")
	fl.BoolVar(&f.unfilledOnly, "unfilled-only", false, "Only positions with gaps or under 100% at the reference date")
	fl.BoolVar(&f.fuzzy, "fuzzy", false, "Fuzzy text search")
	_ = cmd.MarkFlagRequired("input")
}

func (f *viewFlags) criteria(cmd *cobra.Command, s *session) services.Criteria {
	p := s.profile.Filters
	return services.Criteria{
		Search:           stringFlag(cmd, "search", f.search, p.Search),
		Fuzzy:            boolFlag(cmd, "fuzzy", f.fuzzy, p.Fuzzy || s.cfg.Engine.FuzzySearch),
		RelevanceType:    stringFlag(cmd, "relevance", f.relevance, p.RelevanceType),
		OrganizationUnit: stringFlag(cmd, "unit", f.unit, p.OrganizationUnit),
		TariffGroup:      stringFlag(cmd, "grade", f.grade, p.TariffGroup),
		UnfilledOnly:     boolFlag(cmd, "unfilled-only", f.unfilledOnly, p.UnfilledOnly),
	}
}

// loadService imports the input and applies window, reference date and filters.
func (f *viewFlags) loadService(cmd *cobra.Command, s *session) (*services.GanttService, error) {
	res, err := s.loadRecords(f.input)
	if err != nil {
		return nil, err
	}
	svc := s.newService()
	svc.SetRecords(res.Records)

	if _, err := f.windowFlags.apply(cmd, s, svc); err != nil {
		return nil, err
	}
	ref, err := parseDateFlag("reference", stringFlag(cmd, "reference", f.reference, s.profile.ReferenceDate))
	if err != nil {
		return nil, err
	}
	svc.SetReferenceDate(ref)
	svc.SetCriteria(f.criteria(cmd, s))
	return svc, nil
}
