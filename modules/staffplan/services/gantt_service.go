package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
	"github.com/tum-aet/staffplan/pkg/eventbus"
)

type GanttOptions struct {
	Bands  BandConfig
	Window WindowOptions
}

// View is everything needed to render the chart for the current inputs.
type View struct {
	Window          timeline.DateRange `json:"window"`
	Zoom            int                `json:"zoom"`
	RangeStart      int                `json:"rangeStart"`
	RangeEnd        int                `json:"rangeEnd"`
	RangeStartDate  time.Time          `json:"rangeStartDate"`
	RangeEndDate    time.Time          `json:"rangeEndDate"`
	Today           time.Time          `json:"today"`
	ReferenceDate   time.Time          `json:"referenceDate"`
	TodayMarker     *float64           `json:"todayMarker,omitempty"`
	ReferenceMarker *float64           `json:"referenceMarker,omitempty"`
	Months          []MonthHeader      `json:"months"`
	Years           []YearHeader       `json:"years"`
	Criteria        Criteria           `json:"criteria"`
	FilterResult
}

// GanttService coordinates grouping, partitioning, banding and filtering.
// Each stage is memoized on the identity of its inputs and recomputed in full
// when any of them changes.
type GanttService struct {
	mu        sync.RWMutex
	log       logrus.FieldLogger
	bus       eventbus.EventBus
	clock     clockwork.Clock
	window    *WindowController
	projector *BandProjector
	cache     *viewCache

	records   []position.Record
	version   uint64
	reference time.Time
	criteria  Criteria
}

func NewGanttService(clock clockwork.Clock, bus eventbus.EventBus, log logrus.FieldLogger, tooltips *TooltipBuilder, opts GanttOptions) *GanttService {
	return &GanttService{
		log:       log,
		bus:       bus,
		clock:     clock,
		window:    NewWindowController(clock, opts.Window),
		projector: NewBandProjector(opts.Bands, tooltips),
		cache:     newViewCache(),
	}
}

func (s *GanttService) publish(events ...any) {
	if s.bus == nil {
		return
	}
	for _, e := range events {
		s.bus.Publish(e)
	}
}

// SetRecords replaces the record snapshot. The first non-empty snapshot activates the window.
func (s *GanttService) SetRecords(records []position.Record) {
	s.mu.Lock()
	s.records = append([]position.Record(nil), records...)
	s.version++
	s.cache.Invalidate("records", stageGrouping, stageRows, stageView)
	var events []any
	if len(records) > 0 && s.window.Activate() {
		events = append(events, s.windowEventLocked())
	}
	g := s.groupingLocked()
	events = append([]any{&RecordsLoadedEvent{
		Version:   s.version,
		Records:   len(records),
		Positions: len(g.Groups),
		Skipped:   len(g.Skipped),
	}}, events...)
	s.mu.Unlock()

	logWithFields(s.log, logrus.InfoLevel, "staffplan.records.loaded", logrus.Fields{
		"records":   len(records),
		"positions": len(g.Groups),
		"skipped":   len(g.Skipped),
	})
	s.publish(events...)
}

func (s *GanttService) SetZoom(months int) error {
	s.mu.Lock()
	if err := s.window.SetZoom(months); err != nil {
		s.mu.Unlock()
		return err
	}
	s.cache.Invalidate("window", stageRows, stageView)
	ev := s.windowEventLocked()
	s.mu.Unlock()
	s.publish(ev)
	return nil
}

// SetRange sets the window as day offsets from the outer bound start.
func (s *GanttService) SetRange(start, end int) error {
	s.mu.Lock()
	if err := s.window.SetRange(start, end); err != nil {
		s.mu.Unlock()
		return err
	}
	s.cache.Invalidate("window", stageRows, stageView)
	ev := s.windowEventLocked()
	s.mu.Unlock()
	s.publish(ev)
	return nil
}

func (s *GanttService) SetDates(start, end time.Time) error {
	s.mu.Lock()
	if err := s.window.SetDates(start, end); err != nil {
		s.mu.Unlock()
		return err
	}
	s.cache.Invalidate("window", stageRows, stageView)
	ev := s.windowEventLocked()
	s.mu.Unlock()
	s.publish(ev)
	return nil
}

// SetReferenceDate moves the date current occupancy is read at. The zero time follows today.
func (s *GanttService) SetReferenceDate(day time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reference = timeline.DateOnly(day)
	s.cache.Invalidate("reference", stageRows, stageView)
}

func (s *GanttService) SetCriteria(c Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = c
	s.cache.Invalidate("criteria", stageView)
}

func (s *GanttService) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

func (s *GanttService) Grouping() *Grouping {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groupingLocked()
}

func (s *GanttService) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowsLocked()
}

func (s *GanttService) Options() Options {
	return FilterOptions(s.Grouping().Groups)
}

// View returns the filtered rows with counters, headers and markers.
func (s *GanttService) View() View {
	s.mu.Lock()
	key := s.viewKeyLocked()
	if v, ok := s.cache.Get(stageView, key); ok {
		s.mu.Unlock()
		return v.(View)
	}

	rows := s.rowsLocked()
	window := s.window.Visible()
	today := s.window.Today()
	ref := s.referenceLocked()
	rangeStart, rangeEnd := s.window.Range()
	rangeStartDate, rangeEndDate := s.window.RangeDates()
	months := MonthHeaders(window)

	v := View{
		Window:         window,
		Zoom:           s.window.Zoom(),
		RangeStart:     rangeStart,
		RangeEnd:       rangeEnd,
		RangeStartDate: rangeStartDate,
		RangeEndDate:   rangeEndDate,
		Today:          today,
		ReferenceDate:  ref,
		Months:         months,
		Years:          YearHeaders(months),
		Criteria:       s.criteria,
		FilterResult:   ApplyFilter(rows, s.criteria),
	}
	if pct, ok := MarkerPercent(window, today); ok {
		v.TodayMarker = &pct
	}
	if pct, ok := ReferenceMarkerPercent(window, ref, today, s.criteria.UnfilledOnly); ok {
		v.ReferenceMarker = &pct
	}
	s.cache.Set(stageView, key, v)
	s.mu.Unlock()

	recordViewRows(v.Total, len(v.Rows), v.WhiteSpots)
	logWithFields(s.log, logrus.DebugLevel, "staffplan.view.recomputed", logrus.Fields{
		"window":      window.String(),
		"total":       v.Total,
		"shown":       len(v.Rows),
		"white_spots": v.WhiteSpots,
	})
	s.publish(&ViewRecomputedEvent{Window: window, Total: v.Total, Shown: len(v.Rows), WhiteSpots: v.WhiteSpots})
	return v
}

func (s *GanttService) referenceLocked() time.Time {
	if s.reference.IsZero() {
		return s.window.Today()
	}
	return s.reference
}

func (s *GanttService) groupingKeyLocked() string {
	return fmt.Sprintf("v%d|%s", s.version, s.window.Today().Format(time.DateOnly))
}

func (s *GanttService) rowsKeyLocked() string {
	return fmt.Sprintf("%s|%s|%s", s.groupingKeyLocked(), s.window.Visible(), s.referenceLocked().Format(time.DateOnly))
}

func (s *GanttService) viewKeyLocked() string {
	c := s.criteria
	start, end := s.window.Range()
	return fmt.Sprintf("%s|%d:%d|%q|%t|%q|%q|%q|%t",
		s.rowsKeyLocked(), start, end,
		c.Search, c.Fuzzy, c.RelevanceType, c.OrganizationUnit, c.TariffGroup, c.UnfilledOnly)
}

func (s *GanttService) groupingLocked() *Grouping {
	key := s.groupingKeyLocked()
	if v, ok := s.cache.Get(stageGrouping, key); ok {
		return v.(*Grouping)
	}
	g := GroupRecords(s.records, s.window.Today())
	logGroupingFindings(s.log, g)
	s.cache.Set(stageGrouping, key, g)
	return g
}

func (s *GanttService) rowsLocked() []Row {
	key := s.rowsKeyLocked()
	if v, ok := s.cache.Get(stageRows, key); ok {
		return v.([]Row)
	}
	grouping := s.groupingLocked()
	window := s.window.Visible()
	ref := s.referenceLocked()
	rows := make([]Row, 0, len(grouping.Groups))
	for _, g := range grouping.Groups {
		slices := PartitionTimeline(g, window)
		rows = append(rows, Row{
			Group:       g,
			Slices:      slices,
			Projection:  s.projector.Project(g, slices, window),
			CurrentFill: CurrentOccupancy(slices, ref),
		})
	}
	s.cache.Set(stageRows, key, rows)
	return rows
}

func (s *GanttService) windowEventLocked() *WindowChangedEvent {
	return &WindowChangedEvent{Window: s.window.Visible(), Zoom: s.window.Zoom(), State: s.window.State()}
}
