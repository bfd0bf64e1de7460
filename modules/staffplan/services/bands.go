package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tum-aet/staffplan/modules/staffplan/domain/position"
	"github.com/tum-aet/staffplan/modules/staffplan/domain/timeline"
)

const (
	DefaultBandCount          = 4
	DefaultGapMinWidthPercent = 0.5
)

type BandConfig struct {
	Count int
	// GapMinWidthPercent ignores gap slices narrower than this share of the window.
	// Zero counts every gap.
	GapMinWidthPercent float64
}

// BandSegment is one slice drawn on one band.
type BandSegment struct {
	Start        time.Time             `json:"start"`
	End          time.Time             `json:"end"`
	StartPercent float64               `json:"startPercent"`
	WidthPercent float64               `json:"widthPercent"`
	FillLevel    int                   `json:"fillLevel"`
	IsFilled     bool                  `json:"isFilled"`
	Assignments  []position.Assignment `json:"assignments"`
	Tooltip      string                `json:"tooltip"`
}

// Band holds the segments of one occupancy layer. Threshold is the fill a slice must exceed.
type Band struct {
	Level     int             `json:"level"`
	Threshold decimal.Decimal `json:"threshold"`
	Segments  []BandSegment   `json:"segments"`
}

type Projection struct {
	// Bands are ordered from the top layer down.
	Bands   []Band `json:"bands"`
	HasGaps bool   `json:"hasGaps"`
}

type BandProjector struct {
	cfg      BandConfig
	tooltips *TooltipBuilder
}

func NewBandProjector(cfg BandConfig, tooltips *TooltipBuilder) *BandProjector {
	if cfg.Count <= 0 {
		cfg.Count = DefaultBandCount
	}
	if cfg.GapMinWidthPercent < 0 {
		cfg.GapMinWidthPercent = 0
	}
	return &BandProjector{cfg: cfg, tooltips: tooltips}
}

func (p *BandProjector) Config() BandConfig {
	return p.cfg
}

// Thresholds lists the band thresholds from the top band down, e.g. 75, 50, 25, 0.
func (p *BandProjector) Thresholds() []decimal.Decimal {
	step := hundred.Div(decimal.NewFromInt(int64(p.cfg.Count)))
	out := make([]decimal.Decimal, 0, p.cfg.Count)
	for level := p.cfg.Count - 1; level >= 0; level-- {
		out = append(out, step.Mul(decimal.NewFromInt(int64(level))))
	}
	return out
}

// WindowOffset returns the layout coordinates of [start, end] as percentages of the window.
func WindowOffset(window timeline.DateRange, start, end time.Time) (startPercent, widthPercent float64) {
	total := float64(window.Days())
	if total <= 0 {
		return 0, 0
	}
	startPercent = float64(timeline.DaysBetween(window.Start, start)) / total * 100
	widthPercent = float64(timeline.InclusiveDays(start, end)) / total * 100
	return startPercent, widthPercent
}

// Project lays the slices of g onto the configured number of bands.
func (p *BandProjector) Project(g *position.Group, slices []TimeSlice, window timeline.DateRange) Projection {
	thresholds := p.Thresholds()
	proj := Projection{Bands: make([]Band, len(thresholds))}
	for i, th := range thresholds {
		proj.Bands[i] = Band{
			Level:     p.cfg.Count - 1 - i,
			Threshold: th,
			Segments:  make([]BandSegment, 0, len(slices)),
		}
	}

	for _, s := range slices {
		startPct, widthPct := WindowOffset(window, s.Start, s.End)
		if s.IsGap() && widthPct > p.cfg.GapMinWidthPercent {
			proj.HasGaps = true
		}
		tooltip := p.tooltips.Build(g, s)
		for i := range proj.Bands {
			b := &proj.Bands[i]
			b.Segments = append(b.Segments, BandSegment{
				Start:        s.Start,
				End:          s.End,
				StartPercent: startPct,
				WidthPercent: widthPct,
				FillLevel:    b.Level,
				IsFilled:     s.TotalFill.GreaterThan(b.Threshold),
				Assignments:  s.Assignments,
				Tooltip:      tooltip,
			})
		}
	}
	return proj
}
