package main

import (
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tum-aet/staffplan/modules/staffplan/infrastructure/importer"
	"github.com/tum-aet/staffplan/modules/staffplan/services"
	"github.com/tum-aet/staffplan/pkg/configuration"
	"github.com/tum-aet/staffplan/pkg/eventbus"
	"github.com/tum-aet/staffplan/pkg/intl"
	"github.com/tum-aet/staffplan/pkg/metrics"
)

// session is the per-invocation wiring of configuration, logging, locale and clock.
type session struct {
	cfg     *configuration.Configuration
	profile *configuration.Profile
	log     *logrus.Logger
	loc     *intl.Localizer
	clock   clockwork.Clock
	bus     eventbus.EventBus
}

// run opens a session, runs fn and dumps metrics when a textfile is configured.
func run(g *globalOptions, fn func(s *session) error) error {
	s, err := openSession(g)
	if err != nil {
		return err
	}
	defer s.cfg.Unload()

	runErr := fn(s)

	path := g.metricsOut
	if path == "" {
		path = s.cfg.MetricsTextfile
	}
	if err := metrics.WriteTextfile(path, prometheus.DefaultGatherer); err != nil {
		s.log.WithError(err).Error("staffplan.metrics.write_failed")
		if runErr == nil {
			runErr = withCode(exitIO, err)
		}
	}
	return runErr
}

func openSession(g *globalOptions) (*session, error) {
	cfg, err := configuration.Load(g.envFiles)
	if err != nil {
		return nil, withCode(exitValidation, err)
	}
	s := &session{cfg: cfg, log: cfg.Logger(), profile: &configuration.Profile{}}

	if g.profile != "" {
		p, err := configuration.LoadProfile(g.profile)
		if err != nil {
			cfg.Unload()
			return nil, withCode(exitValidation, err)
		}
		s.profile = p
	}

	code := cfg.Locale
	if s.profile.Locale != "" {
		code = s.profile.Locale
	}
	if g.locale != "" {
		code = g.locale
	}
	lang, err := intl.Lookup(code)
	if err != nil {
		cfg.Unload()
		return nil, withCode(exitUsage, errors.Wrapf(err, "invalid --locale %q", code))
	}
	s.loc = intl.NewLocalizer(intl.LoadBundle(), lang)

	today, err := parseDateFlag("today", g.today)
	if err != nil {
		cfg.Unload()
		return nil, err
	}
	s.clock = clockFor(today)

	s.bus = eventbus.NewEventPublisher(s.log)
	s.bus.Subscribe(func(e *services.RecordsLoadedEvent) {
		s.log.WithFields(logrus.Fields{
			"version":   e.Version,
			"records":   e.Records,
			"positions": e.Positions,
			"skipped":   e.Skipped,
		}).Debug("staffplan.event.records_loaded")
	})
	s.bus.Subscribe(func(e *services.WindowChangedEvent) {
		s.log.WithFields(logrus.Fields{
			"window": e.Window.String(),
			"zoom":   e.Zoom,
			"state":  e.State.String(),
		}).Debug("staffplan.event.window_changed")
	})
	s.bus.Subscribe(func(e *services.ViewRecomputedEvent) {
		s.log.WithFields(logrus.Fields{
			"window":      e.Window.String(),
			"total":       e.Total,
			"shown":       e.Shown,
			"white_spots": e.WhiteSpots,
		}).Debug("staffplan.event.view_recomputed")
	})
	return s, nil
}

func (s *session) bandConfig() services.BandConfig {
	count := s.cfg.Engine.BandCount
	if s.profile.BandCount > 0 {
		count = s.profile.BandCount
	}
	return services.BandConfig{Count: count, GapMinWidthPercent: s.cfg.Engine.GapMinWidthPercent}
}

func (s *session) windowOptions() services.WindowOptions {
	return services.WindowOptions{
		OuterYears:        s.cfg.Engine.OuterYears,
		DefaultZoomMonths: s.cfg.Engine.DefaultZoomMonths,
	}
}

func (s *session) newService() *services.GanttService {
	return services.NewGanttService(s.clock, s.bus, s.log, services.NewTooltipBuilder(s.loc), services.GanttOptions{
		Bands:  s.bandConfig(),
		Window: s.windowOptions(),
	})
}

func (s *session) newWindow() *services.WindowController {
	return services.NewWindowController(s.clock, s.windowOptions())
}

func (s *session) loadRecords(path string) (*importer.Result, error) {
	if path == "" {
		return nil, withCode(exitUsage, errors.New("--input is required"))
	}
	res, err := importer.New(s.log).ReadFile(path)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) || errors.Is(err, importer.ErrMissingHeader) || errors.Is(err, importer.ErrNoWorksheet) {
			return nil, withCode(exitValidation, err)
		}
		return nil, withCode(exitIO, err)
	}
	return res, nil
}

// stringFlag returns the flag value when it was set, else the profile fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) || fallback == "" {
		return value
	}
	return fallback
}

func boolFlag(cmd *cobra.Command, name string, value, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return value || fallback
}
