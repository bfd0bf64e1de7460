package services

import (
	"github.com/sirupsen/logrus"
)

func logWithFields(logger logrus.FieldLogger, level logrus.Level, msg string, fields logrus.Fields) {
	if logger == nil {
		return
	}
	entry := logger.WithFields(fields)
	switch level {
	case logrus.ErrorLevel:
		entry.Error(msg)
	case logrus.WarnLevel:
		entry.Warn(msg)
	case logrus.InfoLevel:
		entry.Info(msg)
	default:
		entry.Debug(msg)
	}
}

// logGroupingFindings reports skipped records, field conflicts and date issues.
func logGroupingFindings(logger logrus.FieldLogger, g *Grouping) {
	for _, s := range g.Skipped {
		logWithFields(logger, logrus.WarnLevel, "staffplan.grouper.record_skipped", logrus.Fields{
			"record_index": s.Index,
			"reason":       s.Reason,
		})
	}
	for _, c := range g.Conflicts {
		logWithFields(logger, logrus.WarnLevel, "staffplan.grouper.field_conflict", logrus.Fields{
			"position":     c.Key,
			"field":        c.Field,
			"kept":         c.Kept,
			"ignored":      c.Ignored,
			"record_index": c.Index,
		})
	}
	for _, d := range g.DateIssues {
		logWithFields(logger, logrus.WarnLevel, "staffplan.grouper.date_issue", logrus.Fields{
			"position":     d.Key,
			"field":        d.Field,
			"value":        d.Value,
			"record_index": d.Index,
			"reason":       d.Reason,
		})
	}
	recordDataQuality("skipped", len(g.Skipped))
	recordDataQuality("conflict", len(g.Conflicts))
	recordDataQuality("date_issue", len(g.DateIssues))
}
