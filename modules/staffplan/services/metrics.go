package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	staffplanCacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staffplan",
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Total number of memoized pipeline lookups broken down by stage and hit/miss.",
	}, []string{"stage", "result"})

	staffplanCacheInvalidate = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staffplan",
		Subsystem: "cache",
		Name:      "invalidate_total",
		Help:      "Total number of memo invalidations broken down by reason.",
	}, []string{"reason"})

	staffplanDataQuality = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staffplan",
		Subsystem: "grouper",
		Name:      "data_quality_total",
		Help:      "Total number of record data-quality findings broken down by kind.",
	}, []string{"kind"})

	staffplanViewRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "staffplan",
		Subsystem: "view",
		Name:      "rows",
		Help:      "Row counts of the most recent view broken down by kind.",
	}, []string{"kind"})
)

func recordCacheRequest(stage string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	staffplanCacheRequests.WithLabelValues(stage, result).Inc()
}

func recordCacheInvalidate(reason string) {
	if reason == "" {
		reason = "manual"
	}
	staffplanCacheInvalidate.WithLabelValues(reason).Inc()
}

func recordDataQuality(kind string, n int) {
	if n <= 0 {
		return
	}
	staffplanDataQuality.WithLabelValues(kind).Add(float64(n))
}

func recordViewRows(total, shown, whiteSpots int) {
	staffplanViewRows.WithLabelValues("total").Set(float64(total))
	staffplanViewRows.WithLabelValues("shown").Set(float64(shown))
	staffplanViewRows.WithLabelValues("white_spots").Set(float64(whiteSpots))
}
