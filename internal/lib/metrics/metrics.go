// Package metrics содержит метрики Prometheus дашборда продаж.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Значения метки result для UpstreamFetches.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// UpstreamFetches считает обращения к внешнему источнику датасета.
	UpstreamFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_upstream_fetch_total",
		Help: "Number of dataset fetches from the upstream URL by result.",
	}, []string{"result"})

	// DatasetRecords хранит количество принятых и отброшенных записей последней загрузки.
	DatasetRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dashboard_dataset_records",
		Help: "Records in the last ingested dataset by state.",
	}, []string{"state"})

	// ViewBuild измеряет время построения представления для одного запроса.
	ViewBuild = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_view_build_seconds",
		Help:    "Time spent rebuilding the view state for a request.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
)
