package telemetry

import (
	"recruithub/config"
	"recruithub/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal       *prometheus.CounterVec
	HttpRequestDuration     *prometheus.HistogramVec
	ApplicationsTotal       *prometheus.CounterVec
	MigrationsTotal         *prometheus.CounterVec
	TransitionRejectedTotal *prometheus.CounterVec
	RateLimitTotal          *prometheus.CounterVec
	config                  *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		ApplicationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricApplicationsTotal),
				Help: "Public application forms accepted",
			},
			labelNames(core.MetricLabelPosition),
		),
		MigrationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricMigrationsTotal),
				Help: "Hired candidates migrated into the employee roster",
			},
			labelNames(core.MetricLabelDepartment, core.MetricLabelStatus),
		),
		TransitionRejectedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricTransitionRejectedTotal),
				Help: "Recruitment status transitions rejected by the lifecycle rules",
			},
			labelNames(core.MetricLabelReason),
		),
		RateLimitTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricRateLimitTotal),
				Help: "Requests rejected by the intake rate limiter",
			},
			labelNames(core.MetricLabelEndpoint),
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
