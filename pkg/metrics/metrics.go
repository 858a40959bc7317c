// Package metrics 提供 Prometheus helper，覆盖 HTTP 与定价引擎的常用指标
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTP 请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// 引擎指标
	PriceEvaluationsTotal  prometheus.Counter
	GreeksEvaluationsTotal prometheus.Counter
	SeriesPointsTotal      prometheus.Counter
	SimulationPathsTotal   prometheus.Counter
	SimulationDuration     prometheus.Histogram
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "optionslab",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "optionslab",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		PriceEvaluationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "optionslab",
			Subsystem: serviceName,
			Name:      "price_evaluations_total",
			Help:      "Total Black-Scholes price evaluations",
		}),
		GreeksEvaluationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "optionslab",
			Subsystem: serviceName,
			Name:      "greeks_evaluations_total",
			Help:      "Total analytic Greeks evaluations",
		}),
		SeriesPointsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "optionslab",
			Subsystem: serviceName,
			Name:      "series_points_total",
			Help:      "Total chart series points generated",
		}),
		SimulationPathsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "optionslab",
			Subsystem: serviceName,
			Name:      "simulation_paths_total",
			Help:      "Total Brownian motion paths simulated",
		}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "optionslab",
			Subsystem: serviceName,
			Name:      "simulation_duration_seconds",
			Help:      "Simulation run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	collectors := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PriceEvaluationsTotal,
		m.GreeksEvaluationsTotal,
		m.SeriesPointsTotal,
		m.SimulationPathsTotal,
		m.SimulationDuration,
	}

	for _, collector := range collectors {
		if err := prometheus.DefaultRegisterer.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// Handler 返回 Prometheus 抓取端点的 gin handler
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
