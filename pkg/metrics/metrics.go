package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "movement_insights"

// Collector guarda as métricas de análise num registro próprio
type Collector struct {
	registry *prometheus.Registry
	analyses *prometheus.CounterVec
	rows     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Análises executadas por origem e resultado.",
		}, []string{"source", "outcome"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_total",
			Help:      "Linhas classificadas por origem.",
		}, []string{"source"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duração de cada análise.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}

	c.registry.MustRegister(c.analyses, c.rows, c.duration)

	return c
}

func (c *Collector) ObserveAnalysis(source string, rows int, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	c.analyses.WithLabelValues(source, outcome).Inc()
	c.rows.WithLabelValues(source).Add(float64(rows))
	c.duration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// Handler expõe o registro no formato texto do Prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry é usado nos testes para ler os valores coletados
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
