// Package metrics exposes Prometheus metrics for the cloud plans service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cloud_plans"

// Collector owns its registry so several collectors can coexist in tests.
type Collector struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	PlanListings     *prometheus.CounterVec
	RegionFallbacks  *prometheus.CounterVec
	CatalogAvailable prometheus.Gauge
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		PlanListings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "plan_listings_total",
				Help:      "Plan listings served, by scope and resolved region",
			},
			[]string{"scope", "region"},
		),
		RegionFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "region_fallbacks_total",
				Help:      "Requests whose region was replaced by the default region",
			},
			[]string{"resolved"},
		),
		CatalogAvailable: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_available",
				Help:      "1 when the plan catalog loaded at startup, 0 otherwise",
			},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.RequestsTotal,
		c.RequestDuration,
		c.PlanListings,
		c.RegionFallbacks,
		c.CatalogAvailable,
	)

	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) SetCatalogAvailable(available bool) {
	if available {
		c.CatalogAvailable.Set(1)
		return
	}
	c.CatalogAvailable.Set(0)
}

func (c *Collector) PlansListed(scope, region string) {
	c.PlanListings.WithLabelValues(scope, region).Inc()
}

// RegionFallback ignores the requested code to keep label cardinality bounded.
func (c *Collector) RegionFallback(_, resolved string) {
	c.RegionFallbacks.WithLabelValues(resolved).Inc()
}

// Middleware records request counts and latency, labelled by route template.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ctx.Request().Method

			c.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			c.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
