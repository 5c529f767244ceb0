package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "housecup_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// EventsCreated counts successfully recorded events.
var EventsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "housecup_events_created_total",
	Help: "Events recorded through the admin API.",
})

// StandingsServed counts standings computations served.
var StandingsServed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "housecup_standings_served_total",
	Help: "Standings responses computed and served.",
})

// HeadlinesGenerated counts headlines filled in by the worker.
var HeadlinesGenerated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "housecup_headlines_generated_total",
	Help: "Result headlines generated by the headline worker.",
})

// Metrics records per-request counters. Uses the route pattern, not
// the raw path, to keep label cardinality bounded.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		route := c.Route().Path
		httpRequests.WithLabelValues(
			c.Method(),
			route,
			strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		return err
	}
}
