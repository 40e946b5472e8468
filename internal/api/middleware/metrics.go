// Package middleware provides Echo middleware for canvas-classifier.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/canvas-classifier/internal/metrics"
)

// unmatchedRoute labels requests that matched no registered route, so
// arbitrary 404 paths do not each create a new series.
const unmatchedRoute = "unmatched"

// probeGauges maps probe routes to their up/down gauge. Probes and the
// /metrics scrape are kept out of the request histogram and counter.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and count
// per method, route template and status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "/metrics" {
				return next(c)
			}

			if gauge, ok := probeGauges[route]; ok {
				err := next(c)
				if status := responseStatus(c, err); status >= 200 && status < 300 {
					gauge.Set(1)
				} else {
					gauge.Set(0)
				}
				return err
			}

			if route == "" {
				route = unmatchedRoute
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(responseStatus(c, err))
			method := c.Request().Method
			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, status).
				Inc()

			return err
		}
	}
}

// responseStatus is the status the client will see. When a handler or an
// inner middleware such as BodyLimit returns an error, echo writes the
// response only after the chain unwinds, so the status comes from the
// error instead.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
