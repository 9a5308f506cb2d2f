package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// observe records the duration of every request and logs it at debug level.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := c.Response().Status
		elapsed := time.Since(start)

		s.metrics.RequestDuration.
			WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).
			Observe(elapsed.Seconds())
		s.logger.Debug("Request served",
			"method", c.Request().Method,
			"route", route,
			"status", status,
			"duration", elapsed)

		return nil
	}
}
