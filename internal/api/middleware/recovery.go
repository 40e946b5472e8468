package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/canvas-classifier/internal/metrics"
)

// stackSize bounds the stack captured for a recovered panic.
const stackSize = 8 << 10

// Recovery returns Echo middleware that turns a handler panic into a 500
// response. The log entry carries the request ID set by RequestLog when
// that middleware runs inside this one. If the handler had already started
// writing, for example an attachment, the partial response is left alone.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				metrics.HTTPPanicsTotal.Inc()

				buf := make([]byte, stackSize)
				n := runtime.Stack(buf, false)

				reqID := c.Response().Header().Get(requestIDHeader)
				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"request_id", reqID,
					"stack", string(buf[:n]),
				)

				if c.Response().Committed {
					err = nil
					return
				}
				body := map[string]string{"error": "internal server error"}
				if reqID != "" {
					body["request_id"] = reqID
				}
				err = c.JSON(http.StatusInternalServerError, body)
			}()
			return next(c)
		}
	}
}
