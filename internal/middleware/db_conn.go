package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/anonto42/inkwell/backend/pkg/database"
)

// DBConnMiddleware checks one connection out of the pool for the request
// and returns it once the handler is done, whatever the outcome.
func DBConnMiddleware(pool database.Acquirer, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			conn, err := pool.Acquire(req.Context())
			if err != nil {
				log.Warn("could not acquire database connection",
					zap.String("uri", req.RequestURI), zap.Error(err))
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Database unavailable")
			}
			defer func() {
				if err := conn.Release(); err != nil {
					log.Warn("could not release database connection", zap.Error(err))
				}
			}()

			c.SetRequest(req.WithContext(database.WithConn(req.Context(), conn)))
			return next(c)
		}
	}
}
