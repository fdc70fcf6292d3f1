package middleware

import (
	"github.com/labstack/echo/v4"
)

// JSONCharsetMiddleware tags every plain JSON response as UTF-8 right before
// the headers are written.
func JSONCharsetMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response()
			res.Before(func() {
				if res.Header().Get(echo.HeaderContentType) == echo.MIMEApplicationJSON {
					res.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
				}
			})
			return next(c)
		}
	}
}
