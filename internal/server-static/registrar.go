package serverstatic

import (
	"github.com/labstack/echo/v4"
)

// NewHandlersRegistrar routes every path to the file handlers. Methods other
// than GET, HEAD and OPTIONS end up as 405.
func NewHandlersRegistrar(handlers Handlers, httpErrorHandler echo.HTTPErrorHandler) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		e.GET("/*", handlers.ServeFile)
		e.HEAD("/*", handlers.ServeFile)
		e.OPTIONS("/*", handlers.Preflight)

		e.HTTPErrorHandler = httpErrorHandler
	}
}
