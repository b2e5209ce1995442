package middlewares

import (
	"github.com/labstack/echo/v4"
)

const (
	CORSAllowOrigin  = "*"
	CORSAllowMethods = "GET, POST, OPTIONS"
	CORSAllowHeaders = "Content-Type"
)

// NewCORSHeaders stamps the permissive CORS headers on every response, whatever its status.
// The headers are set right before the status line is written, so they survive
// handlers and error handlers that rebuild the header map.
func NewCORSHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(eCtx echo.Context) error {
			resp := eCtx.Response()
			resp.Before(func() {
				h := resp.Header()
				h.Set(echo.HeaderAccessControlAllowOrigin, CORSAllowOrigin)
				h.Set(echo.HeaderAccessControlAllowMethods, CORSAllowMethods)
				h.Set(echo.HeaderAccessControlAllowHeaders, CORSAllowHeaders)
			})
			return next(eCtx)
		}
	}
}
