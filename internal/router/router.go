// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/resource-api/internal/handler"
	"github.com/deppfellow/resource-api/internal/middleware"
)

// New builds the Echo instance: global middleware stack, the global error
// handler, and all route registrations.
//
// Middleware order matters: RequestID must run before the context
// enhancer (the request-scoped logger carries the id), and the request
// logger relies on the enhancer's logger being set.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.CORS())
	r.Use(m.Global.Secure())

	registerResourceRoutes(r, h)
	registerSystemRoutes(r, h)

	return r
}
