package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/resource-api/internal/handler"
)

// registerResourceRoutes registers the resource-record endpoints.
func registerResourceRoutes(r *echo.Echo, h *handler.Handlers) {
	// Partial update of an existing record; the only mutating endpoint.
	// Creation and deletion happen outside this service.
	r.PATCH("/resources/:resourceId", handler.Handle(
		h.Resource.Handler,
		h.Resource.UpdateResource,
		http.StatusOK,
		func() *handler.UpdateResourceRequest { return &handler.UpdateResourceRequest{} },
	))
}
