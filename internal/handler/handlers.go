package handler

import (
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Resource *ResourceHandler // Resource serves the partial-update endpoint.
	Health   *HealthHandler   // Health serves service health endpoints.
	OpenAPI  *OpenAPIHandler  // OpenAPI serves API documentation.
}

// NewHandlers constructs the handler container.
//
// Parameters:
//   - s: application container (logger/config/stores) needed by handlers
//   - services: business layer container
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Resource: NewResourceHandler(s, services),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
