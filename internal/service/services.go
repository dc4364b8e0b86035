package service

import (
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/store"
)

// Services is a container that groups all business-logic services, so
// router/handler wiring passes one object around instead of many.
type Services struct {
	Resource *ResourceService
}

// NewServices constructs the service container from the application
// container and the store repositories.
func NewServices(s *server.Server, stores *store.Stores) *Services {
	return &Services{
		Resource: NewResourceService(s, stores.Resources),
	}
}
