package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/resource-api/internal/errs"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/service"
	"github.com/deppfellow/resource-api/internal/store"
)

// ResourceHandler exposes the partial-update endpoint for resource records.
type ResourceHandler struct {
	Handler

	resources *service.ResourceService
}

// NewResourceHandler constructs a ResourceHandler with access to shared
// app dependencies and the resource service.
func NewResourceHandler(s *server.Server, services *service.Services) *ResourceHandler {
	return &ResourceHandler{
		Handler:   NewHandler(s),
		resources: services.Resource,
	}
}

// UpdateResourceRequest is the payload for PATCH /resources/:resourceId.
//
// The body is a loose JSON object from which only title and description
// are recognized; unrecognized keys are ignored but still count toward the
// "body must not be empty" rule. That split is why the type carries both
// typed optional fields and a key count.
type UpdateResourceRequest struct {
	// ResourceID is bound from the path, never from the body.
	ResourceID string `param:"resourceId" json:"-"`

	// Title and Description are nil when absent from the body. A pointer
	// to the empty string is a real update to empty.
	Title       *string `json:"-"`
	Description *string `json:"-"`

	// bodyKeys is how many keys the body object carried, recognized or not.
	bodyKeys int
}

// UnmarshalJSON populates the request from the raw body object.
//
// It decodes into an open map first so the key count includes
// unrecognized keys, then pulls out the recognized fields with their
// expected types. A body that is not a JSON object, or a recognized field
// of the wrong type, fails here and surfaces as the invalid-body 400.
func (r *UpdateResourceRequest) UnmarshalJSON(data []byte) error {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	r.bodyKeys = len(body)

	if raw, ok := body["title"]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			return err
		}
		r.Title = &title
	}

	if raw, ok := body["description"]; ok {
		var description string
		if err := json.Unmarshal(raw, &description); err != nil {
			return err
		}
		r.Description = &description
	}

	return nil
}

// Validate applies the request's structural rules, in contract order:
// the path parameter must be present, and the body must carry at least
// one key. An absent body binds to the zero value, so it fails the same
// way an empty object does.
func (r *UpdateResourceRequest) Validate() error {
	if r.ResourceID == "" {
		return errs.NewBadRequestError("Missing resourceId in path")
	}

	if r.bodyKeys == 0 {
		return errs.NewBadRequestError("Request body cannot be empty")
	}

	return nil
}

// UpdateResource handles PATCH /resources/:resourceId.
//
// By the time this runs, the request is structurally valid; the service
// owns existence checking, the merge semantics, and the updatedAt stamp.
// The returned record is the complete post-update item, serialized as the
// 200 response body.
func (h *ResourceHandler) UpdateResource(c echo.Context, req *UpdateResourceRequest) (store.Record, error) {
	return h.resources.UpdateResource(c.Request().Context(), req.ResourceID, service.Changes{
		Title:       req.Title,
		Description: req.Description,
	})
}
