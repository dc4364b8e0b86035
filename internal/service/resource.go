package service

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/resource-api/internal/errs"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/store"
)

// updatedAtLayout is the wire format for the server-set update timestamp:
// ISO-8601 UTC with microsecond precision, e.g. 2026-08-30T12:34:56.123456Z.
const updatedAtLayout = "2006-01-02T15:04:05.000000Z"

// ResourceStore is what the service needs from the store layer: a point
// read and a merge write, both by primary key. *store.Resources satisfies
// it; tests substitute fakes.
type ResourceStore interface {
	Get(ctx context.Context, id string) (store.Record, error)
	Update(ctx context.Context, id string, patch store.Patch) (store.Record, error)
}

// Changes carries the updatable fields of a resource. Nil means "not
// supplied" and leaves the stored value untouched; a pointer to the empty
// string is a real update to empty.
type Changes struct {
	Title       *string
	Description *string
}

// ResourceService implements the partial-update operation on resource
// records. It holds no per-request state; each call is independent.
type ResourceService struct {
	server    *server.Server
	resources ResourceStore

	// now is swappable so tests control the updatedAt stamp.
	now func() time.Time
}

// NewResourceService constructs the service.
func NewResourceService(s *server.Server, resources ResourceStore) *ResourceService {
	return &ResourceService{
		server:    s,
		resources: resources,
		now:       time.Now,
	}
}

// UpdateResource applies a partial update to an existing record and
// returns the full post-update record.
//
// Pipeline (input validation already happened in the handler):
//  1. Point read by id. A missing record becomes the 404 error; the write
//     is never attempted for it.
//  2. Build the merge patch: updatedAt is always stamped with the current
//     UTC time, title/description only when supplied.
//  3. Merge write, returning the complete resulting record.
//
// The read and write are deliberately sequential and unconditional: two
// concurrent updates to the same record resolve last-write-wins, with no
// version check between the read and the write.
func (s *ResourceService) UpdateResource(ctx context.Context, id string, changes Changes) (store.Record, error) {
	if _, err := s.resources.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrResourceNotFound) {
			return nil, errs.NewNotFoundError(id)
		}

		// Store-side failure on the read; the error funnel shapes it.
		return nil, err
	}

	patch := store.Patch{
		Title:       changes.Title,
		Description: changes.Description,
		UpdatedAt:   s.now().UTC().Format(updatedAtLayout),
	}

	updated, err := s.resources.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.server.Logger.Info().
		Str("resource_id", id).
		Bool("title_updated", changes.Title != nil).
		Bool("description_updated", changes.Description != nil).
		Msg("resource updated")

	return updated, nil
}
