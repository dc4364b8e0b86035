package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/resource-api/internal/errs"
	"github.com/deppfellow/resource-api/internal/server"
	"github.com/deppfellow/resource-api/internal/store"
)

// --- Mock implementations ---

type mockStore struct {
	record    store.Record
	getErr    error
	updated   store.Record
	updateErr error

	getCalls    int
	updateCalls int
	lastPatch   store.Patch
}

func (m *mockStore) Get(_ context.Context, _ string) (store.Record, error) {
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.record, nil
}

func (m *mockStore) Update(_ context.Context, _ string, patch store.Patch) (store.Record, error) {
	m.updateCalls++
	m.lastPatch = patch
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return m.updated, nil
}

func newTestService(mock *mockStore) *ResourceService {
	log := zerolog.Nop()
	svc := NewResourceService(&server.Server{Logger: &log}, mock)

	// Deterministic clock.
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 34, 56, 123456789, time.UTC)
	}

	return svc
}

func strPtr(s string) *string { return &s }

// --- Tests ---

func TestUpdateResourceStampsTimestamp(t *testing.T) {
	mock := &mockStore{
		record:  store.Record{"id": "r1"},
		updated: store.Record{"id": "r1", "title": "B"},
	}
	svc := newTestService(mock)

	updated, err := svc.UpdateResource(context.Background(), "r1", Changes{Title: strPtr("B")})
	require.NoError(t, err)
	assert.Equal(t, "B", updated["title"])

	// Microsecond-precision UTC stamp with a literal Z suffix.
	assert.Equal(t, "2026-08-30T12:34:56.123456Z", mock.lastPatch.UpdatedAt)
	require.NotNil(t, mock.lastPatch.Title)
	assert.Equal(t, "B", *mock.lastPatch.Title)
	assert.Nil(t, mock.lastPatch.Description)
}

func TestUpdateResourceNotFound(t *testing.T) {
	mock := &mockStore{getErr: store.ErrResourceNotFound}
	svc := newTestService(mock)

	_, err := svc.UpdateResource(context.Background(), "r9", Changes{Title: strPtr("B")})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource with id 'r9' not found", httpErr.Message)

	// A missing record never reaches the write.
	assert.Equal(t, 1, mock.getCalls)
	assert.Zero(t, mock.updateCalls)
}

func TestUpdateResourceReadFailurePassesThrough(t *testing.T) {
	readErr := errors.New("throttled")
	mock := &mockStore{getErr: readErr}
	svc := newTestService(mock)

	_, err := svc.UpdateResource(context.Background(), "r1", Changes{})

	// Store failures are not reshaped here; the error funnel owns that.
	assert.ErrorIs(t, err, readErr)
	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr))
	assert.Zero(t, mock.updateCalls)
}

func TestUpdateResourceWriteFailurePassesThrough(t *testing.T) {
	writeErr := errors.New("write failed")
	mock := &mockStore{
		record:    store.Record{"id": "r1"},
		updateErr: writeErr,
	}
	svc := newTestService(mock)

	_, err := svc.UpdateResource(context.Background(), "r1", Changes{Title: strPtr("B")})

	assert.ErrorIs(t, err, writeErr)
}

func TestUpdateResourceBothFields(t *testing.T) {
	mock := &mockStore{
		record:  store.Record{"id": "r1"},
		updated: store.Record{"id": "r1", "title": "T", "description": "D"},
	}
	svc := newTestService(mock)

	_, err := svc.UpdateResource(context.Background(), "r1", Changes{
		Title:       strPtr("T"),
		Description: strPtr("D"),
	})
	require.NoError(t, err)

	require.NotNil(t, mock.lastPatch.Title)
	require.NotNil(t, mock.lastPatch.Description)
	assert.Equal(t, "T", *mock.lastPatch.Title)
	assert.Equal(t, "D", *mock.lastPatch.Description)
}

func TestUpdateResourceNoRecognizedFields(t *testing.T) {
	mock := &mockStore{
		record:  store.Record{"id": "r1", "title": "A"},
		updated: store.Record{"id": "r1", "title": "A"},
	}
	svc := newTestService(mock)

	// Only the timestamp changes when no field was supplied.
	_, err := svc.UpdateResource(context.Background(), "r1", Changes{})
	require.NoError(t, err)

	assert.Nil(t, mock.lastPatch.Title)
	assert.Nil(t, mock.lastPatch.Description)
	assert.NotEmpty(t, mock.lastPatch.UpdatedAt)
}
