// Package store contains the logic for talking to DynamoDB,
// the key-value store that holds resource records.
//
// It handles:
//   - building the DynamoDB client from config (region, optional local endpoint)
//   - the Resources repository (point reads and merge writes by primary key)
//   - marshalling between DynamoDB attribute values and open record maps
//
// The repository takes the DynamoDB client as a small interface so tests
// can substitute a fake without a running DynamoDB.
package store

import (
	"github.com/deppfellow/resource-api/internal/config"
	"github.com/rs/zerolog"
)

// Stores is a container for all repository instances.
//
// This service only persists one entity, but the container keeps the
// dependency injection shape uniform: the server owns one Stores value and
// services receive repositories from it.
type Stores struct {
	Resources *Resources
}

// NewStores builds the DynamoDB client and constructs all repositories.
func NewStores(cfg *config.Config, logger *zerolog.Logger) (*Stores, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Stores{
		Resources: NewResources(client, cfg.Store.TableName, logger),
	}, nil
}
