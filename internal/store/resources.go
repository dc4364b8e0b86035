package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// primaryKey is the attribute DynamoDB keys resource records by.
// Records are created outside this service with the id already assigned.
const primaryKey = "id"

// ErrResourceNotFound reports that a point read returned no item.
//
// The service layer translates this into the API's 404 shape; everything
// else coming out of this package is a store-side failure.
var ErrResourceNotFound = errors.New("resource not found")

// Record is a resource as stored: an open map of attribute names to values.
//
// The API only recognizes a couple of attributes for writing, but records
// may carry arbitrary extra attributes that must round-trip untouched, so
// reads never force records into a closed struct.
type Record map[string]interface{}

// Patch names the attributes a merge write will set. Nil pointer fields
// are left out of the update expression entirely, which is what makes the
// write a merge rather than a replace.
type Patch struct {
	Title       *string
	Description *string

	// UpdatedAt is always written. The service layer stamps it on every
	// update; it is never client-supplied.
	UpdatedAt string
}

// DynamoDBAPI is the slice of the DynamoDB client this repository uses.
// Taking an interface instead of *dynamodb.Client keeps the repository
// testable against a fake client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Resources performs resource-record operations against one DynamoDB table.
type Resources struct {
	client DynamoDBAPI
	table  string
	log    *zerolog.Logger
}

// NewResources constructs the repository for the given table.
func NewResources(client DynamoDBAPI, table string, logger *zerolog.Logger) *Resources {
	return &Resources{
		client: client,
		table:  table,
		log:    logger,
	}
}

// Get performs a point read by primary key.
//
// Returns ErrResourceNotFound when the key has no item. Any other error is
// the store's own failure and is returned as-is for classification upstream.
func (r *Resources) Get(ctx context.Context, id string) (Record, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       recordKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get resource %q: %w", id, err)
	}

	// DynamoDB signals "no item" with an empty Item map, not an error.
	if len(out.Item) == 0 {
		return nil, ErrResourceNotFound
	}

	var record Record
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, fmt.Errorf("unmarshal resource %q: %w", id, err)
	}

	return record, nil
}

// Update applies a merge write: it sets exactly the attributes named by the
// patch on the existing item, leaves every other stored attribute untouched,
// and returns the full post-update record (ALL_NEW).
//
// The caller is responsible for having checked existence first; an update
// on a missing key would create a partial item, which this API never wants.
func (r *Resources) Update(ctx context.Context, id string, patch Patch) (Record, error) {
	update := expression.Set(expression.Name("updatedAt"), expression.Value(patch.UpdatedAt))

	if patch.Title != nil {
		update = update.Set(expression.Name("title"), expression.Value(*patch.Title))
	}

	if patch.Description != nil {
		update = update.Set(expression.Name("description"), expression.Value(*patch.Description))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, fmt.Errorf("build update expression for resource %q: %w", id, err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       recordKey(id),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("update resource %q: %w", id, err)
	}

	var record Record
	if err := attributevalue.UnmarshalMap(out.Attributes, &record); err != nil {
		return nil, fmt.Errorf("unmarshal updated resource %q: %w", id, err)
	}

	return record, nil
}

// Ping verifies the table is reachable. Used by the health endpoint.
func (r *Resources) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})

	return err
}

// recordKey builds the primary-key map for a resource id.
func recordKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		primaryKey: &types.AttributeValueMemberS{Value: id},
	}
}
