package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/deppfellow/resource-api/internal/config"
)

// clientBuildTimeout bounds the AWS credential/region resolution during
// startup so a broken environment fails fast instead of hanging.
const clientBuildTimeout = 10 * time.Second

// NewClient builds the DynamoDB client from application config.
//
// Behavior:
//   - Region from config wins; otherwise the SDK's default resolution
//     chain (env vars, shared profile, instance metadata) applies.
//   - When an endpoint override is configured (dynamodb-local in
//     development), the client targets it and uses static throwaway
//     credentials, since local DynamoDB only needs a signed request,
//     not a real identity.
func NewClient(cfg *config.Config) (*dynamodb.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), clientBuildTimeout)
	defer cancel()

	var loadOpts []func(*awsconfig.LoadOptions) error

	if cfg.Store.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Store.Region))
	}

	if cfg.Store.Endpoint != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Store.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Store.Endpoint)
		}
	})

	return client, nil
}
