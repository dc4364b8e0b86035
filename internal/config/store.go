package config

// StoreConfig groups everything needed to reach the DynamoDB table that
// holds resource records.
//
// All fields are optional:
//   - TableName falls back to "resources", matching the table the
//     provisioning layer creates when nothing else is configured.
//   - Region falls back to whatever the AWS SDK resolves from the
//     environment/profile chain.
//   - Endpoint is only set when pointing at a local DynamoDB
//     (e.g. http://localhost:8000 for dynamodb-local in development).
type StoreConfig struct {
	TableName string `koanf:"table_name"`
	Region    string `koanf:"region"`
	Endpoint  string `koanf:"endpoint"`
}

// DefaultTableName is used when no table name is configured.
const DefaultTableName = "resources"

// DefaultStoreConfig provides the store defaults used when the whole
// store block is absent from the environment.
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		TableName: DefaultTableName,
	}
}

// ApplyDefaults fills in zero-valued fields on a partially provided block.
// Needed because the env may set e.g. only the region, which makes the
// block non-nil but leaves the table name empty.
func (c *StoreConfig) ApplyDefaults() {
	if c.TableName == "" {
		c.TableName = DefaultTableName
	}
}
