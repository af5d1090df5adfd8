package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test. t.Setenv registers
// the restore; the unset makes the variable truly absent rather than
// empty.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t,
		"HTTP_PORT", "REQUEST_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"MONGO_URI", "MONGO_DB_NAME", "TABLE_NAME",
		"IMAGE_UPLOAD_BUCKET", "REGION", "S3_ENDPOINT",
		"S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_USE_SSL",
		"KAFKA_BROKERS", "KAFKA_TOPIC",
	)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "products", cfg.TableName)
	assert.Equal(t, "product-images", cfg.ImageBucket)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.True(t, cfg.S3UseSSL)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("TABLE_NAME", "inventory-products")
	t.Setenv("REGION", "ap-south-1")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.HTTPPort)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "inventory-products", cfg.TableName)
	assert.Equal(t, "ap-south-1", cfg.Region)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
