package di

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/infrastructure/config"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/messaging/eventbridge"
	"github.com/rodrigogurgel/catalog-sub001/pkg/observability"
)

func testAWSConfig() aws.Config {
	return aws.Config{Region: "us-east-1"}
}

func TestProvideDatastore(t *testing.T) {
	logger := zap.NewNop()
	client := awsdynamodb.NewFromConfig(testAWSConfig())

	t.Run("dynamodb", func(t *testing.T) {
		cfg := &config.Config{Datastore: config.DatastoreDynamoDB, DynamoDBTable: "catalog"}

		datastore, cleanup, err := ProvideDatastore(context.Background(), cfg, client, logger)

		require.NoError(t, err)
		require.NotNil(t, cleanup)
		defer cleanup()
		assert.NotNil(t, datastore.Stores)
		assert.NotNil(t, datastore.Categories)
		assert.NotNil(t, datastore.Products)
		assert.NotNil(t, datastore.Offers)
		assert.NotNil(t, datastore.Ready)
	})

	t.Run("unsupported", func(t *testing.T) {
		cfg := &config.Config{Datastore: "postgres"}

		datastore, cleanup, err := ProvideDatastore(context.Background(), cfg, client, logger)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "postgres")
		assert.Nil(t, datastore)
		assert.Nil(t, cleanup)
	})
}

func TestProvideEventPublisher(t *testing.T) {
	logger := zap.NewNop()
	client := awseventbridge.NewFromConfig(testAWSConfig())

	noop := ProvideEventPublisher(&config.Config{}, client, logger)
	assert.IsType(t, &eventbridge.NoopPublisher{}, noop)

	bus := ProvideEventPublisher(&config.Config{EventBusName: "catalog-events"}, client, logger)
	assert.IsType(t, &eventbridge.Publisher{}, bus)
}

func TestProvideMetrics(t *testing.T) {
	logger := zap.NewNop()
	collector := observability.NewCollector("catalog_test")
	client := awscloudwatch.NewFromConfig(testAWSConfig())

	disabled := ProvideMetrics(&config.Config{Environment: "test"}, collector, client, logger)
	recorders, ok := disabled.(observability.Recorders)
	require.True(t, ok)
	assert.Len(t, recorders, 1)

	enabled := ProvideMetrics(&config.Config{Environment: "test", EnableMetrics: true}, collector, client, logger)
	recorders, ok = enabled.(observability.Recorders)
	require.True(t, ok)
	assert.Len(t, recorders, 2)
}

func TestProvideTracer(t *testing.T) {
	assert.Nil(t, ProvideTracer(&config.Config{}))
	assert.NotNil(t, ProvideTracer(&config.Config{EnableTracing: true}))
}

func TestProvideJWTValidator(t *testing.T) {
	logger := zap.NewNop()

	validator, err := ProvideJWTValidator(&config.Config{}, logger)
	require.NoError(t, err)
	assert.Nil(t, validator)

	validator, err = ProvideJWTValidator(&config.Config{JWTSecret: "secret", JWTIssuer: "catalog"}, logger)
	require.NoError(t, err)
	assert.NotNil(t, validator)
}

func TestProvideRouterOptions(t *testing.T) {
	cfg := &config.Config{EnableCORS: true, RequestTimeout: 5 * time.Second}
	collector := observability.NewCollector("catalog_options_test")
	datastore := &Datastore{Ready: func(context.Context) error { return nil }}

	options := ProvideRouterOptions(cfg, datastore, collector, nil, nil)

	assert.True(t, options.EnableCORS)
	assert.Equal(t, 5*time.Second, options.RequestTimeout)
	assert.Same(t, collector, options.Collector)
	assert.Nil(t, options.Tracer)
	assert.Nil(t, options.Validator)
	require.NotNil(t, options.Ready)
	assert.NoError(t, options.Ready(context.Background()))
}
