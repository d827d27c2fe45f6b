package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/config"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/messaging/eventbridge"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/persistence/dynamodb"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/persistence/mongodb"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest"
	"github.com/rodrigogurgel/catalog-sub001/pkg/auth"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
	"github.com/rodrigogurgel/catalog-sub001/pkg/observability"
)

const serviceName = "catalog-api"

// Datastore holds the repositories of the configured backend
type Datastore struct {
	Stores     ports.StoreRepository
	Categories ports.CategoryRepository
	Products   ports.ProductRepository
	Offers     ports.OfferRepository
	Ready      rest.ReadinessCheck
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	return observability.NewLogger(cfg.Environment, cfg.LogLevel)
}

// ProvideAWSConfig creates AWS configuration. SDK calls are traced when
// tracing is enabled.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client, pointed at a local
// endpoint when one is configured
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideDatastore builds the repositories of the configured backend. The
// cleanup function closes the MongoDB connection.
func ProvideDatastore(
	ctx context.Context,
	cfg *config.Config,
	client *awsdynamodb.Client,
	logger *zap.Logger,
) (*Datastore, func(), error) {
	switch cfg.Datastore {
	case config.DatastoreMongoDB:
		mongoClient, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
			}
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create MongoDB indexes: %w", err)
		}

		logger.Info("Using MongoDB datastore", zap.String("database", cfg.MongoDatabase))
		return &Datastore{
			Stores:     mongodb.NewStoreRepository(db, logger),
			Categories: mongodb.NewCategoryRepository(db, logger),
			Products:   mongodb.NewProductRepository(db, logger),
			Offers:     mongodb.NewOfferRepository(db, logger),
			Ready: func(ctx context.Context) error {
				return mongoClient.Ping(ctx, readpref.Primary())
			},
		}, cleanup, nil

	case config.DatastoreDynamoDB:
		table := cfg.DynamoDBTable
		logger.Info("Using DynamoDB datastore", zap.String("table", table))
		return &Datastore{
			Stores:     dynamodb.NewStoreRepository(client, table, logger),
			Categories: dynamodb.NewCategoryRepository(client, table, logger),
			Products:   dynamodb.NewProductRepository(client, table, logger),
			Offers:     dynamodb.NewOfferRepository(client, table, logger),
			Ready: func(ctx context.Context) error {
				_, err := client.DescribeTable(ctx, &awsdynamodb.DescribeTableInput{TableName: aws.String(table)})
				return err
			},
		}, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported datastore %q", cfg.Datastore)
	}
}

// ProvideEventPublisher publishes to EventBridge when a bus is configured
// and only logs events otherwise
func ProvideEventPublisher(cfg *config.Config, client *awseventbridge.Client, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NewNoopPublisher(logger)
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideCollector creates the Prometheus collector served on /metrics
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("catalog")
}

// ProvideMetrics records use cases in Prometheus, and in CloudWatch when enabled
func ProvideMetrics(
	cfg *config.Config,
	collector *observability.Collector,
	client *awscloudwatch.Client,
	logger *zap.Logger,
) ports.Metrics {
	recorders := observability.Recorders{collector}
	if cfg.EnableMetrics {
		namespace := fmt.Sprintf("Catalog/%s", cfg.Environment)
		recorders = append(recorders, observability.NewMetrics(namespace, client, logger))
	}
	return recorders
}

// ProvideTracer creates the X-Ray tracer, nil when tracing is disabled
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer(serviceName)
}

// ProvideJWTValidator creates the token validator, nil when no secret is
// configured and the API runs unauthenticated
func ProvideJWTValidator(cfg *config.Config, logger *zap.Logger) (*auth.JWTValidator, error) {
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set, API authentication is disabled")
		return nil, nil
	}
	return auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)
}

// ProvideErrorHandler creates the error handler. Development responses carry debug details.
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideRouterOptions maps configuration onto the router middleware stack
func ProvideRouterOptions(
	cfg *config.Config,
	datastore *Datastore,
	collector *observability.Collector,
	tracer *observability.Tracer,
	validator *auth.JWTValidator,
) rest.Options {
	return rest.Options{
		EnableCORS:     cfg.EnableCORS,
		RequestTimeout: cfg.RequestTimeout,
		Collector:      collector,
		Tracer:         tracer,
		Validator:      validator,
		Ready:          datastore.Ready,
	}
}
