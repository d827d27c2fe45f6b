package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// UseCaseRecorder records one use case execution
type UseCaseRecorder interface {
	RecordUseCase(ctx context.Context, name string, duration time.Duration, err error)
}

// CloudWatchClient is the subset of the CloudWatch API used by Metrics
type CloudWatchClient interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics sends use case metrics to CloudWatch
type Metrics struct {
	namespace string
	client    CloudWatchClient
	logger    *zap.Logger
}

// NewMetrics creates a new metrics instance. A nil client disables sending.
func NewMetrics(namespace string, client CloudWatchClient, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// RecordUseCase records the latency and the outcome of a use case
func (m *Metrics) RecordUseCase(ctx context.Context, name string, duration time.Duration, err error) {
	if m.client == nil {
		return
	}

	dimensions := []types.Dimension{
		{Name: aws.String("UseCase"), Value: aws.String(name)},
		{Name: aws.String("Status"), Value: aws.String(status(err))},
	}
	now := time.Now()

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("UseCaseLatency"),
				Dimensions: dimensions,
				Value:      aws.Float64(float64(duration.Milliseconds())),
				Unit:       types.StandardUnitMilliseconds,
				Timestamp:  aws.Time(now),
			},
			{
				MetricName: aws.String("UseCaseCount"),
				Dimensions: dimensions,
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(now),
			},
		},
	}

	// Metrics never fail the use case
	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Warn("Failed to send metrics", zap.String("useCase", name), zap.Error(err))
	}
}

// Recorders fans one execution out to several recorders
type Recorders []UseCaseRecorder

func (r Recorders) RecordUseCase(ctx context.Context, name string, duration time.Duration, err error) {
	for _, recorder := range r {
		recorder.RecordUseCase(ctx, name, duration, err)
	}
}

func status(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
