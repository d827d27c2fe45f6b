package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type fakeCloudWatch struct {
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (f *fakeCloudWatch) PutMetricData(_ context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.inputs = append(f.inputs, in)
	return &cloudwatch.PutMetricDataOutput{}, f.err
}

func TestMetrics_RecordUseCase(t *testing.T) {
	client := &fakeCloudWatch{}
	metrics := NewMetrics("Catalog", client, zap.NewNop())

	metrics.RecordUseCase(context.Background(), "CreateOffer", 120*time.Millisecond, errors.New("boom"))

	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	assert.Equal(t, "Catalog", aws.ToString(input.Namespace))
	require.Len(t, input.MetricData, 2)
	assert.Equal(t, "UseCaseLatency", aws.ToString(input.MetricData[0].MetricName))
	assert.Equal(t, 120.0, aws.ToFloat64(input.MetricData[0].Value))
	assert.Equal(t, "failure", aws.ToString(input.MetricData[0].Dimensions[1].Value))
}

func TestMetrics_SendFailureIsSwallowed(t *testing.T) {
	client := &fakeCloudWatch{err: errors.New("throttled")}
	metrics := NewMetrics("Catalog", client, zap.NewNop())

	assert.NotPanics(t, func() {
		metrics.RecordUseCase(context.Background(), "GetOffer", time.Millisecond, nil)
	})
}

func TestMetrics_NilClient(t *testing.T) {
	metrics := NewMetrics("Catalog", nil, zap.NewNop())

	assert.NotPanics(t, func() {
		metrics.RecordUseCase(context.Background(), "GetOffer", time.Millisecond, nil)
	})
}

func TestRecorders_FanOut(t *testing.T) {
	collector := NewCollector("catalog_test")
	client := &fakeCloudWatch{}

	Recorders{collector, NewMetrics("Catalog", client, zap.NewNop())}.
		RecordUseCase(context.Background(), "DeleteProduct", time.Millisecond, nil)

	assert.Len(t, client.inputs, 1)
	assert.Contains(t, scrape(t, collector), `catalog_test_use_cases_total{status="success",use_case="DeleteProduct"} 1`)
}

func scrape(t *testing.T, collector *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestCollector_MiddlewareUsesRoutePattern(t *testing.T) {
	collector := NewCollector("catalog_test")

	router := chi.NewRouter()
	router.Use(collector.Middleware)
	router.Get("/stores/{storeID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores/abc", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	assert.Contains(t, scrape(t, collector),
		`catalog_test_http_requests_total{method="GET",route="/stores/{storeID}",status="418"} 1`)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("production", "warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = NewLogger("development", "loud")
	assert.Error(t, err)
}
