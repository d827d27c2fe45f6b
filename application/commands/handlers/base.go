package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/domain/events"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// useCase holds what every command handler shares: event publishing,
// execution metrics and logging. Both publisher and metrics may be nil.
type useCase struct {
	publisher ports.EventPublisher
	metrics   ports.Metrics
	logger    *zap.Logger
}

func newUseCase(publisher ports.EventPublisher, metrics ports.Metrics, logger *zap.Logger) useCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return useCase{publisher: publisher, metrics: metrics, logger: logger}
}

// observe is deferred by every Handle method with a pointer to its named error
func (u useCase) observe(ctx context.Context, name string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}

	if u.metrics != nil {
		u.metrics.RecordUseCase(ctx, name, time.Since(start), err)
	}
	if err != nil {
		u.logger.Debug("Use case failed",
			zap.String("use_case", name),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
	}
}

// publish is best-effort: the write already happened, so failures are only logged
func (u useCase) publish(ctx context.Context, evts ...events.DomainEvent) {
	if u.publisher == nil || len(evts) == 0 {
		return
	}

	var err error
	if len(evts) == 1 {
		err = u.publisher.Publish(ctx, evts[0])
	} else {
		err = u.publisher.PublishBatch(ctx, evts)
	}
	if err != nil {
		u.logger.Warn("Failed to publish event",
			zap.String("event_type", evts[0].GetEventType()),
			zap.String("aggregate_id", evts[0].GetAggregateID()),
			zap.Int("count", len(evts)),
			zap.Error(err))
	}
}

func requireStore(ctx context.Context, stores ports.StoreRepository, storeID valueobjects.ID) error {
	exists, err := stores.Exists(ctx, storeID)
	if err != nil {
		return err
	}
	if !exists {
		return pkgerrors.NewStoreNotFound(storeID.String())
	}
	return nil
}

func requireCategory(ctx context.Context, categories ports.CategoryRepository, storeID, categoryID valueobjects.ID) error {
	exists, err := categories.Exists(ctx, storeID, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return pkgerrors.NewCategoryNotFound(storeID.String(), categoryID.String())
	}
	return nil
}

// requireProducts fails with PRODUCT_NOT_FOUND listing every referenced product that is not stored
func requireProducts(ctx context.Context, products ports.ProductRepository, storeID valueobjects.ID, ids []valueobjects.ID) error {
	if len(ids) == 0 {
		return nil
	}

	missing, err := products.GetIfNotExists(ctx, storeID, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return pkgerrors.NewProductNotFound(storeID.String(), idStrings(missing)...)
	}
	return nil
}

func idStrings(ids []valueobjects.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
