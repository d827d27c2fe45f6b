package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// readModel is shared by every query handler
type readModel struct {
	stores  ports.StoreRepository
	metrics ports.Metrics
	logger  *zap.Logger
}

func newReadModel(stores ports.StoreRepository, metrics ports.Metrics, logger *zap.Logger) readModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return readModel{stores: stores, metrics: metrics, logger: logger}
}

func (r readModel) observe(ctx context.Context, name string, start time.Time, errp *error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordUseCase(ctx, name, time.Since(start), *errp)
}

func (r readModel) requireStore(ctx context.Context, storeID valueobjects.ID) error {
	exists, err := r.stores.Exists(ctx, storeID)
	if err != nil {
		return err
	}
	if !exists {
		return pkgerrors.NewStoreNotFound(storeID.String())
	}
	return nil
}
