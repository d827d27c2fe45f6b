package dynamodb

import (
	"context"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
)

// StoreRepository answers store existence from the STORE#<id>/METADATA item
type StoreRepository struct {
	table
}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository(client Client, tableName string, logger *zap.Logger) ports.StoreRepository {
	return &StoreRepository{table: newTable(client, tableName, logger)}
}

// Exists reports whether the store metadata item is present
func (r *StoreRepository) Exists(ctx context.Context, storeID valueobjects.ID) (bool, error) {
	return r.exists(ctx, "StoreExists", storePK(storeID), storeMetadataSK)
}
