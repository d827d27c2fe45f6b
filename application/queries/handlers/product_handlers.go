package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/application/queries"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// ProductQueryHandler handles product queries
type ProductQueryHandler struct {
	readModel
	products ports.ProductRepository
}

// NewProductQueryHandler creates a new product query handler
func NewProductQueryHandler(
	stores ports.StoreRepository,
	products ports.ProductRepository,
	metrics ports.Metrics,
	logger *zap.Logger,
) *ProductQueryHandler {
	return &ProductQueryHandler{
		readModel: newReadModel(stores, metrics, logger),
		products:  products,
	}
}

// GetProduct returns one product
func (h *ProductQueryHandler) GetProduct(ctx context.Context, q queries.GetProductQuery) (_ *entities.Product, err error) {
	defer h.observe(ctx, "GetProduct", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return nil, err
	}

	product, err := h.products.GetByID(ctx, q.StoreID, q.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		err = pkgerrors.NewProductNotFound(q.StoreID.String(), q.ProductID.String())
		return nil, err
	}
	return product, nil
}

// ListProducts returns one page of the store's products
func (h *ProductQueryHandler) ListProducts(ctx context.Context, q queries.ListProductsQuery) (_ common.Page[*entities.Product], err error) {
	defer h.observe(ctx, "ListProducts", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return common.Page[*entities.Product]{}, err
	}
	if err = h.requireStore(ctx, q.StoreID); err != nil {
		return common.Page[*entities.Product]{}, err
	}
	return h.products.List(ctx, q.StoreID, common.EffectiveLimit(q.Limit), q.Cursor)
}

// CountProducts returns how many products the store has
func (h *ProductQueryHandler) CountProducts(ctx context.Context, q queries.CountProductsQuery) (_ int64, err error) {
	defer h.observe(ctx, "CountProducts", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return 0, err
	}
	if err = h.requireStore(ctx, q.StoreID); err != nil {
		return 0, err
	}
	return h.products.Count(ctx, q.StoreID)
}
