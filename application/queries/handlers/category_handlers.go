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

// CategoryQueryHandler handles category queries
type CategoryQueryHandler struct {
	readModel
	categories ports.CategoryRepository
}

// NewCategoryQueryHandler creates a new category query handler
func NewCategoryQueryHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	metrics ports.Metrics,
	logger *zap.Logger,
) *CategoryQueryHandler {
	return &CategoryQueryHandler{
		readModel:  newReadModel(stores, metrics, logger),
		categories: categories,
	}
}

// GetCategory returns one category
func (h *CategoryQueryHandler) GetCategory(ctx context.Context, q queries.GetCategoryQuery) (_ *entities.Category, err error) {
	defer h.observe(ctx, "GetCategory", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return nil, err
	}

	category, err := h.categories.GetByID(ctx, q.StoreID, q.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		err = pkgerrors.NewCategoryNotFound(q.StoreID.String(), q.CategoryID.String())
		return nil, err
	}
	return category, nil
}

// ListCategories returns one page of the store's categories
func (h *CategoryQueryHandler) ListCategories(ctx context.Context, q queries.ListCategoriesQuery) (_ common.Page[*entities.Category], err error) {
	defer h.observe(ctx, "ListCategories", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return common.Page[*entities.Category]{}, err
	}
	if err = h.requireStore(ctx, q.StoreID); err != nil {
		return common.Page[*entities.Category]{}, err
	}
	return h.categories.List(ctx, q.StoreID, common.EffectiveLimit(q.Limit), q.Cursor)
}

// CountCategories returns how many categories the store has
func (h *CategoryQueryHandler) CountCategories(ctx context.Context, q queries.CountCategoriesQuery) (_ int64, err error) {
	defer h.observe(ctx, "CountCategories", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return 0, err
	}
	if err = h.requireStore(ctx, q.StoreID); err != nil {
		return 0, err
	}
	return h.categories.Count(ctx, q.StoreID)
}
