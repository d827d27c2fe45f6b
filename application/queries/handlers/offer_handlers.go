package handlers

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/application/queries"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// OfferQueryHandler handles offer queries
type OfferQueryHandler struct {
	readModel
	categories ports.CategoryRepository
	offers     ports.OfferRepository
}

// NewOfferQueryHandler creates a new offer query handler
func NewOfferQueryHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	offers ports.OfferRepository,
	metrics ports.Metrics,
	logger *zap.Logger,
) *OfferQueryHandler {
	return &OfferQueryHandler{
		readModel:  newReadModel(stores, metrics, logger),
		categories: categories,
		offers:     offers,
	}
}

// GetOffer returns one offer with its whole tree
func (h *OfferQueryHandler) GetOffer(ctx context.Context, q queries.GetOfferQuery) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "GetOffer", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return nil, err
	}

	offer, err := h.offers.GetByID(ctx, q.StoreID, q.CategoryID, q.OfferID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		err = pkgerrors.NewOfferNotFound(q.StoreID.String(), q.CategoryID.String(), q.OfferID.String())
		return nil, err
	}
	return offer, nil
}

// ListOffers returns one page of the category's offers
func (h *OfferQueryHandler) ListOffers(ctx context.Context, q queries.ListOffersQuery) (_ common.Page[*entities.Offer], err error) {
	defer h.observe(ctx, "ListOffers", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return common.Page[*entities.Offer]{}, err
	}
	if err = h.requireCategory(ctx, q.StoreID, q.CategoryID); err != nil {
		return common.Page[*entities.Offer]{}, err
	}
	return h.offers.List(ctx, q.StoreID, q.CategoryID, common.EffectiveLimit(q.Limit), q.Cursor)
}

// CountOffers returns how many offers the category has
func (h *OfferQueryHandler) CountOffers(ctx context.Context, q queries.CountOffersQuery) (_ int64, err error) {
	defer h.observe(ctx, "CountOffers", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return 0, err
	}
	if err = h.requireCategory(ctx, q.StoreID, q.CategoryID); err != nil {
		return 0, err
	}
	return h.offers.Count(ctx, q.StoreID, q.CategoryID)
}

// SearchOffers matches offer names across the store's categories
func (h *OfferQueryHandler) SearchOffers(ctx context.Context, q queries.SearchOffersQuery) (_ queries.SearchOffersResult, err error) {
	defer h.observe(ctx, "SearchOffers", time.Now(), &err)

	if err = q.Validate(); err != nil {
		return queries.SearchOffersResult{}, err
	}
	if err = h.requireStore(ctx, q.StoreID); err != nil {
		return queries.SearchOffersResult{}, err
	}

	offers, total, err := h.offers.Search(ctx, q.StoreID, strings.TrimSpace(q.Query), common.EffectiveLimit(q.Limit), q.Offset)
	if err != nil {
		return queries.SearchOffersResult{}, err
	}
	return queries.SearchOffersResult{Offers: offers, Total: total}, nil
}

func (h *OfferQueryHandler) requireCategory(ctx context.Context, storeID, categoryID valueobjects.ID) error {
	if err := h.requireStore(ctx, storeID); err != nil {
		return err
	}

	exists, err := h.categories.Exists(ctx, storeID, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return pkgerrors.NewCategoryNotFound(storeID.String(), categoryID.String())
	}
	return nil
}
