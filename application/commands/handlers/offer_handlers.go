package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/commands"
	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/domain/events"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// offerUseCase carries the repositories every offer command touches
type offerUseCase struct {
	useCase
	stores     ports.StoreRepository
	categories ports.CategoryRepository
	products   ports.ProductRepository
	offers     ports.OfferRepository
}

func newOfferUseCase(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	products ports.ProductRepository,
	offers ports.OfferRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) offerUseCase {
	return offerUseCase{
		useCase:    newUseCase(publisher, metrics, logger),
		stores:     stores,
		categories: categories,
		products:   products,
		offers:     offers,
	}
}

func (u offerUseCase) requireParents(ctx context.Context, storeID, categoryID valueobjects.ID) error {
	if err := requireStore(ctx, u.stores, storeID); err != nil {
		return err
	}
	return requireCategory(ctx, u.categories, storeID, categoryID)
}

// checkOffer applies the rules an offer must satisfy before it is written
func (u offerUseCase) checkOffer(ctx context.Context, storeID valueobjects.ID, offer *entities.Offer) error {
	if err := offer.ValidatePrice(); err != nil {
		return err
	}
	return requireProducts(ctx, u.products, storeID, offer.ProductIDs())
}

func (u offerUseCase) load(ctx context.Context, ref commands.OfferRef) (*entities.Offer, error) {
	if err := u.requireParents(ctx, ref.StoreID, ref.CategoryID); err != nil {
		return nil, err
	}

	offer, err := u.offers.GetByID(ctx, ref.StoreID, ref.CategoryID, ref.OfferID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, pkgerrors.NewOfferNotFound(ref.StoreID.String(), ref.CategoryID.String(), ref.OfferID.String())
	}
	return offer, nil
}

// save checks and writes an offer rebuilt by a composition command
func (u offerUseCase) save(ctx context.Context, ref commands.OfferRef, offer *entities.Offer) error {
	if err := u.checkOffer(ctx, ref.StoreID, offer); err != nil {
		return err
	}
	if err := u.offers.Update(ctx, ref.StoreID, ref.CategoryID, offer); err != nil {
		return err
	}

	u.publish(ctx, events.NewOfferEvent(events.OfferUpdated, ref.StoreID, ref.CategoryID, ref.OfferID, time.Now()))
	return nil
}

// CreateOfferHandler handles offer creation
type CreateOfferHandler struct {
	offerUseCase
}

// NewCreateOfferHandler creates a new create offer handler
func NewCreateOfferHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	products ports.ProductRepository,
	offers ports.OfferRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *CreateOfferHandler {
	return &CreateOfferHandler{newOfferUseCase(stores, categories, products, offers, publisher, metrics, logger)}
}

// Handle executes the create offer command
func (h *CreateOfferHandler) Handle(ctx context.Context, cmd commands.CreateOfferCommand) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "CreateOffer", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	if err = h.requireParents(ctx, cmd.StoreID, cmd.CategoryID); err != nil {
		return nil, err
	}

	offerID := cmd.Offer.ID()
	exists, err := h.offers.Exists(ctx, cmd.StoreID, cmd.CategoryID, offerID)
	if err != nil {
		return nil, err
	}
	if exists {
		err = pkgerrors.NewOfferAlreadyExists(cmd.StoreID.String(), cmd.CategoryID.String(), offerID.String())
		return nil, err
	}

	if err = h.checkOffer(ctx, cmd.StoreID, cmd.Offer); err != nil {
		return nil, err
	}
	if err = h.offers.Create(ctx, cmd.StoreID, cmd.CategoryID, cmd.Offer); err != nil {
		return nil, err
	}

	h.publish(ctx, events.NewOfferEvent(events.OfferCreated, cmd.StoreID, cmd.CategoryID, offerID, time.Now()))
	return cmd.Offer, nil
}

// UpdateOfferHandler handles offer replacement
type UpdateOfferHandler struct {
	offerUseCase
}

// NewUpdateOfferHandler creates a new update offer handler
func NewUpdateOfferHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	products ports.ProductRepository,
	offers ports.OfferRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *UpdateOfferHandler {
	return &UpdateOfferHandler{newOfferUseCase(stores, categories, products, offers, publisher, metrics, logger)}
}

// Handle executes the update offer command
func (h *UpdateOfferHandler) Handle(ctx context.Context, cmd commands.UpdateOfferCommand) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "UpdateOffer", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	if err = h.requireParents(ctx, cmd.StoreID, cmd.CategoryID); err != nil {
		return nil, err
	}

	offerID := cmd.Offer.ID()
	exists, err := h.offers.Exists(ctx, cmd.StoreID, cmd.CategoryID, offerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		err = pkgerrors.NewOfferNotFound(cmd.StoreID.String(), cmd.CategoryID.String(), offerID.String())
		return nil, err
	}

	if err = h.checkOffer(ctx, cmd.StoreID, cmd.Offer); err != nil {
		return nil, err
	}
	if err = h.offers.Update(ctx, cmd.StoreID, cmd.CategoryID, cmd.Offer); err != nil {
		return nil, err
	}

	h.publish(ctx, events.NewOfferEvent(events.OfferUpdated, cmd.StoreID, cmd.CategoryID, offerID, time.Now()))
	return cmd.Offer, nil
}

// DeleteOfferHandler handles offer removal
type DeleteOfferHandler struct {
	offerUseCase
}

// NewDeleteOfferHandler creates a new delete offer handler
func NewDeleteOfferHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	offers ports.OfferRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *DeleteOfferHandler {
	return &DeleteOfferHandler{newOfferUseCase(stores, categories, nil, offers, publisher, metrics, logger)}
}

// Handle executes the delete offer command
func (h *DeleteOfferHandler) Handle(ctx context.Context, cmd commands.DeleteOfferCommand) (err error) {
	defer h.observe(ctx, "DeleteOffer", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return err
	}
	if err = h.requireParents(ctx, cmd.StoreID, cmd.CategoryID); err != nil {
		return err
	}

	exists, err := h.offers.Exists(ctx, cmd.StoreID, cmd.CategoryID, cmd.OfferID)
	if err != nil {
		return err
	}
	if !exists {
		err = pkgerrors.NewOfferNotFound(cmd.StoreID.String(), cmd.CategoryID.String(), cmd.OfferID.String())
		return err
	}

	if err = h.offers.Delete(ctx, cmd.StoreID, cmd.CategoryID, cmd.OfferID); err != nil {
		return err
	}

	h.publish(ctx, events.NewOfferEvent(events.OfferDeleted, cmd.StoreID, cmd.CategoryID, cmd.OfferID, time.Now()))
	return nil
}
