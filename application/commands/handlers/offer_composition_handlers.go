package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/commands"
	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
)

// The handlers below edit one node of an offer tree. Each loads the offer,
// rebuilds it through the entity (which re-validates the whole tree) and
// replaces the stored offer with a single Update.

// OfferCompositionHandler handles the customization and option commands
type OfferCompositionHandler struct {
	offerUseCase
}

// NewOfferCompositionHandler creates a new offer composition handler
func NewOfferCompositionHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	products ports.ProductRepository,
	offers ports.OfferRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *OfferCompositionHandler {
	return &OfferCompositionHandler{newOfferUseCase(stores, categories, products, offers, publisher, metrics, logger)}
}

// AddCustomization executes the add customization command
func (h *OfferCompositionHandler) AddCustomization(ctx context.Context, cmd commands.AddCustomizationCommand) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "AddCustomization", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	return h.apply(ctx, cmd.OfferRef, func(offer *entities.Offer) (*entities.Offer, error) {
		if cmd.Nested() {
			return offer.AddNestedCustomization(cmd.ParentCustomizationID, cmd.ParentOptionID, cmd.Customization)
		}
		return offer.AddCustomization(cmd.Customization)
	})
}

// UpdateCustomization executes the update customization command
func (h *OfferCompositionHandler) UpdateCustomization(ctx context.Context, cmd commands.UpdateCustomizationCommand) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "UpdateCustomization", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	return h.apply(ctx, cmd.OfferRef, func(offer *entities.Offer) (*entities.Offer, error) {
		return offer.ReplaceCustomization(cmd.Customization)
	})
}

// DeleteCustomization executes the delete customization command
func (h *OfferCompositionHandler) DeleteCustomization(ctx context.Context, cmd commands.DeleteCustomizationCommand) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "DeleteCustomization", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	return h.apply(ctx, cmd.OfferRef, func(offer *entities.Offer) (*entities.Offer, error) {
		return offer.RemoveCustomization(cmd.CustomizationID)
	})
}

// AddOption executes the add option command
func (h *OfferCompositionHandler) AddOption(ctx context.Context, cmd commands.AddOptionCommand) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "AddOption", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	return h.apply(ctx, cmd.OfferRef, func(offer *entities.Offer) (*entities.Offer, error) {
		return offer.AddOption(cmd.CustomizationID, cmd.Option)
	})
}

// UpdateOption executes the update option command
func (h *OfferCompositionHandler) UpdateOption(ctx context.Context, cmd commands.UpdateOptionCommand) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "UpdateOption", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	return h.apply(ctx, cmd.OfferRef, func(offer *entities.Offer) (*entities.Offer, error) {
		return offer.ReplaceOption(cmd.CustomizationID, cmd.Option)
	})
}

// DeleteOption executes the delete option command
func (h *OfferCompositionHandler) DeleteOption(ctx context.Context, cmd commands.DeleteOptionCommand) (_ *entities.Offer, err error) {
	defer h.observe(ctx, "DeleteOption", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	return h.apply(ctx, cmd.OfferRef, func(offer *entities.Offer) (*entities.Offer, error) {
		return offer.RemoveOption(cmd.CustomizationID, cmd.OptionID)
	})
}

func (h *OfferCompositionHandler) apply(
	ctx context.Context,
	ref commands.OfferRef,
	mutate func(*entities.Offer) (*entities.Offer, error),
) (*entities.Offer, error) {
	current, err := h.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	updated, err := mutate(current)
	if err != nil {
		return nil, err
	}

	if err := h.save(ctx, ref, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
