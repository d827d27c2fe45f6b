package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/commands"
	commandhandlers "github.com/rodrigogurgel/catalog-sub001/application/commands/handlers"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest/dto"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// CompositionHandler edits the customization tree of an offer. Every call
// answers with the whole rebuilt offer.
type CompositionHandler struct {
	composition *commandhandlers.OfferCompositionHandler
	errors      *pkgerrors.ErrorHandler
	logger      *zap.Logger
}

// NewCompositionHandler creates a new composition handler
func NewCompositionHandler(
	composition *commandhandlers.OfferCompositionHandler,
	errs *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *CompositionHandler {
	return &CompositionHandler{
		composition: composition,
		errors:      errs,
		logger:      logger,
	}
}

func offerRef(r *http.Request) (commands.OfferRef, error) {
	ids, err := pathIDs(r, "storeID", "categoryID", "offerID")
	if err != nil {
		return commands.OfferRef{}, err
	}
	return commands.OfferRef{StoreID: ids[0], CategoryID: ids[1], OfferID: ids[2]}, nil
}

// AddCustomization handles POST .../offers/{offerID}/customizations
func (h *CompositionHandler) AddCustomization(w http.ResponseWriter, r *http.Request) {
	ref, err := offerRef(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	customization, err := h.decodeCustomization(w, r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	offer, err := h.composition.AddCustomization(r.Context(), commands.AddCustomizationCommand{
		OfferRef:      ref,
		Customization: customization,
	})
	h.respond(w, r, http.StatusCreated, offer, err)
}

// AddNestedCustomization handles
// POST .../customizations/{customizationID}/options/{optionID}/customizations
func (h *CompositionHandler) AddNestedCustomization(w http.ResponseWriter, r *http.Request) {
	ref, err := offerRef(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	parents, err := pathIDs(r, "customizationID", "optionID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	customization, err := h.decodeCustomization(w, r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	offer, err := h.composition.AddCustomization(r.Context(), commands.AddCustomizationCommand{
		OfferRef:              ref,
		ParentCustomizationID: parents[0],
		ParentOptionID:        parents[1],
		Customization:         customization,
	})
	h.respond(w, r, http.StatusCreated, offer, err)
}

// UpdateCustomization handles PUT .../customizations/{customizationID}
func (h *CompositionHandler) UpdateCustomization(w http.ResponseWriter, r *http.Request) {
	ref, err := offerRef(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	customizationID, err := pathID(r, "customizationID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.CustomizationRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if err := matchID(&req.ID, customizationID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	customization, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	offer, err := h.composition.UpdateCustomization(r.Context(), commands.UpdateCustomizationCommand{
		OfferRef:      ref,
		Customization: customization,
	})
	h.respond(w, r, http.StatusOK, offer, err)
}

// DeleteCustomization handles DELETE .../customizations/{customizationID}
func (h *CompositionHandler) DeleteCustomization(w http.ResponseWriter, r *http.Request) {
	ref, err := offerRef(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	customizationID, err := pathID(r, "customizationID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	offer, err := h.composition.DeleteCustomization(r.Context(), commands.DeleteCustomizationCommand{
		OfferRef:        ref,
		CustomizationID: customizationID,
	})
	h.respond(w, r, http.StatusOK, offer, err)
}

// AddOption handles POST .../customizations/{customizationID}/options
func (h *CompositionHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	ref, err := offerRef(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	customizationID, err := pathID(r, "customizationID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.OptionRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	option, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	offer, err := h.composition.AddOption(r.Context(), commands.AddOptionCommand{
		OfferRef:        ref,
		CustomizationID: customizationID,
		Option:          option,
	})
	h.respond(w, r, http.StatusCreated, offer, err)
}

// UpdateOption handles PUT .../customizations/{customizationID}/options/{optionID}
func (h *CompositionHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	ref, err := offerRef(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	ids, err := pathIDs(r, "customizationID", "optionID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.OptionRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if err := matchID(&req.ID, ids[1]); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	option, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	offer, err := h.composition.UpdateOption(r.Context(), commands.UpdateOptionCommand{
		OfferRef:        ref,
		CustomizationID: ids[0],
		Option:          option,
	})
	h.respond(w, r, http.StatusOK, offer, err)
}

// DeleteOption handles DELETE .../customizations/{customizationID}/options/{optionID}
func (h *CompositionHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	ref, err := offerRef(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	ids, err := pathIDs(r, "customizationID", "optionID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	offer, err := h.composition.DeleteOption(r.Context(), commands.DeleteOptionCommand{
		OfferRef:        ref,
		CustomizationID: ids[0],
		OptionID:        ids[1],
	})
	h.respond(w, r, http.StatusOK, offer, err)
}

func (h *CompositionHandler) decodeCustomization(w http.ResponseWriter, r *http.Request) (*entities.Customization, error) {
	var req dto.CustomizationRequest
	if err := decodeBody(w, r, &req); err != nil {
		return nil, err
	}
	return req.ToEntity()
}

func (h *CompositionHandler) respond(w http.ResponseWriter, r *http.Request, status int, offer *entities.Offer, err error) {
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	h.logger.Debug("Offer composition changed",
		zap.String("offerID", offer.ID().String()),
		zap.String("method", r.Method))
	common.RespondJSON(w, status, dto.NewOfferResponse(offer))
}
