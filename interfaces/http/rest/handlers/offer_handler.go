package handlers

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/commands"
	commandhandlers "github.com/rodrigogurgel/catalog-sub001/application/commands/handlers"
	"github.com/rodrigogurgel/catalog-sub001/application/queries"
	queryhandlers "github.com/rodrigogurgel/catalog-sub001/application/queries/handlers"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest/dto"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// OfferUseCases groups the use cases served by OfferHandler
type OfferUseCases struct {
	Create *commandhandlers.CreateOfferHandler
	Update *commandhandlers.UpdateOfferHandler
	Delete *commandhandlers.DeleteOfferHandler
	Query  *queryhandlers.OfferQueryHandler
}

// OfferHandler handles offer-related HTTP requests
type OfferHandler struct {
	useCases OfferUseCases
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(useCases OfferUseCases, errs *pkgerrors.ErrorHandler, logger *zap.Logger) *OfferHandler {
	return &OfferHandler{
		useCases: useCases,
		errors:   errs,
		logger:   logger,
	}
}

// CreateOffer handles POST /stores/{storeID}/categories/{categoryID}/offers
func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.OfferRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	offer, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	created, err := h.useCases.Create.Handle(r.Context(), commands.CreateOfferCommand{
		StoreID:    ids[0],
		CategoryID: ids[1],
		Offer:      offer,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.logger.Info("Offer created",
		zap.String("storeID", ids[0].String()),
		zap.String("categoryID", ids[1].String()),
		zap.String("offerID", created.ID().String()))
	common.RespondJSON(w, http.StatusCreated, dto.NewOfferResponse(created))
}

// GetOffer handles GET /stores/{storeID}/categories/{categoryID}/offers/{offerID}
func (h *OfferHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID", "offerID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	offer, err := h.useCases.Query.GetOffer(r.Context(), queries.GetOfferQuery{
		StoreID:    ids[0],
		CategoryID: ids[1],
		OfferID:    ids[2],
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.NewOfferResponse(offer))
}

// ListOffers handles GET /stores/{storeID}/categories/{categoryID}/offers
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	limit, cursor, err := pageParams(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	page, err := h.useCases.Query.ListOffers(r.Context(), queries.ListOffersQuery{
		StoreID:    ids[0],
		CategoryID: ids[1],
		Limit:      limit,
		Cursor:     cursor,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondWithMeta(w, http.StatusOK, dto.NewOfferResponses(page.Items), pageMeta(r, page.NextCursor))
}

// CountOffers handles GET /stores/{storeID}/categories/{categoryID}/offers/count
func (h *OfferHandler) CountOffers(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	count, err := h.useCases.Query.CountOffers(r.Context(), queries.CountOffersQuery{
		StoreID:    ids[0],
		CategoryID: ids[1],
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.CountResponse{Count: count})
}

// SearchOffers handles GET /stores/{storeID}/offers/search?q=&limit=&offset=
func (h *OfferHandler) SearchOffers(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	result, err := h.useCases.Query.SearchOffers(r.Context(), queries.SearchOffersQuery{
		StoreID: storeID,
		Query:   r.URL.Query().Get("q"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	total := result.Total
	common.RespondWithMeta(w, http.StatusOK, dto.NewOfferResponses(result.Offers), &common.MetaInfo{
		RequestID: chimiddleware.GetReqID(r.Context()),
		Total:     &total,
	})
}

// UpdateOffer handles PUT /stores/{storeID}/categories/{categoryID}/offers/{offerID}
func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID", "offerID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.OfferRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if err := matchID(&req.ID, ids[2]); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	offer, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	updated, err := h.useCases.Update.Handle(r.Context(), commands.UpdateOfferCommand{
		StoreID:    ids[0],
		CategoryID: ids[1],
		Offer:      offer,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.NewOfferResponse(updated))
}

// DeleteOffer handles DELETE /stores/{storeID}/categories/{categoryID}/offers/{offerID}
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID", "offerID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.useCases.Delete.Handle(r.Context(), commands.DeleteOfferCommand{
		OfferRef: commands.OfferRef{StoreID: ids[0], CategoryID: ids[1], OfferID: ids[2]},
	}); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.logger.Info("Offer deleted",
		zap.String("storeID", ids[0].String()),
		zap.String("offerID", ids[2].String()))
	common.RespondNoContent(w)
}
