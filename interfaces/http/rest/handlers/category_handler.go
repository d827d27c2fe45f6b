package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/commands"
	commandhandlers "github.com/rodrigogurgel/catalog-sub001/application/commands/handlers"
	"github.com/rodrigogurgel/catalog-sub001/application/queries"
	queryhandlers "github.com/rodrigogurgel/catalog-sub001/application/queries/handlers"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest/dto"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// CategoryUseCases groups the use cases served by CategoryHandler
type CategoryUseCases struct {
	Create *commandhandlers.CreateCategoryHandler
	Update *commandhandlers.UpdateCategoryHandler
	Delete *commandhandlers.DeleteCategoryHandler
	Query  *queryhandlers.CategoryQueryHandler
}

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	useCases CategoryUseCases
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(useCases CategoryUseCases, errs *pkgerrors.ErrorHandler, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCases: useCases,
		errors:   errs,
		logger:   logger,
	}
}

// CreateCategory handles POST /stores/{storeID}/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.CategoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	category, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	created, err := h.useCases.Create.Handle(r.Context(), commands.CreateCategoryCommand{
		StoreID:  storeID,
		Category: category,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.logger.Info("Category created",
		zap.String("storeID", storeID.String()),
		zap.String("categoryID", created.ID().String()))
	common.RespondJSON(w, http.StatusCreated, dto.NewCategoryResponse(created))
}

// GetCategory handles GET /stores/{storeID}/categories/{categoryID}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	category, err := h.useCases.Query.GetCategory(r.Context(), queries.GetCategoryQuery{
		StoreID:    ids[0],
		CategoryID: ids[1],
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.NewCategoryResponse(category))
}

// ListCategories handles GET /stores/{storeID}/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	limit, cursor, err := pageParams(r)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	page, err := h.useCases.Query.ListCategories(r.Context(), queries.ListCategoriesQuery{
		StoreID: storeID,
		Limit:   limit,
		Cursor:  cursor,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondWithMeta(w, http.StatusOK, dto.NewCategoryResponses(page.Items), pageMeta(r, page.NextCursor))
}

// CountCategories handles GET /stores/{storeID}/categories/count
func (h *CategoryHandler) CountCategories(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	count, err := h.useCases.Query.CountCategories(r.Context(), queries.CountCategoriesQuery{StoreID: storeID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.CountResponse{Count: count})
}

// UpdateCategory handles PUT /stores/{storeID}/categories/{categoryID}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.CategoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if err := matchID(&req.ID, ids[1]); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	category, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	updated, err := h.useCases.Update.Handle(r.Context(), commands.UpdateCategoryCommand{
		StoreID:  ids[0],
		Category: category,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.NewCategoryResponse(updated))
}

// DeleteCategory handles DELETE /stores/{storeID}/categories/{categoryID}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "categoryID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.useCases.Delete.Handle(r.Context(), commands.DeleteCategoryCommand{
		StoreID:    ids[0],
		CategoryID: ids[1],
	}); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.logger.Info("Category deleted",
		zap.String("storeID", ids[0].String()),
		zap.String("categoryID", ids[1].String()))
	common.RespondNoContent(w)
}
