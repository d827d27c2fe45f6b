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

// ProductUseCases groups the use cases served by ProductHandler
type ProductUseCases struct {
	Create      *commandhandlers.CreateProductHandler
	CreateBatch *commandhandlers.CreateProductsHandler
	Update      *commandhandlers.UpdateProductHandler
	Delete      *commandhandlers.DeleteProductHandler
	Query       *queryhandlers.ProductQueryHandler
}

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	useCases ProductUseCases
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(useCases ProductUseCases, errs *pkgerrors.ErrorHandler, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		useCases: useCases,
		errors:   errs,
		logger:   logger,
	}
}

// CreateProduct handles POST /stores/{storeID}/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.ProductRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	product, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	created, err := h.useCases.Create.Handle(r.Context(), commands.CreateProductCommand{
		StoreID: storeID,
		Product: product,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.logger.Info("Product created",
		zap.String("storeID", storeID.String()),
		zap.String("productID", created.ID().String()))
	common.RespondJSON(w, http.StatusCreated, dto.NewProductResponse(created))
}

// CreateProducts handles POST /stores/{storeID}/products/batch
func (h *ProductHandler) CreateProducts(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.ProductBatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	products, err := req.ToEntities()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	created, err := h.useCases.CreateBatch.Handle(r.Context(), commands.CreateProductsCommand{
		StoreID:  storeID,
		Products: products,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.logger.Info("Products created",
		zap.String("storeID", storeID.String()),
		zap.Int("count", len(created)))
	common.RespondJSON(w, http.StatusCreated, dto.NewProductResponses(created))
}

// GetProduct handles GET /stores/{storeID}/products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "productID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	product, err := h.useCases.Query.GetProduct(r.Context(), queries.GetProductQuery{
		StoreID:   ids[0],
		ProductID: ids[1],
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.NewProductResponse(product))
}

// ListProducts handles GET /stores/{storeID}/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
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

	page, err := h.useCases.Query.ListProducts(r.Context(), queries.ListProductsQuery{
		StoreID: storeID,
		Limit:   limit,
		Cursor:  cursor,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondWithMeta(w, http.StatusOK, dto.NewProductResponses(page.Items), pageMeta(r, page.NextCursor))
}

// CountProducts handles GET /stores/{storeID}/products/count
func (h *ProductHandler) CountProducts(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	count, err := h.useCases.Query.CountProducts(r.Context(), queries.CountProductsQuery{StoreID: storeID})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.CountResponse{Count: count})
}

// UpdateProduct handles PUT /stores/{storeID}/products/{productID}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "productID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req dto.ProductRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if err := matchID(&req.ID, ids[1]); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	product, err := req.ToEntity()
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	updated, err := h.useCases.Update.Handle(r.Context(), commands.UpdateProductCommand{
		StoreID: ids[0],
		Product: product,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, dto.NewProductResponse(updated))
}

// DeleteProduct handles DELETE /stores/{storeID}/products/{productID}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ids, err := pathIDs(r, "storeID", "productID")
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.useCases.Delete.Handle(r.Context(), commands.DeleteProductCommand{
		StoreID:   ids[0],
		ProductID: ids[1],
	}); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	h.logger.Info("Product deleted",
		zap.String("storeID", ids[0].String()),
		zap.String("productID", ids[1].String()))
	common.RespondNoContent(w)
}
