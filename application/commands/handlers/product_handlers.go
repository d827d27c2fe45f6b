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

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	useCase
	stores   ports.StoreRepository
	products ports.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(
	stores ports.StoreRepository,
	products ports.ProductRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *CreateProductHandler {
	return &CreateProductHandler{
		useCase:  newUseCase(publisher, metrics, logger),
		stores:   stores,
		products: products,
	}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (_ *entities.Product, err error) {
	defer h.observe(ctx, "CreateProduct", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	if err = requireStore(ctx, h.stores, cmd.StoreID); err != nil {
		return nil, err
	}

	productID := cmd.Product.ID()
	exists, err := h.products.Exists(ctx, cmd.StoreID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		err = pkgerrors.NewProductAlreadyExists(cmd.StoreID.String(), productID.String())
		return nil, err
	}

	if err = h.products.Create(ctx, cmd.StoreID, cmd.Product); err != nil {
		return nil, err
	}

	h.publish(ctx, events.NewProductEvent(events.ProductCreated, cmd.StoreID, productID, time.Now()))
	return cmd.Product, nil
}

// CreateProductsHandler handles batch product creation
type CreateProductsHandler struct {
	useCase
	stores   ports.StoreRepository
	products ports.ProductRepository
}

// NewCreateProductsHandler creates a new batch create product handler
func NewCreateProductsHandler(
	stores ports.StoreRepository,
	products ports.ProductRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *CreateProductsHandler {
	return &CreateProductsHandler{
		useCase:  newUseCase(publisher, metrics, logger),
		stores:   stores,
		products: products,
	}
}

// Handle executes the batch create command. Either every product is new and
// all are stored, or nothing is written.
func (h *CreateProductsHandler) Handle(ctx context.Context, cmd commands.CreateProductsCommand) (_ []*entities.Product, err error) {
	defer h.observe(ctx, "CreateProducts", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	if err = requireStore(ctx, h.stores, cmd.StoreID); err != nil {
		return nil, err
	}

	ids := cmd.ProductIDs()
	missing, err := h.products.GetIfNotExists(ctx, cmd.StoreID, ids)
	if err != nil {
		return nil, err
	}
	if existing := subtract(ids, missing); len(existing) > 0 {
		err = pkgerrors.NewProductAlreadyExists(cmd.StoreID.String(), idStrings(existing)...)
		return nil, err
	}

	if err = h.products.CreateAll(ctx, cmd.StoreID, cmd.Products); err != nil {
		return nil, err
	}

	now := time.Now()
	evts := make([]events.DomainEvent, len(ids))
	for i, id := range ids {
		evts[i] = events.NewProductEvent(events.ProductCreated, cmd.StoreID, id, now)
	}
	h.publish(ctx, evts...)

	return cmd.Products, nil
}

// UpdateProductHandler handles product replacement
type UpdateProductHandler struct {
	useCase
	stores   ports.StoreRepository
	products ports.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(
	stores ports.StoreRepository,
	products ports.ProductRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *UpdateProductHandler {
	return &UpdateProductHandler{
		useCase:  newUseCase(publisher, metrics, logger),
		stores:   stores,
		products: products,
	}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd commands.UpdateProductCommand) (_ *entities.Product, err error) {
	defer h.observe(ctx, "UpdateProduct", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	if err = requireStore(ctx, h.stores, cmd.StoreID); err != nil {
		return nil, err
	}
	if err = h.requireProduct(ctx, cmd.StoreID, cmd.Product.ID()); err != nil {
		return nil, err
	}

	if err = h.products.Update(ctx, cmd.StoreID, cmd.Product); err != nil {
		return nil, err
	}

	h.publish(ctx, events.NewProductEvent(events.ProductUpdated, cmd.StoreID, cmd.Product.ID(), time.Now()))
	return cmd.Product, nil
}

func (h *UpdateProductHandler) requireProduct(ctx context.Context, storeID, productID valueobjects.ID) error {
	exists, err := h.products.Exists(ctx, storeID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return pkgerrors.NewProductNotFound(storeID.String(), productID.String())
	}
	return nil
}

// DeleteProductHandler handles product removal
type DeleteProductHandler struct {
	useCase
	stores   ports.StoreRepository
	products ports.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(
	stores ports.StoreRepository,
	products ports.ProductRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *DeleteProductHandler {
	return &DeleteProductHandler{
		useCase:  newUseCase(publisher, metrics, logger),
		stores:   stores,
		products: products,
	}
}

// Handle executes the delete product command. Products still referenced by
// an offer or option cannot be removed.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd commands.DeleteProductCommand) (err error) {
	defer h.observe(ctx, "DeleteProduct", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return err
	}
	if err = requireStore(ctx, h.stores, cmd.StoreID); err != nil {
		return err
	}

	exists, err := h.products.Exists(ctx, cmd.StoreID, cmd.ProductID)
	if err != nil {
		return err
	}
	if !exists {
		err = pkgerrors.NewProductNotFound(cmd.StoreID.String(), cmd.ProductID.String())
		return err
	}

	inUse, err := h.products.IsInUse(ctx, cmd.StoreID, cmd.ProductID)
	if err != nil {
		return err
	}
	if inUse {
		err = pkgerrors.NewProductInUse(cmd.StoreID.String(), cmd.ProductID.String())
		return err
	}

	if err = h.products.Delete(ctx, cmd.StoreID, cmd.ProductID); err != nil {
		return err
	}

	h.publish(ctx, events.NewProductEvent(events.ProductDeleted, cmd.StoreID, cmd.ProductID, time.Now()))
	return nil
}

// subtract returns the ids that are not in remove, keeping order
func subtract(ids, remove []valueobjects.ID) []valueobjects.ID {
	drop := make(map[valueobjects.ID]struct{}, len(remove))
	for _, id := range remove {
		drop[id] = struct{}{}
	}

	var out []valueobjects.ID
	for _, id := range ids {
		if _, ok := drop[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
