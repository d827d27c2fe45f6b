package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/commands"
	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/events"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	useCase
	stores     ports.StoreRepository
	categories ports.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		useCase:    newUseCase(publisher, metrics, logger),
		stores:     stores,
		categories: categories,
	}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd commands.CreateCategoryCommand) (_ *entities.Category, err error) {
	defer h.observe(ctx, "CreateCategory", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	if err = requireStore(ctx, h.stores, cmd.StoreID); err != nil {
		return nil, err
	}

	categoryID := cmd.Category.ID()
	exists, err := h.categories.Exists(ctx, cmd.StoreID, categoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		err = pkgerrors.NewCategoryAlreadyExists(cmd.StoreID.String(), categoryID.String())
		return nil, err
	}

	if err = h.categories.Create(ctx, cmd.StoreID, cmd.Category); err != nil {
		return nil, err
	}

	h.publish(ctx, events.NewCategoryEvent(events.CategoryCreated, cmd.StoreID, categoryID, time.Now()))
	return cmd.Category, nil
}

// UpdateCategoryHandler handles category replacement
type UpdateCategoryHandler struct {
	useCase
	stores     ports.StoreRepository
	categories ports.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{
		useCase:    newUseCase(publisher, metrics, logger),
		stores:     stores,
		categories: categories,
	}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd commands.UpdateCategoryCommand) (_ *entities.Category, err error) {
	defer h.observe(ctx, "UpdateCategory", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	if err = requireStore(ctx, h.stores, cmd.StoreID); err != nil {
		return nil, err
	}
	if err = requireCategory(ctx, h.categories, cmd.StoreID, cmd.Category.ID()); err != nil {
		return nil, err
	}

	if err = h.categories.Update(ctx, cmd.StoreID, cmd.Category); err != nil {
		return nil, err
	}

	h.publish(ctx, events.NewCategoryEvent(events.CategoryUpdated, cmd.StoreID, cmd.Category.ID(), time.Now()))
	return cmd.Category, nil
}

// DeleteCategoryHandler handles category removal
type DeleteCategoryHandler struct {
	useCase
	stores     ports.StoreRepository
	categories ports.CategoryRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(
	stores ports.StoreRepository,
	categories ports.CategoryRepository,
	publisher ports.EventPublisher,
	metrics ports.Metrics,
	logger *zap.Logger,
) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{
		useCase:    newUseCase(publisher, metrics, logger),
		stores:     stores,
		categories: categories,
	}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd commands.DeleteCategoryCommand) (err error) {
	defer h.observe(ctx, "DeleteCategory", time.Now(), &err)

	if err = cmd.Validate(); err != nil {
		return err
	}
	if err = requireStore(ctx, h.stores, cmd.StoreID); err != nil {
		return err
	}
	if err = requireCategory(ctx, h.categories, cmd.StoreID, cmd.CategoryID); err != nil {
		return err
	}

	if err = h.categories.Delete(ctx, cmd.StoreID, cmd.CategoryID); err != nil {
		return err
	}

	h.publish(ctx, events.NewCategoryEvent(events.CategoryDeleted, cmd.StoreID, cmd.CategoryID, time.Now()))
	return nil
}
