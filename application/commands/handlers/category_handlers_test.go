package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/commands"
	"github.com/rodrigogurgel/catalog-sub001/application/ports/mocks"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/fixtures"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

func TestCreateCategoryHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	storeID := valueobjects.NewID()
	category := fixtures.NewCategoryBuilder().MustBuild()

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	publisher := new(mocks.MockEventPublisher)
	metrics := new(mocks.MockMetrics)

	stores.On("Exists", ctx, storeID).Return(true, nil)
	categories.On("Exists", ctx, storeID, category.ID()).Return(false, nil)
	categories.On("Create", ctx, storeID, category).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("events.CatalogEvent")).Return(nil)
	metrics.On("RecordUseCase", ctx, "CreateCategory", mock.AnythingOfType("time.Duration"), nil).Return()

	handler := NewCreateCategoryHandler(stores, categories, publisher, metrics, zap.NewNop())

	// Act
	created, err := handler.Handle(ctx, commands.CreateCategoryCommand{StoreID: storeID, Category: category})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, category, created)
	stores.AssertExpectations(t)
	categories.AssertExpectations(t)
	publisher.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestCreateCategoryHandler_Handle_StoreNotFound(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	stores.On("Exists", ctx, storeID).Return(false, nil)

	handler := NewCreateCategoryHandler(stores, categories, nil, nil, zap.NewNop())

	_, err := handler.Handle(ctx, commands.CreateCategoryCommand{
		StoreID:  storeID,
		Category: fixtures.NewCategoryBuilder().MustBuild(),
	})

	assert.ErrorIs(t, err, pkgerrors.ErrStoreNotFound)
	categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCategoryHandler_Handle_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()
	category := fixtures.NewCategoryBuilder().MustBuild()

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	stores.On("Exists", ctx, storeID).Return(true, nil)
	categories.On("Exists", ctx, storeID, category.ID()).Return(true, nil)

	handler := NewCreateCategoryHandler(stores, categories, nil, nil, zap.NewNop())

	_, err := handler.Handle(ctx, commands.CreateCategoryCommand{StoreID: storeID, Category: category})

	assert.ErrorIs(t, err, pkgerrors.ErrCategoryAlreadyExists)
	domainErr := pkgerrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, storeID.String(), domainErr.Details["store_id"])
	assert.Equal(t, category.ID().String(), domainErr.Details["category_id"])
	categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCategoryHandler_Handle_PublishFailureIsNotReturned(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()
	category := fixtures.NewCategoryBuilder().MustBuild()

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	publisher := new(mocks.MockEventPublisher)

	stores.On("Exists", ctx, storeID).Return(true, nil)
	categories.On("Exists", ctx, storeID, category.ID()).Return(false, nil)
	categories.On("Create", ctx, storeID, category).Return(nil)
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("event bus down"))

	handler := NewCreateCategoryHandler(stores, categories, publisher, nil, zap.NewNop())

	_, err := handler.Handle(ctx, commands.CreateCategoryCommand{StoreID: storeID, Category: category})

	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestCreateCategoryHandler_Handle_DatastoreFailure(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()
	category := fixtures.NewCategoryBuilder().MustBuild()
	storeErr := pkgerrors.NewDatastoreIntegration("categories.create", errors.New("throttled"))

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	metrics := new(mocks.MockMetrics)

	stores.On("Exists", ctx, storeID).Return(true, nil)
	categories.On("Exists", ctx, storeID, category.ID()).Return(false, nil)
	categories.On("Create", ctx, storeID, category).Return(storeErr)
	metrics.On("RecordUseCase", ctx, "CreateCategory", mock.AnythingOfType("time.Duration"), storeErr).Return()

	handler := NewCreateCategoryHandler(stores, categories, nil, metrics, zap.NewNop())

	_, err := handler.Handle(ctx, commands.CreateCategoryCommand{StoreID: storeID, Category: category})

	assert.ErrorIs(t, err, pkgerrors.ErrDatastoreIntegration)
	metrics.AssertExpectations(t)
}

func TestCreateCategoryHandler_Handle_InvalidCommand(t *testing.T) {
	handler := NewCreateCategoryHandler(nil, nil, nil, nil, zap.NewNop())

	_, err := handler.Handle(context.Background(), commands.CreateCategoryCommand{StoreID: valueobjects.NewID()})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsAppError(err))
}

func TestUpdateCategoryHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()
	category := fixtures.NewCategoryBuilder().MustBuild()

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	stores.On("Exists", ctx, storeID).Return(true, nil)
	categories.On("Exists", ctx, storeID, category.ID()).Return(false, nil)

	handler := NewUpdateCategoryHandler(stores, categories, nil, nil, zap.NewNop())

	_, err := handler.Handle(ctx, commands.UpdateCategoryCommand{StoreID: storeID, Category: category})

	assert.ErrorIs(t, err, pkgerrors.ErrCategoryNotFound)
	categories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCategoryHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()
	categoryID := valueobjects.NewID()

	stores := new(mocks.MockStoreRepository)
	categories := new(mocks.MockCategoryRepository)
	publisher := new(mocks.MockEventPublisher)

	stores.On("Exists", ctx, storeID).Return(true, nil)
	categories.On("Exists", ctx, storeID, categoryID).Return(true, nil)
	categories.On("Delete", ctx, storeID, categoryID).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("events.CatalogEvent")).Return(nil)

	handler := NewDeleteCategoryHandler(stores, categories, publisher, nil, zap.NewNop())

	err := handler.Handle(ctx, commands.DeleteCategoryCommand{StoreID: storeID, CategoryID: categoryID})

	assert.NoError(t, err)
	categories.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
