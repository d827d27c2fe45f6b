package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/persistence/models"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
)

// CategoryRepository implements ports.CategoryRepository using DynamoDB
type CategoryRepository struct {
	table
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(client Client, tableName string, logger *zap.Logger) ports.CategoryRepository {
	return &CategoryRepository{table: newTable(client, tableName, logger)}
}

func (r *CategoryRepository) Exists(ctx context.Context, storeID, categoryID valueobjects.ID) (bool, error) {
	return r.exists(ctx, "CategoryExists", storePK(storeID), categorySK(categoryID))
}

func (r *CategoryRepository) Create(ctx context.Context, storeID valueobjects.ID, category *entities.Category) error {
	if err := r.put(ctx, "CreateCategory", r.record(storeID, category)); err != nil {
		return err
	}

	r.logger.Debug("Category saved",
		zap.String("storeID", storeID.String()),
		zap.String("categoryID", category.ID().String()),
	)
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, storeID valueobjects.ID, category *entities.Category) error {
	return r.put(ctx, "UpdateCategory", r.record(storeID, category))
}

func (r *CategoryRepository) Delete(ctx context.Context, storeID, categoryID valueobjects.ID) error {
	return r.delete(ctx, "DeleteCategory", storePK(storeID), categorySK(categoryID))
}

func (r *CategoryRepository) GetByID(ctx context.Context, storeID, categoryID valueobjects.ID) (*entities.Category, error) {
	var record models.CategoryRecord
	found, err := r.get(ctx, "GetCategory", storePK(storeID), categorySK(categoryID), &record)
	if err != nil || !found {
		return nil, err
	}
	return record.ToEntity()
}

func (r *CategoryRepository) List(ctx context.Context, storeID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Category], error) {
	items, next, err := r.page(ctx, "ListCategories", storePK(storeID), categoryPrefix, limit, cursor)
	if err != nil {
		return common.Page[*entities.Category]{}, err
	}

	var records []models.CategoryRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return common.Page[*entities.Category]{}, r.fail("ListCategories", err)
	}

	categories := make([]*entities.Category, 0, len(records))
	for _, record := range records {
		category, err := record.ToEntity()
		if err != nil {
			return common.Page[*entities.Category]{}, err
		}
		categories = append(categories, category)
	}

	return common.Page[*entities.Category]{Items: categories, NextCursor: next}, nil
}

func (r *CategoryRepository) Count(ctx context.Context, storeID valueobjects.ID) (int64, error) {
	return r.count(ctx, "CountCategories", storePK(storeID), categoryPrefix, nil)
}

func (r *CategoryRepository) record(storeID valueobjects.ID, category *entities.Category) models.CategoryRecord {
	record := models.NewCategoryRecord(storeID, category)
	record.PK = storePK(storeID)
	record.SK = categorySK(category.ID())
	return record
}
