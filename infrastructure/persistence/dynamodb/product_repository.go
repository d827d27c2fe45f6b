package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/persistence/models"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
)

// ProductRepository implements ports.ProductRepository using DynamoDB
type ProductRepository struct {
	table
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(client Client, tableName string, logger *zap.Logger) ports.ProductRepository {
	return &ProductRepository{table: newTable(client, tableName, logger)}
}

func (r *ProductRepository) Exists(ctx context.Context, storeID, productID valueobjects.ID) (bool, error) {
	return r.exists(ctx, "ProductExists", storePK(storeID), productSK(productID))
}

func (r *ProductRepository) Create(ctx context.Context, storeID valueobjects.ID, product *entities.Product) error {
	return r.put(ctx, "CreateProduct", r.record(storeID, product))
}

// CreateAll writes the products in one TransactWriteItems call
func (r *ProductRepository) CreateAll(ctx context.Context, storeID valueobjects.ID, products []*entities.Product) error {
	items := make([]map[string]types.AttributeValue, 0, len(products))
	for _, product := range products {
		item, err := attributevalue.MarshalMap(r.record(storeID, product))
		if err != nil {
			return r.fail("CreateProducts", err)
		}
		items = append(items, item)
	}

	if err := r.putAll(ctx, "CreateProducts", items); err != nil {
		return err
	}

	r.logger.Info("Products saved",
		zap.String("storeID", storeID.String()),
		zap.Int("count", len(products)),
	)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, storeID valueobjects.ID, product *entities.Product) error {
	return r.put(ctx, "UpdateProduct", r.record(storeID, product))
}

func (r *ProductRepository) Delete(ctx context.Context, storeID, productID valueobjects.ID) error {
	return r.delete(ctx, "DeleteProduct", storePK(storeID), productSK(productID))
}

func (r *ProductRepository) GetByID(ctx context.Context, storeID, productID valueobjects.ID) (*entities.Product, error) {
	var record models.ProductRecord
	found, err := r.get(ctx, "GetProduct", storePK(storeID), productSK(productID), &record)
	if err != nil || !found {
		return nil, err
	}
	return record.ToEntity()
}

func (r *ProductRepository) List(ctx context.Context, storeID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Product], error) {
	items, next, err := r.page(ctx, "ListProducts", storePK(storeID), productPrefix, limit, cursor)
	if err != nil {
		return common.Page[*entities.Product]{}, err
	}

	var records []models.ProductRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return common.Page[*entities.Product]{}, r.fail("ListProducts", err)
	}

	products := make([]*entities.Product, 0, len(records))
	for _, record := range records {
		product, err := record.ToEntity()
		if err != nil {
			return common.Page[*entities.Product]{}, err
		}
		products = append(products, product)
	}

	return common.Page[*entities.Product]{Items: products, NextCursor: next}, nil
}

func (r *ProductRepository) Count(ctx context.Context, storeID valueobjects.ID) (int64, error) {
	return r.count(ctx, "CountProducts", storePK(storeID), productPrefix, nil)
}

// GetIfNotExists looks the IDs up with BatchGetItem and returns the missing
// ones in the order they were asked for
func (r *ProductRepository) GetIfNotExists(ctx context.Context, storeID valueobjects.ID, productIDs []valueobjects.ID) ([]valueobjects.ID, error) {
	seen := make(map[valueobjects.ID]bool, len(productIDs))
	keys := make([]map[string]types.AttributeValue, 0, len(productIDs))
	for _, id := range productIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, itemKey(storePK(storeID), productSK(id)))
	}

	items, err := r.batchGet(ctx, "GetProductsIfNotExists", keys, expression.NamesList(expression.Name("ProductID")))
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(items))
	for _, item := range items {
		if id, ok := item["ProductID"].(*types.AttributeValueMemberS); ok {
			found[id.Value] = true
		}
	}

	var missing []valueobjects.ID
	for _, id := range productIDs {
		if !found[id.String()] {
			missing = append(missing, id)
			found[id.String()] = true
		}
	}
	return missing, nil
}

// IsInUse counts the offers of the store whose ProductIDs contain productID
func (r *ProductRepository) IsInUse(ctx context.Context, storeID, productID valueobjects.ID) (bool, error) {
	filter := expression.Name("ProductIDs").Contains(productID.String())
	n, err := r.count(ctx, "ProductInUse", storePK(storeID), offerPrefix, &filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductRepository) record(storeID valueobjects.ID, product *entities.Product) models.ProductRecord {
	record := models.NewProductRecord(storeID, product)
	record.PK = storePK(storeID)
	record.SK = productSK(product.ID())
	return record
}
