package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/application/ports"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/persistence/models"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
)

// StoreRepository answers store existence from the stores collection
type StoreRepository struct {
	collection
}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository(db *mongo.Database, logger *zap.Logger) ports.StoreRepository {
	return &StoreRepository{collection: newCollection(db, StoresCollection, logger)}
}

func (r *StoreRepository) Exists(ctx context.Context, storeID valueobjects.ID) (bool, error) {
	return r.exists(ctx, "StoreExists", bson.D{{Key: "_id", Value: storeID.String()}})
}

// CategoryRepository implements ports.CategoryRepository using MongoDB
type CategoryRepository struct {
	collection
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *mongo.Database, logger *zap.Logger) ports.CategoryRepository {
	return &CategoryRepository{collection: newCollection(db, CategoriesCollection, logger)}
}

func categoryFilter(storeID, categoryID valueobjects.ID) bson.D {
	return bson.D{
		{Key: "store_id", Value: storeID.String()},
		{Key: "category_id", Value: categoryID.String()},
	}
}

func (r *CategoryRepository) Exists(ctx context.Context, storeID, categoryID valueobjects.ID) (bool, error) {
	return r.exists(ctx, "CategoryExists", categoryFilter(storeID, categoryID))
}

func (r *CategoryRepository) Create(ctx context.Context, storeID valueobjects.ID, category *entities.Category) error {
	return r.insert(ctx, "CreateCategory", models.NewCategoryRecord(storeID, category))
}

func (r *CategoryRepository) Update(ctx context.Context, storeID valueobjects.ID, category *entities.Category) error {
	return r.replace(ctx, "UpdateCategory", categoryFilter(storeID, category.ID()), models.NewCategoryRecord(storeID, category))
}

func (r *CategoryRepository) Delete(ctx context.Context, storeID, categoryID valueobjects.ID) error {
	return r.delete(ctx, "DeleteCategory", categoryFilter(storeID, categoryID))
}

func (r *CategoryRepository) GetByID(ctx context.Context, storeID, categoryID valueobjects.ID) (*entities.Category, error) {
	var record models.CategoryRecord
	found, err := r.findOne(ctx, "GetCategory", categoryFilter(storeID, categoryID), &record)
	if err != nil || !found {
		return nil, err
	}
	return record.ToEntity()
}

func (r *CategoryRepository) List(ctx context.Context, storeID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Category], error) {
	filter := bson.D{{Key: "store_id", Value: storeID.String()}}
	return findPage(ctx, r.collection, "ListCategories", filter, "category_id", limit, cursor, models.CategoryRecord.ToEntity)
}

func (r *CategoryRepository) Count(ctx context.Context, storeID valueobjects.ID) (int64, error) {
	return r.count(ctx, "CountCategories", bson.D{{Key: "store_id", Value: storeID.String()}})
}

// ProductRepository implements ports.ProductRepository using MongoDB
type ProductRepository struct {
	collection
	offers collection
}

// NewProductRepository creates a new ProductRepository. Usage checks read the
// offers collection.
func NewProductRepository(db *mongo.Database, logger *zap.Logger) ports.ProductRepository {
	return &ProductRepository{
		collection: newCollection(db, ProductsCollection, logger),
		offers:     newCollection(db, OffersCollection, logger),
	}
}

func productFilter(storeID, productID valueobjects.ID) bson.D {
	return bson.D{
		{Key: "store_id", Value: storeID.String()},
		{Key: "product_id", Value: productID.String()},
	}
}

func (r *ProductRepository) Exists(ctx context.Context, storeID, productID valueobjects.ID) (bool, error) {
	return r.exists(ctx, "ProductExists", productFilter(storeID, productID))
}

func (r *ProductRepository) Create(ctx context.Context, storeID valueobjects.ID, product *entities.Product) error {
	return r.insert(ctx, "CreateProduct", models.NewProductRecord(storeID, product))
}

// CreateAll inserts the products inside a transaction, so a failed insert
// leaves none of them behind. Transactions need a replica set deployment.
func (r *ProductRepository) CreateAll(ctx context.Context, storeID valueobjects.ID, products []*entities.Product) error {
	docs := make([]any, 0, len(products))
	for _, product := range products {
		docs = append(docs, models.NewProductRecord(storeID, product))
	}

	session, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return r.fail("CreateProducts", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return r.coll.InsertMany(sc, docs)
	})
	if err != nil {
		return r.fail("CreateProducts", err, zap.Int("count", len(docs)))
	}

	r.logger.Info("Products saved",
		zap.String("storeID", storeID.String()),
		zap.Int("count", len(docs)),
	)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, storeID valueobjects.ID, product *entities.Product) error {
	return r.replace(ctx, "UpdateProduct", productFilter(storeID, product.ID()), models.NewProductRecord(storeID, product))
}

func (r *ProductRepository) Delete(ctx context.Context, storeID, productID valueobjects.ID) error {
	return r.delete(ctx, "DeleteProduct", productFilter(storeID, productID))
}

func (r *ProductRepository) GetByID(ctx context.Context, storeID, productID valueobjects.ID) (*entities.Product, error) {
	var record models.ProductRecord
	found, err := r.findOne(ctx, "GetProduct", productFilter(storeID, productID), &record)
	if err != nil || !found {
		return nil, err
	}
	return record.ToEntity()
}

func (r *ProductRepository) List(ctx context.Context, storeID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Product], error) {
	filter := bson.D{{Key: "store_id", Value: storeID.String()}}
	return findPage(ctx, r.collection, "ListProducts", filter, "product_id", limit, cursor, models.ProductRecord.ToEntity)
}

func (r *ProductRepository) Count(ctx context.Context, storeID valueobjects.ID) (int64, error) {
	return r.count(ctx, "CountProducts", bson.D{{Key: "store_id", Value: storeID.String()}})
}

// GetIfNotExists queries the IDs with $in and returns the missing ones in the
// order they were asked for
func (r *ProductRepository) GetIfNotExists(ctx context.Context, storeID valueobjects.ID, productIDs []valueobjects.ID) ([]valueobjects.ID, error) {
	ids := make([]string, len(productIDs))
	for i, id := range productIDs {
		ids[i] = id.String()
	}

	filter := bson.D{
		{Key: "store_id", Value: storeID.String()},
		{Key: "product_id", Value: bson.D{{Key: "$in", Value: ids}}},
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.D{{Key: "product_id", Value: 1}}))
	if err != nil {
		return nil, r.fail("GetProductsIfNotExists", err)
	}

	var stored []struct {
		ProductID string `bson:"product_id"`
	}
	if err := cur.All(ctx, &stored); err != nil {
		return nil, r.fail("GetProductsIfNotExists", err)
	}

	found := make(map[string]bool, len(stored))
	for _, s := range stored {
		found[s.ProductID] = true
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

// IsInUse looks for one offer of the store whose product_ids hold productID
func (r *ProductRepository) IsInUse(ctx context.Context, storeID, productID valueobjects.ID) (bool, error) {
	return r.offers.exists(ctx, "ProductInUse", bson.D{
		{Key: "store_id", Value: storeID.String()},
		{Key: "product_ids", Value: productID.String()},
	})
}

// OfferRepository implements ports.OfferRepository using MongoDB
type OfferRepository struct {
	collection
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(db *mongo.Database, logger *zap.Logger) ports.OfferRepository {
	return &OfferRepository{collection: newCollection(db, OffersCollection, logger)}
}

func offerFilter(storeID, categoryID, offerID valueobjects.ID) bson.D {
	return bson.D{
		{Key: "store_id", Value: storeID.String()},
		{Key: "category_id", Value: categoryID.String()},
		{Key: "offer_id", Value: offerID.String()},
	}
}

func (r *OfferRepository) Exists(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) (bool, error) {
	return r.exists(ctx, "OfferExists", offerFilter(storeID, categoryID, offerID))
}

func (r *OfferRepository) Create(ctx context.Context, storeID, categoryID valueobjects.ID, offer *entities.Offer) error {
	return r.insert(ctx, "CreateOffer", models.NewOfferRecord(storeID, categoryID, offer))
}

func (r *OfferRepository) Update(ctx context.Context, storeID, categoryID valueobjects.ID, offer *entities.Offer) error {
	return r.replace(ctx, "UpdateOffer", offerFilter(storeID, categoryID, offer.ID()), models.NewOfferRecord(storeID, categoryID, offer))
}

func (r *OfferRepository) Delete(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) error {
	return r.delete(ctx, "DeleteOffer", offerFilter(storeID, categoryID, offerID))
}

func (r *OfferRepository) GetByID(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) (*entities.Offer, error) {
	var record models.OfferRecord
	found, err := r.findOne(ctx, "GetOffer", offerFilter(storeID, categoryID, offerID), &record)
	if err != nil || !found {
		return nil, err
	}
	return record.ToEntity()
}

func (r *OfferRepository) List(ctx context.Context, storeID, categoryID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Offer], error) {
	filter := bson.D{
		{Key: "store_id", Value: storeID.String()},
		{Key: "category_id", Value: categoryID.String()},
	}
	return findPage(ctx, r.collection, "ListOffers", filter, "offer_id", limit, cursor, models.OfferRecord.ToEntity)
}

func (r *OfferRepository) Count(ctx context.Context, storeID, categoryID valueobjects.ID) (int64, error) {
	return r.count(ctx, "CountOffers", bson.D{
		{Key: "store_id", Value: storeID.String()},
		{Key: "category_id", Value: categoryID.String()},
	})
}

// Search matches names with a case-insensitive regex of the escaped query
func (r *OfferRepository) Search(ctx context.Context, storeID valueobjects.ID, query string, limit, offset int) ([]*entities.Offer, int64, error) {
	filter := searchFilter(storeID, query)

	total, err := r.count(ctx, "SearchOffers", filter)
	if err != nil {
		return nil, 0, err
	}
	if int64(offset) >= total {
		return []*entities.Offer{}, total, nil
	}

	records, err := find[models.OfferRecord](ctx, r.collection, "SearchOffers", filter, "offer_id", int64(offset), int64(limit))
	if err != nil {
		return nil, 0, err
	}

	offers := make([]*entities.Offer, 0, len(records))
	for _, record := range records {
		offer, err := record.ToEntity()
		if err != nil {
			return nil, 0, err
		}
		offers = append(offers, offer)
	}
	return offers, total, nil
}

func searchFilter(storeID valueobjects.ID, query string) bson.D {
	return bson.D{
		{Key: "store_id", Value: storeID.String()},
		{Key: "name", Value: primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}},
	}
}
