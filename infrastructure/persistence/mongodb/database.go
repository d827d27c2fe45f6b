// Package mongodb implements the catalog repositories on MongoDB. Each entity
// kind has its own collection and offers embed their customization tree.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// Collection names
const (
	StoresCollection     = "stores"
	CategoriesCollection = "categories"
	ProductsCollection   = "products"
	OffersCollection     = "offers"
)

const connectTimeout = 10 * time.Second

// Connect opens a client, checks it with a ping and returns the database
func Connect(ctx context.Context, uri, database string, logger *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("database", database))
	return client, client.Database(database), nil
}

// EnsureIndexes creates the unique keys every repository relies on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]bson.D{
		CategoriesCollection: {{Key: "store_id", Value: 1}, {Key: "category_id", Value: 1}},
		ProductsCollection:   {{Key: "store_id", Value: 1}, {Key: "product_id", Value: 1}},
		OffersCollection:     {{Key: "store_id", Value: 1}, {Key: "category_id", Value: 1}, {Key: "offer_id", Value: 1}},
	}

	for name, keys := range indexes {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", name, err)
		}
	}

	if _, err := db.Collection(OffersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "store_id", Value: 1}, {Key: "product_ids", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", OffersCollection, err)
	}
	return nil
}

// collection holds what every repository needs to talk to one collection
type collection struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func newCollection(db *mongo.Database, name string, logger *zap.Logger) collection {
	return collection{coll: db.Collection(name), logger: logger}
}

// fail logs a driver failure and wraps it as a datastore integration error
func (c collection) fail(operation string, err error, fields ...zap.Field) error {
	fields = append(fields,
		zap.String("operation", operation),
		zap.String("collection", c.coll.Name()),
		zap.Error(err),
	)
	c.logger.Error("MongoDB operation failed", fields...)
	return pkgerrors.NewDatastoreIntegration(operation, err)
}

func (c collection) exists(ctx context.Context, operation string, filter bson.D) (bool, error) {
	n, err := c.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, c.fail(operation, err)
	}
	return n > 0, nil
}

// findOne decodes the matching document into out and reports whether one was found
func (c collection) findOne(ctx context.Context, operation string, filter bson.D, out any) (bool, error) {
	err := c.coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, c.fail(operation, err)
	}
	return true, nil
}

func (c collection) insert(ctx context.Context, operation string, doc any) error {
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return c.fail(operation, err)
	}
	return nil
}

// replace overwrites the matching document, inserting it when missing
func (c collection) replace(ctx context.Context, operation string, filter bson.D, doc any) error {
	if _, err := c.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true)); err != nil {
		return c.fail(operation, err)
	}
	return nil
}

func (c collection) delete(ctx context.Context, operation string, filter bson.D) error {
	if _, err := c.coll.DeleteOne(ctx, filter); err != nil {
		return c.fail(operation, err)
	}
	return nil
}

func (c collection) count(ctx context.Context, operation string, filter bson.D) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, c.fail(operation, err)
	}
	return n, nil
}

// find decodes every document of one skip/limit window sorted on sortField
func find[R any](ctx context.Context, c collection, operation string, filter bson.D, sortField string, skip, limit int64) ([]R, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, c.fail(operation, err)
	}

	records := make([]R, 0, limit)
	if err := cur.All(ctx, &records); err != nil {
		return nil, c.fail(operation, err)
	}
	return records, nil
}

// findPage reads the page addressed by a positional cursor. The next cursor is
// derived from the documents remaining from this page on.
func findPage[R any, E any](
	ctx context.Context,
	c collection,
	operation string,
	filter bson.D,
	sortField string,
	limit int,
	cursor string,
	toEntity func(R) (E, error),
) (common.Page[E], error) {
	page, err := common.DecodePositionalCursor(cursor)
	if err != nil {
		return common.Page[E]{}, err
	}
	skip := page * int64(limit)

	records, err := find[R](ctx, c, operation, filter, sortField, skip, int64(limit))
	if err != nil {
		return common.Page[E]{}, err
	}

	total, err := c.count(ctx, operation, filter)
	if err != nil {
		return common.Page[E]{}, err
	}

	next, _, err := common.NextCursor(total-skip, int64(limit), cursor)
	if err != nil {
		return common.Page[E]{}, err
	}

	items := make([]E, 0, len(records))
	for _, record := range records {
		item, err := toEntity(record)
		if err != nil {
			return common.Page[E]{}, err
		}
		items = append(items, item)
	}
	return common.Page[E]{Items: items, NextCursor: next}, nil
}
