// Package dynamodb implements the catalog repositories on a single DynamoDB
// table. Every item of a store lives under the partition key STORE#<storeID>.
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// Client is the subset of the DynamoDB API used by the repositories
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Service limits of the batch APIs
const (
	batchGetSize       = 100
	maxTransactionSize = 100
	maxBatchRounds     = 5
)

// Sort key layout
const (
	storeMetadataSK = "METADATA"
	categoryPrefix  = "CATEGORY#"
	productPrefix   = "PRODUCT#"
	offerPrefix     = "OFFER#"
)

func storePK(storeID valueobjects.ID) string {
	return fmt.Sprintf("STORE#%s", storeID.String())
}

func categorySK(categoryID valueobjects.ID) string {
	return categoryPrefix + categoryID.String()
}

func productSK(productID valueobjects.ID) string {
	return productPrefix + productID.String()
}

func offerCategoryPrefix(categoryID valueobjects.ID) string {
	return fmt.Sprintf("%s%s#", offerPrefix, categoryID.String())
}

func offerSK(categoryID, offerID valueobjects.ID) string {
	return offerCategoryPrefix(categoryID) + offerID.String()
}

func itemKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}

// table holds what every repository needs to talk to the catalog table
type table struct {
	client    Client
	tableName string
	logger    *zap.Logger
}

func newTable(client Client, tableName string, logger *zap.Logger) table {
	return table{client: client, tableName: tableName, logger: logger}
}

// fail logs a client failure and wraps it as a datastore integration error
func (t table) fail(operation string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("operation", operation), zap.Error(err))

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.String("errorCode", apiErr.ErrorCode()))
	}

	t.logger.Error("DynamoDB operation failed", fields...)
	return pkgerrors.NewDatastoreIntegration(operation, err)
}

func (t table) exists(ctx context.Context, operation, pk, sk string) (bool, error) {
	result, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(t.tableName),
		Key:                  itemKey(pk, sk),
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		return false, t.fail(operation, err, zap.String("PK", pk), zap.String("SK", sk))
	}
	return result.Item != nil, nil
}

// get loads one item into out and reports whether it was found
func (t table) get(ctx context.Context, operation, pk, sk string, out any) (bool, error) {
	result, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(t.tableName),
		Key:       itemKey(pk, sk),
	})
	if err != nil {
		return false, t.fail(operation, err, zap.String("PK", pk), zap.String("SK", sk))
	}
	if result.Item == nil {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return false, t.fail(operation, err, zap.String("PK", pk), zap.String("SK", sk))
	}
	return true, nil
}

func (t table) put(ctx context.Context, operation string, record any) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return t.fail(operation, err)
	}

	if _, err := t.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      item,
	}); err != nil {
		return t.fail(operation, err)
	}
	return nil
}

func (t table) delete(ctx context.Context, operation, pk, sk string) error {
	if _, err := t.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.tableName),
		Key:       itemKey(pk, sk),
	}); err != nil {
		return t.fail(operation, err, zap.String("PK", pk), zap.String("SK", sk))
	}
	return nil
}

func prefixKey(pk, prefix string) expression.KeyConditionBuilder {
	return expression.Key("PK").Equal(expression.Value(pk)).
		And(expression.Key("SK").BeginsWith(prefix))
}

// page runs one query page starting after cursor and returns the raw items
// together with the cursor of the following page
func (t table) page(ctx context.Context, operation, pk, prefix string, limit int, cursor string) ([]map[string]types.AttributeValue, string, error) {
	start, err := decodeCursor(cursor, pk, prefix)
	if err != nil {
		return nil, "", err
	}

	expr, err := expression.NewBuilder().WithKeyCondition(prefixKey(pk, prefix)).Build()
	if err != nil {
		return nil, "", t.fail(operation, err)
	}

	result, err := t.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(t.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ExclusiveStartKey:         start,
		Limit:                     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, "", t.fail(operation, err, zap.String("PK", pk))
	}

	next, err := encodeCursor(result.LastEvaluatedKey)
	if err != nil {
		return nil, "", t.fail(operation, err)
	}
	return result.Items, next, nil
}

// count sums Select=COUNT over every page of the query
func (t table) count(ctx context.Context, operation, pk, prefix string, filter *expression.ConditionBuilder) (int64, error) {
	builder := expression.NewBuilder().WithKeyCondition(prefixKey(pk, prefix))
	if filter != nil {
		builder = builder.WithFilter(*filter)
	}
	expr, err := builder.Build()
	if err != nil {
		return 0, t.fail(operation, err)
	}

	var (
		total int64
		start map[string]types.AttributeValue
	)
	for {
		result, err := t.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(t.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         start,
			Select:                    types.SelectCount,
		})
		if err != nil {
			return 0, t.fail(operation, err, zap.String("PK", pk))
		}

		total += int64(result.Count)
		if len(result.LastEvaluatedKey) == 0 {
			return total, nil
		}
		start = result.LastEvaluatedKey
	}
}

// scan collects every item of the query that passes filter
func (t table) scan(ctx context.Context, operation, pk, prefix string, filter expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(prefixKey(pk, prefix)).
		WithFilter(filter).
		Build()
	if err != nil {
		return nil, t.fail(operation, err)
	}

	var (
		items []map[string]types.AttributeValue
		start map[string]types.AttributeValue
	)
	for {
		result, err := t.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(t.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         start,
		})
		if err != nil {
			return nil, t.fail(operation, err, zap.String("PK", pk))
		}

		items = append(items, result.Items...)
		if len(result.LastEvaluatedKey) == 0 {
			return items, nil
		}
		start = result.LastEvaluatedKey
	}
}

// putAll stores items in a single transaction, so either all of them are
// written or none is
func (t table) putAll(ctx context.Context, operation string, items []map[string]types.AttributeValue) error {
	if len(items) == 0 {
		return nil
	}
	if len(items) > maxTransactionSize {
		return t.fail(operation, fmt.Errorf("%d items exceed the transaction limit of %d", len(items), maxTransactionSize))
	}

	writes := make([]types.TransactWriteItem, 0, len(items))
	for _, item := range items {
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(t.tableName), Item: item},
		})
	}

	if _, err := t.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	}); err != nil {
		return t.fail(operation, err, zap.Int("items", len(items)))
	}
	return nil
}

// batchGet loads the given keys in chunks of 100, projecting only the
// listed attributes
func (t table) batchGet(ctx context.Context, operation string, keys []map[string]types.AttributeValue, projection expression.ProjectionBuilder) ([]map[string]types.AttributeValue, error) {
	expr, err := expression.NewBuilder().WithProjection(projection).Build()
	if err != nil {
		return nil, t.fail(operation, err)
	}

	var items []map[string]types.AttributeValue
	for offset := 0; offset < len(keys); offset += batchGetSize {
		end := min(offset+batchGetSize, len(keys))
		pending := keys[offset:end]

		for round := 0; len(pending) > 0; round++ {
			if round == maxBatchRounds {
				return nil, t.fail(operation, fmt.Errorf("%d keys left unprocessed", len(pending)))
			}
			if round > 0 {
				if err := backoff(ctx, round); err != nil {
					return nil, t.fail(operation, err)
				}
			}

			result, err := t.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					t.tableName: {
						Keys:                     pending,
						ProjectionExpression:     expr.Projection(),
						ExpressionAttributeNames: expr.Names(),
					},
				},
			})
			if err != nil {
				return nil, t.fail(operation, err, zap.Int("batchSize", len(pending)))
			}

			items = append(items, result.Responses[t.tableName]...)
			pending = result.UnprocessedKeys[t.tableName].Keys
		}
	}
	return items, nil
}

func backoff(ctx context.Context, round int) error {
	wait := time.Duration(round*round) * 50 * time.Millisecond
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// encodeCursor turns a LastEvaluatedKey into an opaque cursor. Only string
// attributes are kept, which covers the PK/SK key schema of the table.
func encodeCursor(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}

	flat := make(map[string]any, len(key))
	for name, value := range key {
		if s, ok := value.(*types.AttributeValueMemberS); ok {
			flat[name] = s.Value
		}
	}
	return common.EncodeKeyCursor(flat)
}

// decodeCursor rebuilds an ExclusiveStartKey and rejects cursors that were
// issued for another partition or item type
func decodeCursor(cursor, pk, prefix string) (map[string]types.AttributeValue, error) {
	flat, err := common.DecodeKeyCursor(cursor)
	if err != nil || flat == nil {
		return nil, err
	}
	if flat["PK"] == "" || flat["SK"] == "" {
		return nil, pkgerrors.NewInvalidCursor(fmt.Errorf("cursor is missing key attributes"))
	}
	if flat["PK"] != pk || !strings.HasPrefix(flat["SK"], prefix) {
		return nil, pkgerrors.NewInvalidCursor(fmt.Errorf("cursor does not belong to this listing"))
	}

	key := make(map[string]types.AttributeValue, len(flat))
	for name, value := range flat {
		key[name] = &types.AttributeValueMemberS{Value: value}
	}
	return key, nil
}
