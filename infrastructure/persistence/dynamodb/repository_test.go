package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/fixtures"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/persistence/models"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

const testTable = "catalog-test"

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.GetItemOutput)
	return out, args.Error(1)
}

func (m *mockClient) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.PutItemOutput)
	return out, args.Error(1)
}

func (m *mockClient) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.DeleteItemOutput)
	return out, args.Error(1)
}

func (m *mockClient) Query(ctx context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.QueryOutput)
	return out, args.Error(1)
}

func (m *mockClient) BatchGetItem(ctx context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.BatchGetItemOutput)
	return out, args.Error(1)
}

func (m *mockClient) TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dynamodb.TransactWriteItemsOutput)
	return out, args.Error(1)
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func TestCategoryRepository_GetByIDMissing(t *testing.T) {
	ctx := context.Background()
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()

	client := new(mockClient)
	client.On("GetItem", ctx, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
		return stringAttr(in.Key, "PK") == "STORE#"+storeID.String() &&
			stringAttr(in.Key, "SK") == "CATEGORY#"+categoryID.String()
	})).Return(&dynamodb.GetItemOutput{}, nil)

	repo := NewCategoryRepository(client, testTable, zap.NewNop())

	got, err := repo.GetByID(ctx, storeID, categoryID)

	require.NoError(t, err)
	assert.Nil(t, got)
	client.AssertExpectations(t)
}

func TestCategoryRepository_CreateWritesKeys(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()
	category := fixtures.NewCategoryBuilder().MustBuild()

	client := new(mockClient)
	client.On("PutItem", ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return *in.TableName == testTable &&
			stringAttr(in.Item, "PK") == "STORE#"+storeID.String() &&
			stringAttr(in.Item, "SK") == "CATEGORY#"+category.ID().String() &&
			stringAttr(in.Item, "EntityType") == models.EntityCategory
	})).Return(&dynamodb.PutItemOutput{}, nil)

	repo := NewCategoryRepository(client, testTable, zap.NewNop())

	require.NoError(t, repo.Create(ctx, storeID, category))
	client.AssertExpectations(t)
}

func TestCategoryRepository_ListCursorRoundTrip(t *testing.T) {
	// Arrange
	ctx := context.Background()
	storeID := valueobjects.NewID()
	category := fixtures.NewCategoryBuilder().MustBuild()

	record := models.NewCategoryRecord(storeID, category)
	record.PK, record.SK = storePK(storeID), categorySK(category.ID())
	item, err := attributevalue.MarshalMap(record)
	require.NoError(t, err)

	lastKey := itemKey(record.PK, record.SK)

	client := new(mockClient)
	client.On("Query", ctx, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return in.ExclusiveStartKey == nil && *in.Limit == 1
	})).Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}, LastEvaluatedKey: lastKey}, nil).Once()
	client.On("Query", ctx, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return stringAttr(in.ExclusiveStartKey, "SK") == record.SK
	})).Return(&dynamodb.QueryOutput{}, nil).Once()

	repo := NewCategoryRepository(client, testTable, zap.NewNop())

	// Act
	first, err := repo.List(ctx, storeID, 1, "")
	require.NoError(t, err)
	second, err := repo.List(ctx, storeID, 1, first.NextCursor)
	require.NoError(t, err)

	// Assert
	require.Len(t, first.Items, 1)
	assert.Equal(t, category, first.Items[0])
	assert.True(t, first.HasMore())
	assert.Empty(t, second.Items)
	assert.False(t, second.HasMore())
	client.AssertExpectations(t)
}

func TestCategoryRepository_ListInvalidCursor(t *testing.T) {
	client := new(mockClient)
	repo := NewCategoryRepository(client, testTable, zap.NewNop())

	_, err := repo.List(context.Background(), valueobjects.NewID(), 10, "not base64!")

	assert.ErrorIs(t, err, pkgerrors.ErrInvalidCursor)
	client.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
}

func TestCategoryRepository_ListRejectsForeignCursor(t *testing.T) {
	storeID := valueobjects.NewID()
	otherStore := valueobjects.NewID()

	tests := []struct {
		name string
		key  map[string]any
	}{
		{
			name: "cursor from another store",
			key:  map[string]any{"PK": storePK(otherStore), "SK": categorySK(valueobjects.NewID())},
		},
		{
			name: "cursor from another item type",
			key:  map[string]any{"PK": storePK(storeID), "SK": productSK(valueobjects.NewID())},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockClient)
			repo := NewCategoryRepository(client, testTable, zap.NewNop())

			cursor, err := common.EncodeKeyCursor(tt.key)
			require.NoError(t, err)

			_, err = repo.List(context.Background(), storeID, 10, cursor)

			assert.ErrorIs(t, err, pkgerrors.ErrInvalidCursor)
			client.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
		})
	}
}

func TestCategoryRepository_CountSumsPages(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()

	client := new(mockClient)
	client.On("Query", ctx, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return in.Select == types.SelectCount && in.ExclusiveStartKey == nil
	})).Return(&dynamodb.QueryOutput{Count: 3, LastEvaluatedKey: itemKey("STORE#x", "CATEGORY#y")}, nil).Once()
	client.On("Query", ctx, mock.AnythingOfType("*dynamodb.QueryInput")).Return(&dynamodb.QueryOutput{Count: 2}, nil).Once()

	repo := NewCategoryRepository(client, testTable, zap.NewNop())

	n, err := repo.Count(ctx, storeID)

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestStoreRepository_ClientFailure(t *testing.T) {
	ctx := context.Background()

	client := new(mockClient)
	client.On("GetItem", ctx, mock.Anything).Return(nil, errors.New("connection reset"))

	repo := NewStoreRepository(client, testTable, zap.NewNop())

	_, err := repo.Exists(ctx, valueobjects.NewID())

	assert.ErrorIs(t, err, pkgerrors.ErrDatastoreIntegration)
}

func TestProductRepository_GetIfNotExists(t *testing.T) {
	// Arrange
	ctx := context.Background()
	storeID := valueobjects.NewID()
	stored, missing := valueobjects.NewID(), valueobjects.NewID()

	client := new(mockClient)
	client.On("BatchGetItem", ctx, mock.MatchedBy(func(in *dynamodb.BatchGetItemInput) bool {
		return len(in.RequestItems[testTable].Keys) == 2
	})).Return(&dynamodb.BatchGetItemOutput{
		Responses: map[string][]map[string]types.AttributeValue{
			testTable: {{"ProductID": &types.AttributeValueMemberS{Value: stored.String()}}},
		},
	}, nil).Once()

	repo := NewProductRepository(client, testTable, zap.NewNop())

	// Act
	got, err := repo.GetIfNotExists(ctx, storeID, []valueobjects.ID{missing, stored, missing})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []valueobjects.ID{missing}, got)
	client.AssertExpectations(t)
}

func TestProductRepository_CreateAllWritesOneTransaction(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()

	products := make([]*entities.Product, 30)
	for i := range products {
		products[i] = fixtures.NewProductBuilder().MustBuild()
	}

	client := new(mockClient)
	client.On("TransactWriteItems", ctx, mock.MatchedBy(func(in *dynamodb.TransactWriteItemsInput) bool {
		if len(in.TransactItems) != len(products) {
			return false
		}
		for i, item := range in.TransactItems {
			if item.Put == nil || stringAttr(item.Put.Item, "SK") != productSK(products[i].ID()) {
				return false
			}
		}
		return true
	})).Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

	repo := NewProductRepository(client, testTable, zap.NewNop())

	require.NoError(t, repo.CreateAll(ctx, storeID, products))
	client.AssertExpectations(t)
}

func TestProductRepository_CreateAllFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	storeID := valueobjects.NewID()

	products := make([]*entities.Product, 30)
	for i := range products {
		products[i] = fixtures.NewProductBuilder().MustBuild()
	}

	client := new(mockClient)
	client.On("TransactWriteItems", ctx, mock.Anything).
		Return(nil, &types.TransactionCanceledException{Message: aws.String("throttled")}).Once()

	repo := NewProductRepository(client, testTable, zap.NewNop())

	err := repo.CreateAll(ctx, storeID, products)

	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrDatastoreIntegration)
	// a single all-or-nothing call, never a follow-up chunk
	client.AssertNumberOfCalls(t, "TransactWriteItems", 1)
	client.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
}

func TestProductRepository_CreateAllRejectsOversizedTransaction(t *testing.T) {
	products := make([]*entities.Product, maxTransactionSize+1)
	for i := range products {
		products[i] = fixtures.NewProductBuilder().MustBuild()
	}

	client := new(mockClient)
	repo := NewProductRepository(client, testTable, zap.NewNop())

	err := repo.CreateAll(context.Background(), valueobjects.NewID(), products)

	assert.ErrorIs(t, err, pkgerrors.ErrDatastoreIntegration)
	client.AssertNotCalled(t, "TransactWriteItems", mock.Anything, mock.Anything)
}

func TestProductRepository_IsInUse(t *testing.T) {
	ctx := context.Background()
	storeID, productID := valueobjects.NewID(), valueobjects.NewID()

	client := new(mockClient)
	client.On("Query", ctx, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return in.FilterExpression != nil && in.Select == types.SelectCount
	})).Return(&dynamodb.QueryOutput{Count: 1}, nil)

	repo := NewProductRepository(client, testTable, zap.NewNop())

	inUse, err := repo.IsInUse(ctx, storeID, productID)

	require.NoError(t, err)
	assert.True(t, inUse)
}

func TestOfferRepository_SearchWindow(t *testing.T) {
	// Arrange
	ctx := context.Background()
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()

	items := make([]map[string]types.AttributeValue, 0, 3)
	names := []string{"Burger One", "Burger Two", "Burger Three"}
	for _, name := range names {
		offer := fixtures.NewOfferBuilder().WithName(name).MustBuild()
		item, err := attributevalue.MarshalMap(models.NewOfferRecord(storeID, categoryID, offer))
		require.NoError(t, err)
		items = append(items, item)
	}

	client := new(mockClient)
	client.On("Query", ctx, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return in.FilterExpression != nil
	})).Return(&dynamodb.QueryOutput{Items: items}, nil)

	repo := NewOfferRepository(client, testTable, zap.NewNop())

	// Act
	got, total, err := repo.Search(ctx, storeID, "BURGER", 1, 1)
	require.NoError(t, err)
	past, _, err := repo.Search(ctx, storeID, "burger", 10, 5)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 1)
	assert.Equal(t, "Burger Two", got[0].Name().String())
	assert.Empty(t, past)
}
