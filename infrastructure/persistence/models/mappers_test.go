package models

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/fixtures"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

func TestOfferRecord_RoundTripKeepsTree(t *testing.T) {
	// Arrange
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()
	burger := fixtures.NewProductBuilder().WithImage("https://cdn.example.com/burger.png").MustBuild()
	fries := fixtures.NewProductBuilder().WithName("Fries").MustBuild()

	sauce := fixtures.NewCustomizationBuilder().WithName("Sauce").MustBuild()
	side := fixtures.NewOptionBuilder().WithProduct(fries).WithPrice("3.50").WithCustomizations(sauce).MustBuild()
	sides := fixtures.NewCustomizationBuilder().WithName("Sides").WithOptions(side).MustBuild()
	offer := fixtures.NewOfferBuilder().WithProduct(burger).WithCustomizations(sides).MustBuild()

	// Act
	record := NewOfferRecord(storeID, categoryID, offer)
	rebuilt, err := record.ToEntity()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, EntityOffer, record.EntityType)
	assert.Equal(t, "cheeseburger combo", record.SearchName)
	assert.Equal(t, []string{burger.ID().String(), fries.ID().String()}, record.ProductIDs)

	assert.True(t, offer.ID().Equals(rebuilt.ID()))
	assert.True(t, offer.Price().Equals(rebuilt.Price()))
	require.NotNil(t, rebuilt.Product())
	assert.Equal(t, burger.Media(), rebuilt.Product().Media())

	require.Len(t, rebuilt.Customizations(), 1)
	gotSides := rebuilt.Customizations()[0]
	assert.Equal(t, "Sides", gotSides.Name().String())
	require.Len(t, gotSides.Options(), 1)
	gotSide := gotSides.Options()[0]
	assert.Equal(t, "3.50", gotSide.Price().String())
	assert.True(t, fries.ID().Equals(gotSide.Product().ID()))
	require.Len(t, gotSide.Customizations(), 1)
	assert.Equal(t, "Sauce", gotSide.Customizations()[0].Name().String())
}

func TestOfferRecord_ToEntityRejectsInvalidTree(t *testing.T) {
	offer := fixtures.NewOfferBuilder().WithCustomizations(fixtures.NewCustomizationBuilder().MustBuild()).MustBuild()
	record := NewOfferRecord(valueobjects.NewID(), valueobjects.NewID(), offer)

	record.Customizations[0].MaxPermitted = 5

	_, err := record.ToEntity()

	assert.ErrorIs(t, err, pkgerrors.ErrCustomizationPermittedExceedsOpts)
}

func TestCategoryRecord_RoundTrip(t *testing.T) {
	category := fixtures.NewCategoryBuilder().
		WithDescription("Grilled to order").
		WithStatus(valueobjects.StatusUnavailable).
		MustBuild()

	record := NewCategoryRecord(valueobjects.NewID(), category)
	rebuilt, err := record.ToEntity()

	require.NoError(t, err)
	assert.Equal(t, category, rebuilt)
}

func TestCategoryRecord_ToEntityRejectsUnknownStatus(t *testing.T) {
	record := NewCategoryRecord(valueobjects.NewID(), fixtures.NewCategoryBuilder().MustBuild())
	record.Status = "ARCHIVED"

	_, err := record.ToEntity()

	assert.ErrorIs(t, err, pkgerrors.ErrStatusInvalid)
}

func TestRecords_AttributeNames(t *testing.T) {
	storeID := valueobjects.NewID()
	record := NewProductRecord(storeID, fixtures.NewProductBuilder().MustBuild())
	record.PK, record.SK = "STORE#"+storeID.String(), "PRODUCT#"+record.ProductID

	item, err := attributevalue.MarshalMap(record)
	require.NoError(t, err)
	assert.Contains(t, item, "PK")
	assert.Contains(t, item, "SK")
	assert.NotContains(t, item, "Description")

	doc, err := bson.Marshal(record)
	require.NoError(t, err)
	var fields bson.M
	require.NoError(t, bson.Unmarshal(doc, &fields))
	assert.NotContains(t, fields, "PK")
	assert.NotContains(t, fields, "pk")
	assert.Equal(t, storeID.String(), fields["store_id"])
}
