package dynamodb

import (
	"context"
	"strings"

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

// OfferRepository implements ports.OfferRepository using DynamoDB. An offer
// is one item holding its whole customization tree, sorted under
// OFFER#<categoryID>#<offerID>.
type OfferRepository struct {
	table
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(client Client, tableName string, logger *zap.Logger) ports.OfferRepository {
	return &OfferRepository{table: newTable(client, tableName, logger)}
}

func (r *OfferRepository) Exists(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) (bool, error) {
	return r.exists(ctx, "OfferExists", storePK(storeID), offerSK(categoryID, offerID))
}

func (r *OfferRepository) Create(ctx context.Context, storeID, categoryID valueobjects.ID, offer *entities.Offer) error {
	if err := r.put(ctx, "CreateOffer", r.record(storeID, categoryID, offer)); err != nil {
		return err
	}

	r.logger.Debug("Offer saved",
		zap.String("storeID", storeID.String()),
		zap.String("categoryID", categoryID.String()),
		zap.String("offerID", offer.ID().String()),
	)
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, storeID, categoryID valueobjects.ID, offer *entities.Offer) error {
	return r.put(ctx, "UpdateOffer", r.record(storeID, categoryID, offer))
}

func (r *OfferRepository) Delete(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) error {
	return r.delete(ctx, "DeleteOffer", storePK(storeID), offerSK(categoryID, offerID))
}

func (r *OfferRepository) GetByID(ctx context.Context, storeID, categoryID, offerID valueobjects.ID) (*entities.Offer, error) {
	var record models.OfferRecord
	found, err := r.get(ctx, "GetOffer", storePK(storeID), offerSK(categoryID, offerID), &record)
	if err != nil || !found {
		return nil, err
	}
	return record.ToEntity()
}

func (r *OfferRepository) List(ctx context.Context, storeID, categoryID valueobjects.ID, limit int, cursor string) (common.Page[*entities.Offer], error) {
	items, next, err := r.page(ctx, "ListOffers", storePK(storeID), offerCategoryPrefix(categoryID), limit, cursor)
	if err != nil {
		return common.Page[*entities.Offer]{}, err
	}

	offers, err := r.offers("ListOffers", items)
	if err != nil {
		return common.Page[*entities.Offer]{}, err
	}
	return common.Page[*entities.Offer]{Items: offers, NextCursor: next}, nil
}

func (r *OfferRepository) Count(ctx context.Context, storeID, categoryID valueobjects.ID) (int64, error) {
	return r.count(ctx, "CountOffers", storePK(storeID), offerCategoryPrefix(categoryID), nil)
}

// Search filters every offer of the store on the lower-cased name and
// returns the [offset, offset+limit) window of the matches
func (r *OfferRepository) Search(ctx context.Context, storeID valueobjects.ID, query string, limit, offset int) ([]*entities.Offer, int64, error) {
	filter := expression.Name("SearchName").Contains(strings.ToLower(query))
	items, err := r.scan(ctx, "SearchOffers", storePK(storeID), offerPrefix, filter)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(items))
	if offset >= len(items) {
		return []*entities.Offer{}, total, nil
	}
	end := min(offset+limit, len(items))

	offers, err := r.offers("SearchOffers", items[offset:end])
	if err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

func (r *OfferRepository) offers(operation string, items []map[string]types.AttributeValue) ([]*entities.Offer, error) {
	var records []models.OfferRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, r.fail(operation, err)
	}

	offers := make([]*entities.Offer, 0, len(records))
	for _, record := range records {
		offer, err := record.ToEntity()
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func (r *OfferRepository) record(storeID, categoryID valueobjects.ID, offer *entities.Offer) models.OfferRecord {
	record := models.NewOfferRecord(storeID, categoryID, offer)
	record.PK = storePK(storeID)
	record.SK = offerSK(categoryID, offer.ID())
	return record
}
