package queries

import (
	"fmt"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// GetCategoryQuery represents a query to get a single category
type GetCategoryQuery struct {
	StoreID    valueobjects.ID
	CategoryID valueobjects.ID
}

// Validate validates the GetCategoryQuery
func (q GetCategoryQuery) Validate() error {
	if err := requireID("store ID", q.StoreID); err != nil {
		return err
	}
	return requireID("category ID", q.CategoryID)
}

// ListCategoriesQuery lists the categories of a store
type ListCategoriesQuery struct {
	StoreID valueobjects.ID
	Limit   int
	Cursor  string
}

// Validate validates the ListCategoriesQuery
func (q ListCategoriesQuery) Validate() error {
	if err := requireID("store ID", q.StoreID); err != nil {
		return err
	}
	return validateLimit(q.Limit)
}

// CountCategoriesQuery counts the categories of a store
type CountCategoriesQuery struct {
	StoreID valueobjects.ID
}

// Validate validates the CountCategoriesQuery
func (q CountCategoriesQuery) Validate() error {
	return requireID("store ID", q.StoreID)
}

// GetProductQuery represents a query to get a single product
type GetProductQuery struct {
	StoreID   valueobjects.ID
	ProductID valueobjects.ID
}

// Validate validates the GetProductQuery
func (q GetProductQuery) Validate() error {
	if err := requireID("store ID", q.StoreID); err != nil {
		return err
	}
	return requireID("product ID", q.ProductID)
}

// ListProductsQuery lists the products of a store
type ListProductsQuery struct {
	StoreID valueobjects.ID
	Limit   int
	Cursor  string
}

// Validate validates the ListProductsQuery
func (q ListProductsQuery) Validate() error {
	if err := requireID("store ID", q.StoreID); err != nil {
		return err
	}
	return validateLimit(q.Limit)
}

// CountProductsQuery counts the products of a store
type CountProductsQuery struct {
	StoreID valueobjects.ID
}

// Validate validates the CountProductsQuery
func (q CountProductsQuery) Validate() error {
	return requireID("store ID", q.StoreID)
}

// GetOfferQuery represents a query to get a single offer
type GetOfferQuery struct {
	StoreID    valueobjects.ID
	CategoryID valueobjects.ID
	OfferID    valueobjects.ID
}

// Validate validates the GetOfferQuery
func (q GetOfferQuery) Validate() error {
	if err := requireID("store ID", q.StoreID); err != nil {
		return err
	}
	if err := requireID("category ID", q.CategoryID); err != nil {
		return err
	}
	return requireID("offer ID", q.OfferID)
}

// ListOffersQuery lists the offers of a store category
type ListOffersQuery struct {
	StoreID    valueobjects.ID
	CategoryID valueobjects.ID
	Limit      int
	Cursor     string
}

// Validate validates the ListOffersQuery
func (q ListOffersQuery) Validate() error {
	if err := requireID("store ID", q.StoreID); err != nil {
		return err
	}
	if err := requireID("category ID", q.CategoryID); err != nil {
		return err
	}
	return validateLimit(q.Limit)
}

// CountOffersQuery counts the offers of a store category
type CountOffersQuery struct {
	StoreID    valueobjects.ID
	CategoryID valueobjects.ID
}

// Validate validates the CountOffersQuery
func (q CountOffersQuery) Validate() error {
	if err := requireID("store ID", q.StoreID); err != nil {
		return err
	}
	return requireID("category ID", q.CategoryID)
}

// SearchOffersQuery looks up offers of a store by name
type SearchOffersQuery struct {
	StoreID valueobjects.ID
	Query   string
	Limit   int
	Offset  int
}

// Validate validates the SearchOffersQuery
func (q SearchOffersQuery) Validate() error {
	if err := requireID("store ID", q.StoreID); err != nil {
		return err
	}
	if err := validateLimit(q.Limit); err != nil {
		return err
	}
	if q.Offset < 0 {
		return pkgerrors.NewInvalidPagination("offset", "must not be negative")
	}
	return nil
}

// SearchOffersResult is one window of search matches
type SearchOffersResult struct {
	Offers []*entities.Offer
	Total  int64
}

func requireID(field string, id valueobjects.ID) error {
	if id.IsZero() {
		return pkgerrors.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	return nil
}

func validateLimit(limit int) error {
	if limit < 0 {
		return pkgerrors.NewInvalidPagination("limit", "must not be negative")
	}
	if limit > common.MaxPageSize {
		return pkgerrors.NewInvalidPagination("limit", fmt.Sprintf("must not exceed %d", common.MaxPageSize))
	}
	return nil
}
