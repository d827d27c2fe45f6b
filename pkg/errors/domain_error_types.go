package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainErrorType represents the category of domain error
type DomainErrorType string

const (
	// DomainValidationError indicates a value object or input shape violation
	DomainValidationError DomainErrorType = "VALIDATION_ERROR"

	// DomainBusinessRuleError indicates a composition rule violation
	DomainBusinessRuleError DomainErrorType = "BUSINESS_RULE_ERROR"

	// DomainNotFoundError indicates a resource was not found
	DomainNotFoundError DomainErrorType = "NOT_FOUND"

	// DomainConflictError indicates a conflict with existing state
	DomainConflictError DomainErrorType = "CONFLICT"

	// DomainInfrastructureError indicates an infrastructure-level failure
	DomainInfrastructureError DomainErrorType = "INFRASTRUCTURE_ERROR"
)

// DomainError represents a domain-specific error with rich context
type DomainError struct {
	Type       DomainErrorType        `json:"type"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Cause      error                  `json:"-"`
	StatusCode int                    `json:"status_code"`
}

// NewDomainError creates a new domain error
func NewDomainError(errorType DomainErrorType, code string, message string) *DomainError {
	return &DomainError{
		Type:       errorType,
		Code:       code,
		Message:    message,
		Details:    make(map[string]interface{}),
		StatusCode: domainErrorTypeToStatusCode(errorType),
	}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// WithCause adds a cause to the error
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// Is reports whether target is a DomainError with the same type and code,
// so every constructed instance matches its exported sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Cause
}

func domainErrorTypeToStatusCode(errorType DomainErrorType) int {
	switch errorType {
	case DomainValidationError:
		return http.StatusBadRequest
	case DomainBusinessRuleError:
		return http.StatusUnprocessableEntity
	case DomainNotFoundError:
		return http.StatusNotFound
	case DomainConflictError:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetDomainError extracts a DomainError from an error chain
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsDomainType checks if an error chain carries a domain error of the given type
func IsDomainType(err error, errorType DomainErrorType) bool {
	domainErr := GetDomainError(err)
	return domainErr != nil && domainErr.Type == errorType
}

// Sentinels. Compare with errors.Is; never mutate them, use the constructors below.
var (
	// Value objects
	ErrInvalidID                = NewDomainError(DomainValidationError, "INVALID_ID", "Identifier is not a valid UUID")
	ErrNameLength               = NewDomainError(DomainValidationError, "NAME_LENGTH", "Name length is out of range")
	ErrDescriptionLength        = NewDomainError(DomainValidationError, "DESCRIPTION_LENGTH", "Description length is out of range")
	ErrPriceNegative            = NewDomainError(DomainValidationError, "PRICE_NEGATIVE", "Price cannot be negative")
	ErrPriceInvalid             = NewDomainError(DomainValidationError, "PRICE_INVALID", "Price is not a valid decimal")
	ErrQuantityMinNegative      = NewDomainError(DomainValidationError, "QUANTITY_MIN_NEGATIVE", "Minimum permitted quantity cannot be negative")
	ErrQuantityMaxNotPositive   = NewDomainError(DomainValidationError, "QUANTITY_MAX_NOT_POSITIVE", "Maximum permitted quantity must be greater than zero")
	ErrQuantityMaxLessThanMin   = NewDomainError(DomainValidationError, "QUANTITY_MAX_LESS_THAN_MIN", "Maximum permitted quantity cannot be less than minimum")
	ErrMediaURLMalformed        = NewDomainError(DomainValidationError, "MEDIA_URL_MALFORMED", "Media URL is malformed")
	ErrMediaTypeInvalid         = NewDomainError(DomainValidationError, "MEDIA_TYPE_INVALID", "Media type is not supported")
	ErrStatusInvalid            = NewDomainError(DomainValidationError, "STATUS_INVALID", "Status is not supported")
	ErrInvalidCursor            = NewDomainError(DomainValidationError, "INVALID_CURSOR", "Pagination cursor could not be decoded")
	ErrInvalidPaginationRequest = NewDomainError(DomainValidationError, "INVALID_PAGINATION", "Pagination parameters are invalid")

	// Composition
	ErrDuplicatedCustomization           = NewDomainError(DomainBusinessRuleError, "DUPLICATED_CUSTOMIZATION", "Customization identifiers must be unique among siblings")
	ErrDuplicatedOption                  = NewDomainError(DomainBusinessRuleError, "DUPLICATED_OPTION", "Option identifiers must be unique within a customization")
	ErrCustomizationPermittedExceedsOpts = NewDomainError(DomainBusinessRuleError, "CUSTOMIZATION_PERMITTED_EXCEEDS_OPTIONS", "Customization maximum permitted exceeds available options")
	ErrCustomizationOptionsEmpty         = NewDomainError(DomainBusinessRuleError, "CUSTOMIZATION_OPTIONS_EMPTY", "Customization must have at least one option")
	ErrOfferPriceZero                    = NewDomainError(DomainBusinessRuleError, "OFFER_PRICE_ZERO", "Offer price cannot be zero")

	// Not found
	ErrStoreNotFound         = NewDomainError(DomainNotFoundError, "STORE_NOT_FOUND", "The requested store does not exist")
	ErrCategoryNotFound      = NewDomainError(DomainNotFoundError, "CATEGORY_NOT_FOUND", "The requested category does not exist")
	ErrProductNotFound       = NewDomainError(DomainNotFoundError, "PRODUCT_NOT_FOUND", "The requested product does not exist")
	ErrOfferNotFound         = NewDomainError(DomainNotFoundError, "OFFER_NOT_FOUND", "The requested offer does not exist")
	ErrCustomizationNotFound = NewDomainError(DomainNotFoundError, "CUSTOMIZATION_NOT_FOUND", "The requested customization does not exist")
	ErrOptionNotFound        = NewDomainError(DomainNotFoundError, "OPTION_NOT_FOUND", "The requested option does not exist")

	// Already exists
	ErrCategoryAlreadyExists = NewDomainError(DomainConflictError, "CATEGORY_ALREADY_EXISTS", "A category with this identifier already exists")
	ErrProductAlreadyExists  = NewDomainError(DomainConflictError, "PRODUCT_ALREADY_EXISTS", "A product with this identifier already exists")
	ErrOfferAlreadyExists    = NewDomainError(DomainConflictError, "OFFER_ALREADY_EXISTS", "An offer with this identifier already exists")

	// Conflict
	ErrProductInUse = NewDomainError(DomainConflictError, "PRODUCT_IN_USE", "Product is referenced by an offer or option")

	// Infrastructure
	ErrDatastoreIntegration = NewDomainError(DomainInfrastructureError, "DATASTORE_INTEGRATION_FAILED", "Datastore integration failed")
)

func from(sentinel *DomainError) *DomainError {
	return NewDomainError(sentinel.Type, sentinel.Code, sentinel.Message)
}

// NewInvalidID reports a malformed identifier for the given field
func NewInvalidID(field, value string) *DomainError {
	return from(ErrInvalidID).WithDetail("field", field).WithDetail("value", value)
}

// NewNameLength reports a name outside [min, max]
func NewNameLength(length, min, max int) *DomainError {
	return from(ErrNameLength).
		WithDetail("length", length).
		WithDetail("min", min).
		WithDetail("max", max)
}

// NewDescriptionLength reports a description outside [min, max]
func NewDescriptionLength(length, min, max int) *DomainError {
	return from(ErrDescriptionLength).
		WithDetail("length", length).
		WithDetail("min", min).
		WithDetail("max", max)
}

// NewPriceNegative reports a negative canonical price
func NewPriceNegative(value string) *DomainError {
	return from(ErrPriceNegative).WithDetail("value", value)
}

// NewPriceInvalid reports an unparsable price
func NewPriceInvalid(value string, cause error) *DomainError {
	return from(ErrPriceInvalid).WithDetail("value", value).WithCause(cause)
}

// NewQuantityMinNegative reports minPermitted < 0
func NewQuantityMinNegative(min int) *DomainError {
	return from(ErrQuantityMinNegative).WithDetail("min_permitted", min)
}

// NewQuantityMaxNotPositive reports maxPermitted <= 0
func NewQuantityMaxNotPositive(max int) *DomainError {
	return from(ErrQuantityMaxNotPositive).WithDetail("max_permitted", max)
}

// NewQuantityMaxLessThanMin reports maxPermitted < minPermitted
func NewQuantityMaxLessThanMin(min, max int) *DomainError {
	return from(ErrQuantityMaxLessThanMin).
		WithDetail("min_permitted", min).
		WithDetail("max_permitted", max)
}

// NewMediaURLMalformed reports a media URL that is not absolute
func NewMediaURLMalformed(rawURL string, cause error) *DomainError {
	err := from(ErrMediaURLMalformed).WithDetail("url", rawURL)
	if cause != nil {
		err.WithCause(cause)
	}
	return err
}

// NewMediaTypeInvalid reports an unsupported media type
func NewMediaTypeInvalid(mediaType string) *DomainError {
	return from(ErrMediaTypeInvalid).WithDetail("type", mediaType)
}

// NewStatusInvalid reports an unsupported status
func NewStatusInvalid(status string) *DomainError {
	return from(ErrStatusInvalid).WithDetail("status", status)
}

// NewInvalidCursor reports a cursor that is not base64 JSON
func NewInvalidCursor(cause error) *DomainError {
	return from(ErrInvalidCursor).WithCause(cause)
}

// NewInvalidPagination reports out-of-range limit or offset
func NewInvalidPagination(field, reason string) *DomainError {
	return from(ErrInvalidPaginationRequest).WithDetail("field", field).WithDetail("reason", reason)
}

// NewDuplicatedCustomization reports every duplicated sibling customization id
func NewDuplicatedCustomization(ids []string) *DomainError {
	return from(ErrDuplicatedCustomization).WithDetail("ids", ids)
}

// NewDuplicatedOption reports every duplicated option id of one customization
func NewDuplicatedOption(customizationID string, ids []string) *DomainError {
	return from(ErrDuplicatedOption).
		WithDetail("customization_id", customizationID).
		WithDetail("ids", ids)
}

// NewCustomizationPermittedExceedsOptions reports maxPermitted > available options
func NewCustomizationPermittedExceedsOptions(customizationID string, maxPermitted, available int) *DomainError {
	return from(ErrCustomizationPermittedExceedsOpts).
		WithDetail("customization_id", customizationID).
		WithDetail("max_permitted", maxPermitted).
		WithDetail("available_options", available)
}

// NewCustomizationOptionsEmpty reports a customization without options
func NewCustomizationOptionsEmpty(customizationID string) *DomainError {
	return from(ErrCustomizationOptionsEmpty).WithDetail("customization_id", customizationID)
}

// NewOfferPriceZero reports an offer without any non-zero price in its tree
func NewOfferPriceZero(offerID string) *DomainError {
	return from(ErrOfferPriceZero).WithDetail("offer_id", offerID)
}

// NewStoreNotFound reports a missing store
func NewStoreNotFound(storeID string) *DomainError {
	return from(ErrStoreNotFound).WithDetail("store_id", storeID)
}

// NewCategoryNotFound reports a missing category under a store
func NewCategoryNotFound(storeID, categoryID string) *DomainError {
	return from(ErrCategoryNotFound).
		WithDetail("store_id", storeID).
		WithDetail("category_id", categoryID)
}

// NewProductNotFound reports missing products under a store
func NewProductNotFound(storeID string, productIDs ...string) *DomainError {
	return from(ErrProductNotFound).
		WithDetail("store_id", storeID).
		WithDetail("product_ids", productIDs)
}

// NewOfferNotFound reports a missing offer under a store category
func NewOfferNotFound(storeID, categoryID, offerID string) *DomainError {
	return from(ErrOfferNotFound).
		WithDetail("store_id", storeID).
		WithDetail("category_id", categoryID).
		WithDetail("offer_id", offerID)
}

// NewCustomizationNotFound reports a customization missing from an offer tree
func NewCustomizationNotFound(offerID, customizationID string) *DomainError {
	return from(ErrCustomizationNotFound).
		WithDetail("offer_id", offerID).
		WithDetail("customization_id", customizationID)
}

// NewOptionNotFound reports an option missing from a customization
func NewOptionNotFound(customizationID, optionID string) *DomainError {
	return from(ErrOptionNotFound).
		WithDetail("customization_id", customizationID).
		WithDetail("option_id", optionID)
}

// NewCategoryAlreadyExists reports a duplicated category id
func NewCategoryAlreadyExists(storeID, categoryID string) *DomainError {
	return from(ErrCategoryAlreadyExists).
		WithDetail("store_id", storeID).
		WithDetail("category_id", categoryID)
}

// NewProductAlreadyExists reports duplicated product ids
func NewProductAlreadyExists(storeID string, productIDs ...string) *DomainError {
	return from(ErrProductAlreadyExists).
		WithDetail("store_id", storeID).
		WithDetail("product_ids", productIDs)
}

// NewOfferAlreadyExists reports a duplicated offer id
func NewOfferAlreadyExists(storeID, categoryID, offerID string) *DomainError {
	return from(ErrOfferAlreadyExists).
		WithDetail("store_id", storeID).
		WithDetail("category_id", categoryID).
		WithDetail("offer_id", offerID)
}

// NewProductInUse reports a product still referenced by the offer tree
func NewProductInUse(storeID, productID string) *DomainError {
	return from(ErrProductInUse).
		WithDetail("store_id", storeID).
		WithDetail("product_id", productID)
}

// NewDatastoreIntegration wraps any storage client failure
func NewDatastoreIntegration(operation string, cause error) *DomainError {
	return from(ErrDatastoreIntegration).
		WithDetail("operation", operation).
		WithCause(cause)
}
