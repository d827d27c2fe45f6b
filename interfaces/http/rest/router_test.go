package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	commandhandlers "github.com/rodrigogurgel/catalog-sub001/application/commands/handlers"
	"github.com/rodrigogurgel/catalog-sub001/application/ports/mocks"
	queryhandlers "github.com/rodrigogurgel/catalog-sub001/application/queries/handlers"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/entities"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/fixtures"
	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest/handlers"
	"github.com/rodrigogurgel/catalog-sub001/pkg/auth"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
	"github.com/rodrigogurgel/catalog-sub001/pkg/observability"
)

type testServer struct {
	stores     *mocks.MockStoreRepository
	categories *mocks.MockCategoryRepository
	products   *mocks.MockProductRepository
	offers     *mocks.MockOfferRepository
	handler    http.Handler
}

func newTestServer(t *testing.T, options Options) *testServer {
	t.Helper()
	s := &testServer{
		stores:     new(mocks.MockStoreRepository),
		categories: new(mocks.MockCategoryRepository),
		products:   new(mocks.MockProductRepository),
		offers:     new(mocks.MockOfferRepository),
	}
	logger := zap.NewNop()
	errs := pkgerrors.NewErrorHandler(logger, false)

	h := Handlers{
		Categories: handlers.NewCategoryHandler(handlers.CategoryUseCases{
			Create: commandhandlers.NewCreateCategoryHandler(s.stores, s.categories, nil, nil, logger),
			Update: commandhandlers.NewUpdateCategoryHandler(s.stores, s.categories, nil, nil, logger),
			Delete: commandhandlers.NewDeleteCategoryHandler(s.stores, s.categories, nil, nil, logger),
			Query:  queryhandlers.NewCategoryQueryHandler(s.stores, s.categories, nil, logger),
		}, errs, logger),
		Products: handlers.NewProductHandler(handlers.ProductUseCases{
			Create:      commandhandlers.NewCreateProductHandler(s.stores, s.products, nil, nil, logger),
			CreateBatch: commandhandlers.NewCreateProductsHandler(s.stores, s.products, nil, nil, logger),
			Update:      commandhandlers.NewUpdateProductHandler(s.stores, s.products, nil, nil, logger),
			Delete:      commandhandlers.NewDeleteProductHandler(s.stores, s.products, nil, nil, logger),
			Query:       queryhandlers.NewProductQueryHandler(s.stores, s.products, nil, logger),
		}, errs, logger),
		Offers: handlers.NewOfferHandler(handlers.OfferUseCases{
			Create: commandhandlers.NewCreateOfferHandler(s.stores, s.categories, s.products, s.offers, nil, nil, logger),
			Update: commandhandlers.NewUpdateOfferHandler(s.stores, s.categories, s.products, s.offers, nil, nil, logger),
			Delete: commandhandlers.NewDeleteOfferHandler(s.stores, s.categories, s.offers, nil, nil, logger),
			Query:  queryhandlers.NewOfferQueryHandler(s.stores, s.categories, s.offers, nil, logger),
		}, errs, logger),
		Composition: handlers.NewCompositionHandler(
			commandhandlers.NewOfferCompositionHandler(s.stores, s.categories, s.products, s.offers, nil, nil, logger),
			errs, logger),
	}

	s.handler = NewRouter(h, options, errs, logger).Setup()
	return s
}

func (s *testServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    struct {
		NextCursor string `json:"next_cursor"`
		Total      *int64 `json:"total"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp pkgerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Code
}

func TestHealthAndReadiness(t *testing.T) {
	s := newTestServer(t, Options{Ready: func(context.Context) error { return errors.New("no datastore") }})

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, s.do(http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/nowhere", "").Code)
}

func TestCreateCategory(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID := valueobjects.NewID()

	s.stores.On("Exists", mock.Anything, storeID).Return(true, nil)
	s.categories.On("Exists", mock.Anything, storeID, mock.Anything).Return(false, nil)
	s.categories.On("Create", mock.Anything, storeID, mock.AnythingOfType("*entities.Category")).Return(nil)

	rec := s.do(http.MethodPost, "/api/v1/stores/"+storeID.String()+"/categories",
		`{"name":"Burgers","status":"available"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"status":"AVAILABLE"`)
	s.categories.AssertExpectations(t)
}

func TestCreateCategory_RejectsBadInput(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID := valueobjects.NewID().String()

	tests := []struct {
		name string
		path string
		body string
		code string
	}{
		{"bad store id", "/api/v1/stores/not-a-uuid/categories", `{"name":"Burgers","status":"AVAILABLE"}`, "INVALID_ID"},
		{"missing name", "/api/v1/stores/" + storeID + "/categories", `{"status":"AVAILABLE"}`, ""},
		{"unknown field", "/api/v1/stores/" + storeID + "/categories", `{"name":"Burgers","status":"AVAILABLE","x":1}`, ""},
		{"short name", "/api/v1/stores/" + storeID + "/categories", `{"name":"Bu","status":"AVAILABLE"}`, "NAME_LENGTH"},
		{"bad status", "/api/v1/stores/" + storeID + "/categories", `{"name":"Burgers","status":"GONE"}`, "STATUS_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()

	s.categories.On("GetByID", mock.Anything, storeID, categoryID).Return(nil, nil)

	rec := s.do(http.MethodGet, "/api/v1/stores/"+storeID.String()+"/categories/"+categoryID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATEGORY_NOT_FOUND", errorCode(t, rec))
}

func TestListCategories_Paginates(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID := valueobjects.NewID()
	page := common.Page[*entities.Category]{
		Items:      []*entities.Category{fixtures.NewCategoryBuilder().MustBuild()},
		NextCursor: "abc",
	}

	s.stores.On("Exists", mock.Anything, storeID).Return(true, nil)
	s.categories.On("List", mock.Anything, storeID, 5, "prev").Return(page, nil)

	rec := s.do(http.MethodGet, "/api/v1/stores/"+storeID.String()+"/categories?limit=5&cursor=prev", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "abc", decode(t, rec).Meta.NextCursor)

	bad := s.do(http.MethodGet, "/api/v1/stores/"+storeID.String()+"/categories?limit=ten", "")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, "INVALID_PAGINATION", errorCode(t, bad))
}

func TestCountProducts(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID := valueobjects.NewID()

	s.stores.On("Exists", mock.Anything, storeID).Return(true, nil)
	s.products.On("Count", mock.Anything, storeID).Return(int64(42), nil)

	rec := s.do(http.MethodGet, "/api/v1/stores/"+storeID.String()+"/products/count", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":42}`, string(decode(t, rec).Data))
}

func TestDeleteProduct_InUse(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID, productID := valueobjects.NewID(), valueobjects.NewID()

	s.stores.On("Exists", mock.Anything, storeID).Return(true, nil)
	s.products.On("Exists", mock.Anything, storeID, productID).Return(true, nil)
	s.products.On("IsInUse", mock.Anything, storeID, productID).Return(true, nil)

	rec := s.do(http.MethodDelete, "/api/v1/stores/"+storeID.String()+"/products/"+productID.String(), "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PRODUCT_IN_USE", errorCode(t, rec))
	s.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProduct_PathAndBodyMustMatch(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID, productID := valueobjects.NewID(), valueobjects.NewID()

	rec := s.do(http.MethodPut, "/api/v1/stores/"+storeID.String()+"/products/"+productID.String(),
		`{"id":"`+valueobjects.NewID().String()+`","name":"Burger"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchOffers(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID := valueobjects.NewID()
	offer := fixtures.NewOfferBuilder().MustBuild()

	s.stores.On("Exists", mock.Anything, storeID).Return(true, nil)
	s.offers.On("Search", mock.Anything, storeID, "combo", 10, 20).Return([]*entities.Offer{offer}, int64(21), nil)

	rec := s.do(http.MethodGet, "/api/v1/stores/"+storeID.String()+"/offers/search?q=%20combo%20&limit=10&offset=20", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Total)
	assert.Equal(t, int64(21), *env.Meta.Total)
	assert.Contains(t, string(env.Data), offer.ID().String())
}

func TestAddNestedCustomization(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()
	option := fixtures.NewOptionBuilder().MustBuild()
	customization := fixtures.NewCustomizationBuilder().WithOptions(option).MustBuild()
	offer := fixtures.NewOfferBuilder().WithCustomizations(customization).MustBuild()

	s.stores.On("Exists", mock.Anything, storeID).Return(true, nil)
	s.categories.On("Exists", mock.Anything, storeID, categoryID).Return(true, nil)
	s.offers.On("GetByID", mock.Anything, storeID, categoryID, offer.ID()).Return(offer, nil)
	s.offers.On("Update", mock.Anything, storeID, categoryID, mock.AnythingOfType("*entities.Offer")).Return(nil)

	path := "/api/v1/stores/" + storeID.String() + "/categories/" + categoryID.String() +
		"/offers/" + offer.ID().String() + "/customizations/" + customization.ID().String() +
		"/options/" + option.ID().String() + "/customizations"
	body := `{"name":"Sauce","quantity":{"min_permitted":0,"max_permitted":1},"status":"AVAILABLE",
		"options":[{"name":"Ketchup","quantity":{"min_permitted":0,"max_permitted":1},"status":"AVAILABLE"}]}`

	rec := s.do(http.MethodPost, path, body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, string(decode(t, rec).Data), `"name":"Ketchup"`)
	s.offers.AssertExpectations(t)
}

func TestDeleteOption_UnknownCustomization(t *testing.T) {
	s := newTestServer(t, Options{})
	storeID, categoryID := valueobjects.NewID(), valueobjects.NewID()
	offer := fixtures.NewOfferBuilder().WithCustomizations(fixtures.NewCustomizationBuilder().MustBuild()).MustBuild()

	s.stores.On("Exists", mock.Anything, storeID).Return(true, nil)
	s.categories.On("Exists", mock.Anything, storeID, categoryID).Return(true, nil)
	s.offers.On("GetByID", mock.Anything, storeID, categoryID, offer.ID()).Return(offer, nil)

	path := "/api/v1/stores/" + storeID.String() + "/categories/" + categoryID.String() +
		"/offers/" + offer.ID().String() + "/customizations/" + valueobjects.NewID().String() +
		"/options/" + valueobjects.NewID().String()

	rec := s.do(http.MethodDelete, path, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CUSTOMIZATION_NOT_FOUND", errorCode(t, rec))
	s.offers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticationAndMetrics(t *testing.T) {
	validator, err := auth.NewJWTValidator("secret", "catalog")
	require.NoError(t, err)
	collector := observability.NewCollector("catalog_router_test")
	s := newTestServer(t, Options{Validator: validator, Collector: collector, RequestTimeout: time.Second})
	storeID := valueobjects.NewID()

	rec := s.do(http.MethodGet, "/api/v1/stores/"+storeID.String()+"/products/count", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.stores.On("Exists", mock.Anything, storeID).Return(true, nil)
	s.products.On("Count", mock.Anything, storeID).Return(int64(1), nil)
	token, err := validator.GenerateToken("backoffice", []string{storeID.String()}, time.Minute)
	require.NoError(t, err)

	rec = s.do(http.MethodGet, "/api/v1/stores/"+storeID.String()+"/products/count", "", "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	metrics := s.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `route="/api/v1/stores/{storeID}/products/count"`)
}
