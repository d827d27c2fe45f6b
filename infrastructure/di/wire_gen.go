//go:build !wireinject
// +build !wireinject

package di

import (
	"context"

	commandhandlers "github.com/rodrigogurgel/catalog-sub001/application/commands/handlers"
	queryhandlers "github.com/rodrigogurgel/catalog-sub001/application/queries/handlers"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/config"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest/handlers"
)

// InitializeContainer creates a fully wired container. It is maintained by
// hand and must follow the provider graph declared in wire.go.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	awsConfig, err := ProvideAWSConfig(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	client := ProvideDynamoDBClient(awsConfig, cfg)
	datastore, cleanup, err := ProvideDatastore(ctx, cfg, client, logger)
	if err != nil {
		return nil, nil, err
	}
	storeRepository := datastore.Stores
	categoryRepository := datastore.Categories
	eventbridgeClient := ProvideEventBridgeClient(awsConfig)
	eventPublisher := ProvideEventPublisher(cfg, eventbridgeClient, logger)
	collector := ProvideCollector()
	cloudwatchClient := ProvideCloudWatchClient(awsConfig)
	metrics := ProvideMetrics(cfg, collector, cloudwatchClient, logger)
	createCategoryHandler := commandhandlers.NewCreateCategoryHandler(storeRepository, categoryRepository, eventPublisher, metrics, logger)
	updateCategoryHandler := commandhandlers.NewUpdateCategoryHandler(storeRepository, categoryRepository, eventPublisher, metrics, logger)
	deleteCategoryHandler := commandhandlers.NewDeleteCategoryHandler(storeRepository, categoryRepository, eventPublisher, metrics, logger)
	categoryQueryHandler := queryhandlers.NewCategoryQueryHandler(storeRepository, categoryRepository, metrics, logger)
	categoryUseCases := handlers.CategoryUseCases{
		Create: createCategoryHandler,
		Update: updateCategoryHandler,
		Delete: deleteCategoryHandler,
		Query:  categoryQueryHandler,
	}
	errorHandler := ProvideErrorHandler(cfg, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCases, errorHandler, logger)
	productRepository := datastore.Products
	createProductHandler := commandhandlers.NewCreateProductHandler(storeRepository, productRepository, eventPublisher, metrics, logger)
	createProductsHandler := commandhandlers.NewCreateProductsHandler(storeRepository, productRepository, eventPublisher, metrics, logger)
	updateProductHandler := commandhandlers.NewUpdateProductHandler(storeRepository, productRepository, eventPublisher, metrics, logger)
	deleteProductHandler := commandhandlers.NewDeleteProductHandler(storeRepository, productRepository, eventPublisher, metrics, logger)
	productQueryHandler := queryhandlers.NewProductQueryHandler(storeRepository, productRepository, metrics, logger)
	productUseCases := handlers.ProductUseCases{
		Create:      createProductHandler,
		CreateBatch: createProductsHandler,
		Update:      updateProductHandler,
		Delete:      deleteProductHandler,
		Query:       productQueryHandler,
	}
	productHandler := handlers.NewProductHandler(productUseCases, errorHandler, logger)
	offerRepository := datastore.Offers
	createOfferHandler := commandhandlers.NewCreateOfferHandler(storeRepository, categoryRepository, productRepository, offerRepository, eventPublisher, metrics, logger)
	updateOfferHandler := commandhandlers.NewUpdateOfferHandler(storeRepository, categoryRepository, productRepository, offerRepository, eventPublisher, metrics, logger)
	deleteOfferHandler := commandhandlers.NewDeleteOfferHandler(storeRepository, categoryRepository, offerRepository, eventPublisher, metrics, logger)
	offerQueryHandler := queryhandlers.NewOfferQueryHandler(storeRepository, categoryRepository, offerRepository, metrics, logger)
	offerUseCases := handlers.OfferUseCases{
		Create: createOfferHandler,
		Update: updateOfferHandler,
		Delete: deleteOfferHandler,
		Query:  offerQueryHandler,
	}
	offerHandler := handlers.NewOfferHandler(offerUseCases, errorHandler, logger)
	offerCompositionHandler := commandhandlers.NewOfferCompositionHandler(storeRepository, categoryRepository, productRepository, offerRepository, eventPublisher, metrics, logger)
	compositionHandler := handlers.NewCompositionHandler(offerCompositionHandler, errorHandler, logger)
	restHandlers := rest.Handlers{
		Categories:  categoryHandler,
		Products:    productHandler,
		Offers:      offerHandler,
		Composition: compositionHandler,
	}
	tracer := ProvideTracer(cfg)
	jwtValidator, err := ProvideJWTValidator(cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	options := ProvideRouterOptions(cfg, datastore, collector, tracer, jwtValidator)
	router := rest.NewRouter(restHandlers, options, errorHandler, logger)
	container := &Container{
		Config: cfg,
		Logger: logger,
		Router: router,
	}
	return container, func() {
		cleanup()
	}, nil
}
