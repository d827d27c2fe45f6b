//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	commandhandlers "github.com/rodrigogurgel/catalog-sub001/application/commands/handlers"
	queryhandlers "github.com/rodrigogurgel/catalog-sub001/application/queries/handlers"
	"github.com/rodrigogurgel/catalog-sub001/infrastructure/config"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest/handlers"
)

// InfrastructureSet provides clients, the datastore and the ambient services
var InfrastructureSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideDatastore,
	wire.FieldsOf(new(*Datastore), "Stores", "Categories", "Products", "Offers"),
	ProvideEventPublisher,
	ProvideCollector,
	ProvideMetrics,
	ProvideTracer,
	ProvideJWTValidator,
	ProvideErrorHandler,
)

// UseCaseSet provides the command and query handlers
var UseCaseSet = wire.NewSet(
	commandhandlers.NewCreateCategoryHandler,
	commandhandlers.NewUpdateCategoryHandler,
	commandhandlers.NewDeleteCategoryHandler,
	commandhandlers.NewCreateProductHandler,
	commandhandlers.NewCreateProductsHandler,
	commandhandlers.NewUpdateProductHandler,
	commandhandlers.NewDeleteProductHandler,
	commandhandlers.NewCreateOfferHandler,
	commandhandlers.NewUpdateOfferHandler,
	commandhandlers.NewDeleteOfferHandler,
	commandhandlers.NewOfferCompositionHandler,
	queryhandlers.NewCategoryQueryHandler,
	queryhandlers.NewProductQueryHandler,
	queryhandlers.NewOfferQueryHandler,
)

// HTTPSet provides the REST handlers and the router
var HTTPSet = wire.NewSet(
	wire.Struct(new(handlers.CategoryUseCases), "*"),
	wire.Struct(new(handlers.ProductUseCases), "*"),
	wire.Struct(new(handlers.OfferUseCases), "*"),
	handlers.NewCategoryHandler,
	handlers.NewProductHandler,
	handlers.NewOfferHandler,
	handlers.NewCompositionHandler,
	wire.Struct(new(rest.Handlers), "*"),
	ProvideRouterOptions,
	rest.NewRouter,
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(
		InfrastructureSet,
		UseCaseSet,
		HTTPSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil // Wire will replace this
}
