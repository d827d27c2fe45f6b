package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest/handlers"
	"github.com/rodrigogurgel/catalog-sub001/interfaces/http/rest/middleware"
	"github.com/rodrigogurgel/catalog-sub001/pkg/auth"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
	"github.com/rodrigogurgel/catalog-sub001/pkg/observability"
)

// ReadinessCheck reports whether the datastore can serve requests
type ReadinessCheck func(ctx context.Context) error

// Handlers groups the resource handlers mounted by the router
type Handlers struct {
	Categories  *handlers.CategoryHandler
	Products    *handlers.ProductHandler
	Offers      *handlers.OfferHandler
	Composition *handlers.CompositionHandler
}

// Options toggles the optional parts of the middleware stack. Nil
// collaborators are skipped.
type Options struct {
	EnableCORS     bool
	RequestTimeout time.Duration
	Collector      *observability.Collector
	Tracer         *observability.Tracer
	Validator      *auth.JWTValidator
	Ready          ReadinessCheck
}

// Router creates and configures the HTTP router
type Router struct {
	handlers Handlers
	options  Options
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(h Handlers, options Options, errs *pkgerrors.ErrorHandler, logger *zap.Logger) *Router {
	return &Router{
		handlers: h,
		options:  options,
		errors:   errs,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.errors.Middleware)
	if rt.options.Collector != nil {
		router.Use(rt.options.Collector.Middleware)
	}
	if rt.options.Tracer != nil {
		router.Use(rt.options.Tracer.Middleware)
	}
	if rt.options.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.errors.Handle(w, r, pkgerrors.NewNotFoundError("route"))
	})

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.options.Collector != nil {
		router.Method(http.MethodGet, "/metrics", rt.options.Collector.Handler())
	}

	router.Route("/api/v1/stores/{storeID}", func(r chi.Router) {
		if rt.options.Validator != nil {
			r.Use(middleware.Authenticate(rt.options.Validator, rt.errors, rt.logger))
			r.Use(middleware.RequireStoreAccess(rt.errors))
		}
		if rt.options.Tracer != nil {
			r.Use(middleware.AnnotateStore(rt.options.Tracer))
		}
		if rt.options.RequestTimeout > 0 {
			r.Use(chimiddleware.Timeout(rt.options.RequestTimeout))
		}

		r.Route("/categories", rt.categoryRoutes)
		r.Route("/products", rt.productRoutes)
		r.Get("/offers/search", rt.handlers.Offers.SearchOffers)
	})

	return router
}

func (rt *Router) categoryRoutes(r chi.Router) {
	categories := rt.handlers.Categories
	r.Post("/", categories.CreateCategory)
	r.Get("/", categories.ListCategories)
	r.Get("/count", categories.CountCategories)

	r.Route("/{categoryID}", func(r chi.Router) {
		r.Get("/", categories.GetCategory)
		r.Put("/", categories.UpdateCategory)
		r.Delete("/", categories.DeleteCategory)
		r.Route("/offers", rt.offerRoutes)
	})
}

func (rt *Router) offerRoutes(r chi.Router) {
	offers := rt.handlers.Offers
	composition := rt.handlers.Composition
	r.Post("/", offers.CreateOffer)
	r.Get("/", offers.ListOffers)
	r.Get("/count", offers.CountOffers)

	r.Route("/{offerID}", func(r chi.Router) {
		r.Get("/", offers.GetOffer)
		r.Put("/", offers.UpdateOffer)
		r.Delete("/", offers.DeleteOffer)

		r.Post("/customizations", composition.AddCustomization)
		r.Route("/customizations/{customizationID}", func(r chi.Router) {
			r.Put("/", composition.UpdateCustomization)
			r.Delete("/", composition.DeleteCustomization)
			r.Post("/options", composition.AddOption)
			r.Put("/options/{optionID}", composition.UpdateOption)
			r.Delete("/options/{optionID}", composition.DeleteOption)
			r.Post("/options/{optionID}/customizations", composition.AddNestedCustomization)
		})
	})
}

func (rt *Router) productRoutes(r chi.Router) {
	products := rt.handlers.Products
	r.Post("/", products.CreateProduct)
	r.Get("/", products.ListProducts)
	r.Post("/batch", products.CreateProducts)
	r.Get("/count", products.CountProducts)

	r.Route("/{productID}", func(r chi.Router) {
		r.Get("/", products.GetProduct)
		r.Put("/", products.UpdateProduct)
		r.Delete("/", products.DeleteProduct)
	})
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// readinessCheck reports whether the datastore answers
func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	if rt.options.Ready != nil {
		if err := rt.options.Ready(r.Context()); err != nil {
			rt.logger.Warn("Readiness check failed", zap.Error(err))
			common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
