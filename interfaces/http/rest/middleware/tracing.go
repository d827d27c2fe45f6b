package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rodrigogurgel/catalog-sub001/pkg/observability"
)

// AnnotateStore tags the current trace segment with the storeID path parameter
func AnnotateStore(tracer *observability.Tracer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if storeID := chi.URLParam(r, "storeID"); storeID != "" {
				tracer.AddAnnotation(r.Context(), "storeID", storeID)
			}
			next.ServeHTTP(w, r)
		})
	}
}
