package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/nordavia/airport-aip-service/internal/app/config"
	"github.com/nordavia/airport-aip-service/internal/app/dto"
	"github.com/nordavia/airport-aip-service/internal/app/endpoints"
	httptransport "github.com/nordavia/airport-aip-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1/airports", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/lookup", httptransport.MakeHandlerFunc(
			endpts.AirportEndpoint.LookupAirport,
			httptransport.DecodeRequest[dto.LookupRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
