package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kestrelpm/trustbooks/internal/http/bankfeed"
	"github.com/kestrelpm/trustbooks/internal/http/ledger"
	"github.com/kestrelpm/trustbooks/internal/http/property"
	"github.com/kestrelpm/trustbooks/internal/http/reconcile"
	"github.com/kestrelpm/trustbooks/internal/http/report"
)

func New(
	transactionsV1 *ledger.Handler,
	propertiesV1 *property.Handler,
	bankfeedV1 *bankfeed.Handler,
	reconciliationV1 *reconcile.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/properties", func(r chi.Router) {
			propertiesV1.Routes(r)
		})

		r.Route("/bankfeed", bankfeedV1.Routes)

		r.Route("/reconciliation", func(r chi.Router) {
			reconciliationV1.Routes(r)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			reportsV1.Routes(r)
		})
	})

	return router
}
