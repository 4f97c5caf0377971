package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cotacoes-epc/go-quote-keeper/internal/service"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/verify-registration", h.verifyRegistration)
		r.Post("/api/auth/logout", h.logout)
	})

	// routes scoped to the authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/services", h.quoteItemRoutes(h.services.ServiceItemService))
		r.Route("/api/inputs", h.quoteItemRoutes(h.services.InputItemService))

		r.Route("/api/spreadsheets", func(r chi.Router) {
			r.Post("/", h.createSpreadsheet)
			r.Get("/", h.listSpreadsheets)
			r.Get("/{id}", h.getSpreadsheet)
			r.Put("/{id}", h.updateSpreadsheet)
			r.Delete("/{id}", h.deleteSpreadsheet)
			r.Get("/{id}/download", h.downloadSpreadsheet)
		})

		r.Post("/api/files/upload", h.uploadFile)
		r.Get("/api/files/download/{fileKey}", h.downloadFile)

		r.Get("/api/dashboard/summary", h.dashboardSummary)
		r.Get("/api/dashboard/statistics", h.dashboardStatistics)
	})

	return router
}

// quoteItemRoutes wires the CRUD routes of one line-item collection to its
// service instance.
func (h *Handler) quoteItemRoutes(items service.QuoteItemService) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/", h.createQuoteItem(items))
		r.Get("/", h.listQuoteItems(items))
		r.Get("/{id}", h.getQuoteItem(items))
		r.Put("/{id}", h.updateQuoteItem(items))
		r.Delete("/{id}", h.deleteQuoteItem(items))
	}
}
