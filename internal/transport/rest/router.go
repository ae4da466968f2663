package rest

import (
	"log/slog"
	"net/http"

	"github.com/brunacaffaro/cashflowcontrol-backend/internal/transaction"
	"github.com/brunacaffaro/cashflowcontrol-backend/internal/transport/middleware"
	"github.com/brunacaffaro/cashflowcontrol-backend/internal/transport/swagger"
	"github.com/go-chi/chi"
	"gorm.io/gorm"
)

// RegisterAllRoutes wires the transaction endpoints, the docs UI and the
// health checks onto the router.
func RegisterAllRoutes(router *chi.Mux, db *gorm.DB, transactionHandler *transaction.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Documentation landing: the root redirects humans to the swagger UI
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusFound)
	})
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Post("/transaction", transactionHandler.CreateTransaction)
	router.Get("/transaction", transactionHandler.GetTransaction)
	router.Delete("/transaction", transactionHandler.DeleteTransaction)
	router.Patch("/transaction/status", transactionHandler.UpdateStatus)
	router.Get("/transactions", transactionHandler.ListTransactions)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)
	})
}
