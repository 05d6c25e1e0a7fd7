package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/clipframe/clipframe/pkg/api"
	"github.com/clipframe/clipframe/pkg/handlers/jobs"
	"github.com/clipframe/clipframe/pkg/handlers/ledger"
	"github.com/clipframe/clipframe/pkg/handlers/wallets"
	"github.com/clipframe/clipframe/pkg/handlers/websockets"
	"github.com/clipframe/clipframe/pkg/middleware"
)

// Handlers bundles the per-resource handlers mounted on the router.
type Handlers struct {
	Jobs       *jobs.JobsHandler
	Wallets    *wallets.WalletsHandler
	Ledger     *ledger.LedgerHandler
	WebSockets *websockets.Handler
}

// NewRouter assembles the HTTP surface on a chi router.
func NewRouter(h Handlers, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	router.Post("/uploads", h.Jobs.UploadSource)
	router.Post("/jobs", h.Jobs.CreateJob)
	router.Get("/jobs/{jobId}", func(w http.ResponseWriter, r *http.Request) {
		h.Jobs.GetJobById(w, r, chi.URLParam(r, "jobId"))
	})

	router.Post("/wallets", h.Wallets.CreateWallet)
	router.Get("/wallets", h.Wallets.ListWallets)
	router.Get("/wallets/{accountId}", func(w http.ResponseWriter, r *http.Request) {
		h.Wallets.GetWalletByAccountId(w, r, chi.URLParam(r, "accountId"))
	})
	router.Delete("/wallets/{accountId}", func(w http.ResponseWriter, r *http.Request) {
		h.Wallets.DeleteWallet(w, r, chi.URLParam(r, "accountId"))
	})

	router.Get("/wallets/{accountId}/ledger", func(w http.ResponseWriter, r *http.Request) {
		params := api.ListLedgerEntriesParams{AccountId: chi.URLParam(r, "accountId")}
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if limit, err := strconv.Atoi(raw); err == nil {
				params.Limit = &limit
			}
		}
		h.Ledger.ListLedgerEntries(w, r, params)
	})

	if h.WebSockets != nil {
		router.Handle("/ws", h.WebSockets)
	}

	return router
}
