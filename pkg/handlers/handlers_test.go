package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clipframe/clipframe/pkg/handlers/jobs"
	"github.com/clipframe/clipframe/pkg/handlers/ledger"
	"github.com/clipframe/clipframe/pkg/handlers/wallets"
	jobcache_mocks "github.com/clipframe/clipframe/pkg/jobcache/mocks"
	"github.com/clipframe/clipframe/pkg/models"
	storage_mocks "github.com/clipframe/clipframe/pkg/storage/mocks"
)

func TestRouterWiring(t *testing.T) {
	mockStore := new(storage_mocks.ApiStore)
	mockCache := new(jobcache_mocks.Cache)

	router := NewRouter(Handlers{
		Jobs:    jobs.NewJobsHandler(nil, mockStore, mockCache, nil),
		Wallets: wallets.NewWalletsHandler(mockStore),
		Ledger:  ledger.NewLedgerHandler(mockStore),
	}, slog.Default())

	t.Run("Get Wallet Route", func(t *testing.T) {
		mockStore.On("GetWallet", mock.Anything, "acct1").Return(&models.Wallet{AccountId: "acct1", Monthly: 100}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/wallets/acct1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Get Job Route Requires Account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jobs/job1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Ledger Route Parses Limit", func(t *testing.T) {
		mockStore.On("ListLedgerEntries", mock.Anything, "acct1", int32(7)).Return([]models.LedgerEntry{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/wallets/acct1/ledger?limit=7", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Unknown Route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
