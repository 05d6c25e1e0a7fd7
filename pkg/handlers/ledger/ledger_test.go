package ledger

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clipframe/clipframe/pkg/api"
	"github.com/clipframe/clipframe/pkg/models"
	storage_mocks "github.com/clipframe/clipframe/pkg/storage/mocks"
)

func TestListLedgerEntries(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// 1. Setup
		mockStore := new(storage_mocks.ApiStore)
		handler := NewLedgerHandler(mockStore)

		entries := []models.LedgerEntry{
			{EntryID: "e2", AccountID: "acct1", Amount: 5, Reason: "generation_refund", ReferenceID: "job1", CreatedAt: time.Now()},
			{EntryID: "e1", AccountID: "acct1", Amount: -5, Reason: "generation", ReferenceID: "job1", CreatedAt: time.Now().Add(-time.Minute)},
		}

		// 2. Mock expectations
		mockStore.On("ListLedgerEntries", mock.Anything, "acct1", int32(20)).Return(entries, nil)

		// 3. Execute
		req := httptest.NewRequest(http.MethodGet, "/wallets/acct1/ledger", nil)
		rr := httptest.NewRecorder()

		handler.ListLedgerEntries(rr, req, api.ListLedgerEntriesParams{AccountId: "acct1"})

		// 4. Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var got []api.LedgerEntry
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
		assert.Equal(t, int64(5), got[0].Amount)
		assert.Equal(t, "job1", got[0].ReferenceId)
		mockStore.AssertExpectations(t)
	})

	t.Run("Custom Limit", func(t *testing.T) {
		mockStore := new(storage_mocks.ApiStore)
		handler := NewLedgerHandler(mockStore)

		limit := 5
		mockStore.On("ListLedgerEntries", mock.Anything, "acct1", int32(5)).Return([]models.LedgerEntry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/wallets/acct1/ledger?limit=5", nil)
		rr := httptest.NewRecorder()

		handler.ListLedgerEntries(rr, req, api.ListLedgerEntriesParams{AccountId: "acct1", Limit: &limit})

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStore.AssertExpectations(t)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		mockStore := new(storage_mocks.ApiStore)
		handler := NewLedgerHandler(mockStore)

		mockStore.On("ListLedgerEntries", mock.Anything, "acct1", int32(20)).Return(nil, errors.New("table unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/wallets/acct1/ledger", nil)
		rr := httptest.NewRecorder()

		handler.ListLedgerEntries(rr, req, api.ListLedgerEntriesParams{AccountId: "acct1"})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
