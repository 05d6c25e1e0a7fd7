package wallets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/clipframe/clipframe/pkg/api"
	"github.com/clipframe/clipframe/pkg/mapping"
	"github.com/clipframe/clipframe/pkg/storage"
)

// WalletsHandler holds the dependencies for wallet-related handlers.
type WalletsHandler struct {
	Store storage.WalletStore
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(store storage.WalletStore) *WalletsHandler {
	return &WalletsHandler{Store: store}
}

// CreateWallet handles the logic for provisioning a new wallet.
func (h *WalletsHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	// Decode the request body.
	var newWallet api.NewWallet
	if err := json.NewDecoder(r.Body).Decode(&newWallet); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newWallet.AccountId == "" {
		http.Error(w, "account_id is required", http.StatusBadRequest)
		return
	}

	// Call the storage layer to create the wallet.
	createdWallet, err := h.Store.CreateWallet(r.Context(), mapping.ToDomainNewWallet(&newWallet))
	if err != nil {
		if errors.Is(err, storage.ErrWalletExists) {
			http.Error(w, "Wallet for this account already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create wallet: %v", err), http.StatusInternalServerError)
		}
		return
	}

	respondJSON(w, http.StatusCreated, mapping.ToApiWallet(createdWallet))
}

// GetWalletByAccountId handles the logic for retrieving an account's wallet.
func (h *WalletsHandler) GetWalletByAccountId(w http.ResponseWriter, r *http.Request, accountId string) {
	domainWallet, err := h.Store.GetWallet(r.Context(), accountId)
	if err != nil {
		if errors.Is(err, storage.ErrWalletNotFound) {
			http.Error(w, "Wallet not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve wallet: %v", err), http.StatusInternalServerError)
		}
		return
	}

	respondJSON(w, http.StatusOK, mapping.ToApiWallet(domainWallet))
}

// DeleteWallet handles the logic for deleting an account's wallet.
func (h *WalletsHandler) DeleteWallet(w http.ResponseWriter, r *http.Request, accountId string) {
	if err := h.Store.DeleteWallet(r.Context(), accountId); err != nil {
		if errors.Is(err, storage.ErrWalletNotFound) {
			http.Error(w, "Wallet not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to delete wallet: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListWallets handles the logic for retrieving all wallets.
func (h *WalletsHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	domainWallets, err := h.Store.ListWallets(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve wallets: %v", err), http.StatusInternalServerError)
		return
	}

	apiWallets := make([]*api.Wallet, len(domainWallets))
	for i, wallet := range domainWallets {
		apiWallets[i] = mapping.ToApiWallet(&wallet)
	}

	respondJSON(w, http.StatusOK, apiWallets)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
