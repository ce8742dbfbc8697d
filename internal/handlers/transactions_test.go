package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"twobolsos/internal/services"
	"twobolsos/internal/store"
)

func TestCreateTransaction(t *testing.T) {
	var gotInput services.CreateTransactionInput
	service := &fakeService{
		createTransaction: func(userID string, input services.CreateTransactionInput) (store.Transaction, error) {
			gotInput = input
			createdBy := userID
			return store.Transaction{
				ID: "tx-1", WalletID: input.WalletID, Tag: input.Tag, Description: input.Description,
				AmountMinor: input.AmountMinor, Kind: input.Kind, Date: input.Date, CreatedByID: &createdBy,
			}, nil
		},
	}
	h := newTestHandler(newFakeUserStore(), service)

	body := `{"negocio_id": "wallet-1", "tag": "Mercado", "descricao": "Feira", "valor": "25.50", "tipo": "despesa", "data": "2024-12-15"}`
	r := httptest.NewRequest(http.MethodPost, "/transacoes/", strings.NewReader(body))
	r.Header.Set("Authorization", bearerToken(t, "user-1", "maria"))
	w := doRequest(h, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if gotInput.AmountMinor != 2550 {
		t.Fatalf("expected amount 2550, got %d", gotInput.AmountMinor)
	}
	var resp statementEntry
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Valor != "25.50" || resp.Tipo != "despesa" || resp.CreatedByName != "maria" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateTransactionNumericAmount(t *testing.T) {
	service := &fakeService{
		createTransaction: func(userID string, input services.CreateTransactionInput) (store.Transaction, error) {
			if input.AmountMinor != 1000 {
				t.Fatalf("expected amount 1000, got %d", input.AmountMinor)
			}
			return store.Transaction{ID: "tx-1", AmountMinor: input.AmountMinor}, nil
		},
	}
	h := newTestHandler(newFakeUserStore(), service)

	body := `{"negocio_id": "wallet-1", "valor": 10, "tipo": "receita", "data": "2024-12-15"}`
	r := httptest.NewRequest(http.MethodPost, "/transacoes/", strings.NewReader(body))
	r.Header.Set("Authorization", bearerToken(t, "user-1", "maria"))
	w := doRequest(h, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateTransactionTooManyDecimals(t *testing.T) {
	h := newTestHandler(newFakeUserStore(), &fakeService{})
	body := `{"negocio_id": "wallet-1", "valor": "10.999", "tipo": "despesa", "data": "2024-12-15"}`
	r := httptest.NewRequest(http.MethodPost, "/transacoes/", strings.NewReader(body))
	r.Header.Set("Authorization", bearerToken(t, "user-1", "maria"))
	w := doRequest(h, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateTransactionInvalidKind(t *testing.T) {
	service := &fakeService{
		createTransaction: func(userID string, input services.CreateTransactionInput) (store.Transaction, error) {
			return store.Transaction{}, services.ErrInvalidKind
		},
	}
	h := newTestHandler(newFakeUserStore(), service)
	body := `{"negocio_id": "wallet-1", "valor": "10.00", "tipo": "transferencia", "data": "2024-12-15"}`
	r := httptest.NewRequest(http.MethodPost, "/transacoes/", strings.NewReader(body))
	r.Header.Set("Authorization", bearerToken(t, "user-1", "maria"))
	w := doRequest(h, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteTransaction(t *testing.T) {
	var gotTransactionID string
	service := &fakeService{
		deleteTransaction: func(userID, transactionID string) error {
			gotTransactionID = transactionID
			return nil
		},
	}
	h := newTestHandler(newFakeUserStore(), service)

	r := httptest.NewRequest(http.MethodDelete, "/transacoes/tx-1", nil)
	r.Header.Set("Authorization", bearerToken(t, "user-1", "maria"))
	w := doRequest(h, r)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if gotTransactionID != "tx-1" {
		t.Fatalf("unexpected transaction id: %s", gotTransactionID)
	}
}

func TestDeleteTransactionNotFound(t *testing.T) {
	service := &fakeService{
		deleteTransaction: func(userID, transactionID string) error {
			return services.ErrTransactionNotFound
		},
	}
	h := newTestHandler(newFakeUserStore(), service)

	r := httptest.NewRequest(http.MethodDelete, "/transacoes/missing", nil)
	r.Header.Set("Authorization", bearerToken(t, "user-1", "maria"))
	w := doRequest(h, r)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
