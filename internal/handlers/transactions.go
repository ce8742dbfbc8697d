package handlers

import (
	"encoding/json"
	"net/http"

	"twobolsos/internal/middleware"
	"twobolsos/internal/money"
	"twobolsos/internal/services"
	"twobolsos/internal/store"

	"github.com/go-chi/chi/v5"
)

type transactionRequest struct {
	NegocioID string      `json:"negocio_id"`
	Tag       string      `json:"tag"`
	Descricao string      `json:"descricao"`
	Valor     json.Number `json:"valor"`
	Tipo      string      `json:"tipo"`
	Data      string      `json:"data"`
	KM        float64     `json:"km"`
	Litros    float64     `json:"litros"`
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amountMinor, err := money.ParseMinor(req.Valor.String())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	transaction, err := h.service.CreateTransaction(r.Context(), principal.UserID, services.CreateTransactionInput{
		WalletID:    req.NegocioID,
		Tag:         req.Tag,
		Description: req.Descricao,
		AmountMinor: amountMinor,
		Kind:        req.Tipo,
		Date:        req.Data,
		DistanceKM:  req.KM,
		FuelLiters:  req.Litros,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, newStatementEntry(store.TransactionWithCreator{
		Transaction: transaction,
		CreatorName: &principal.Username,
	}))
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	if err := h.service.DeleteTransaction(r.Context(), principal.UserID, chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
