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

type fixedExpenseRequest struct {
	Nome          string      `json:"nome"`
	Valor         json.Number `json:"valor"`
	Tag           string      `json:"tag"`
	DiaVencimento int         `json:"dia_vencimento"`
}

type fixedExpenseResponse struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Valor         string `json:"valor"`
	Tag           string `json:"tag"`
	DiaVencimento int    `json:"dia_vencimento"`
	PagoNesteMes  bool   `json:"pago_neste_mes"`
}

func (h *Handler) CreateFixedExpense(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	var req fixedExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amountMinor, err := money.ParseMinor(req.Valor.String())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	fixedExpense, err := h.service.CreateFixedExpense(r.Context(), principal.UserID, services.CreateFixedExpenseInput{
		WalletID:    chi.URLParam(r, "id"),
		Name:        req.Nome,
		AmountMinor: amountMinor,
		Tag:         req.Tag,
		DueDay:      req.DiaVencimento,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, fixedExpenseResponse{
		ID:            fixedExpense.ID,
		Nome:          fixedExpense.Name,
		Valor:         money.FormatMinor(fixedExpense.AmountMinor),
		Tag:           fixedExpense.Tag,
		DiaVencimento: fixedExpense.DueDay,
		PagoNesteMes:  false,
	})
}

func (h *Handler) ListFixedExpenses(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	statuses, err := h.service.ListFixedExpenses(r.Context(), principal.UserID, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	fixedExpenses := make([]fixedExpenseResponse, 0, len(statuses))
	for _, status := range statuses {
		fixedExpenses = append(fixedExpenses, fixedExpenseResponse{
			ID:            status.ID,
			Nome:          status.Name,
			Valor:         money.FormatMinor(status.AmountMinor),
			Tag:           status.Tag,
			DiaVencimento: status.DueDay,
			PagoNesteMes:  status.PaidThisMonth,
		})
	}
	respondJSON(w, http.StatusOK, fixedExpenses)
}

func (h *Handler) PayFixedExpense(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	payment, err := h.service.PayFixedExpense(r.Context(), principal.UserID, chi.URLParam(r, "id"), chi.URLParam(r, "fixaID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, newStatementEntry(store.TransactionWithCreator{
		Transaction: payment,
		CreatorName: &principal.Username,
	}))
}

func (h *Handler) DeleteFixedExpense(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	if err := h.service.DeleteFixedExpense(r.Context(), principal.UserID, chi.URLParam(r, "id"), chi.URLParam(r, "fixaID")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
