package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"twobolsos/internal/services"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError translates the service sentinels into HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrWalletNotFound),
		errors.Is(err, services.ErrTransactionNotFound),
		errors.Is(err, services.ErrFixedExpenseNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrInviteNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInviteExpired),
		errors.Is(err, services.ErrSelfInvite),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidKind),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidDueDay):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAlreadyPaid):
		respondError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("handlers: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
