package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"twobolsos/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type inviteResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type memberResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *Handler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	invite, err := h.service.CreateInvite(r.Context(), principal.UserID, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, inviteResponse{
		Code:      invite.Code,
		ExpiresAt: invite.ExpiresAt,
	})
}

func (h *Handler) JoinWallet(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "missing invite code")
		return
	}
	wallet, err := h.service.RedeemInvite(r.Context(), principal.UserID, code)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"negocio_id": wallet.ID,
		"nome":       wallet.Name,
	})
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	rows, err := h.service.ListMembers(r.Context(), principal.UserID, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	members := make([]memberResponse, 0, len(rows))
	for _, row := range rows {
		members = append(members, memberResponse{
			UserID:   row.UserID,
			Username: row.Username,
			Role:     row.Role,
		})
	}
	respondJSON(w, http.StatusOK, members)
}

func (h *Handler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	targetUserID := chi.URLParam(r, "userID")
	err := h.service.UpdateMemberRole(r.Context(), principal.UserID, chi.URLParam(r, "id"), targetUserID, req.Role)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"user_id": targetUserID,
		"role":    req.Role,
	})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	err := h.service.RemoveMember(r.Context(), principal.UserID, chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
