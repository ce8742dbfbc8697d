package handlers

import (
	"net/http"
	"strings"

	"twobolsos/internal/auth"
	"twobolsos/internal/websocket"
)

// WSUpdates authenticates via a token query parameter, falling back to the
// Authorization header. A bad token still completes the upgrade so the
// client sees a proper close frame instead of a failed handshake.
func (h *Handler) WSUpdates(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
	}
	claims, err := auth.ParseToken(h.cfg.JWTSecret, token)
	if err != nil {
		websocket.Reject(w, r, "invalid token")
		return
	}
	websocket.ServeWS(w, r, h.hub, claims.UserID)
}
