package handlers

import (
	"net/http"

	"twobolsos/internal/config"
	"twobolsos/internal/db"
	"twobolsos/internal/middleware"
	"twobolsos/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg      config.Config
	txRunner db.TxRunner
	users    UserStore
	service  WalletService
	hub      *websocket.Hub
}

func New(cfg config.Config, txRunner db.TxRunner, users UserStore, service WalletService, hub *websocket.Hub) *Handler {
	return &Handler{
		cfg:      cfg,
		txRunner: txRunner,
		users:    users,
		service:  service,
		hub:      hub,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/token", h.Login)
		r.With(middleware.Auth(h.cfg.JWTSecret)).Get("/me", h.Me)
	})

	router.Route("/negocios", func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))
		r.Post("/", h.CreateWallet)
		r.Get("/", h.ListWallets)
		r.Post("/join", h.JoinWallet)
		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", h.DeleteWallet)
			r.Get("/dashboard", h.Dashboard)
			r.Post("/invite", h.CreateInvite)
			r.Get("/members", h.ListMembers)
			r.Patch("/members/{userID}", h.UpdateMemberRole)
			r.Delete("/members/{userID}", h.RemoveMember)
			r.Post("/fixas", h.CreateFixedExpense)
			r.Get("/fixas", h.ListFixedExpenses)
			r.Post("/fixas/{fixaID}/pagar", h.PayFixedExpense)
			r.Delete("/fixas/{fixaID}", h.DeleteFixedExpense)
		})
	})

	router.Route("/transacoes", func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))
		r.Post("/", h.CreateTransaction)
		r.Delete("/{id}", h.DeleteTransaction)
	})

	router.Get("/ws/updates", h.WSUpdates)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}
