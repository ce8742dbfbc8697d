package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"twobolsos/internal/middleware"
	"twobolsos/internal/money"
	"twobolsos/internal/services"
	"twobolsos/internal/store"

	"github.com/go-chi/chi/v5"
)

// selfOwnerName replaces the caller's own username in owner fields.
const selfOwnerName = "Você"

type walletRequest struct {
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	Cor       string `json:"cor"`
}

type walletResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
	Cor       string `json:"cor"`
	Saldo     string `json:"saldo"`
	OwnerID   string `json:"owner_id"`
	OwnerName string `json:"owner_name"`
	Role      string `json:"role"`
}

func (h *Handler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	var req walletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wallet, err := h.service.CreateWallet(r.Context(), principal.UserID, services.CreateWalletInput{
		Name:     req.Nome,
		Category: req.Categoria,
		Color:    req.Cor,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, walletResponse{
		ID:        wallet.ID,
		Nome:      wallet.Name,
		Categoria: wallet.Category,
		Cor:       wallet.Color,
		Saldo:     money.FormatMinor(0),
		OwnerID:   wallet.OwnerID,
		OwnerName: selfOwnerName,
		Role:      "owner",
	})
}

func (h *Handler) ListWallets(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	summaries, err := h.service.ListWallets(r.Context(), principal.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	wallets := make([]walletResponse, 0, len(summaries))
	for _, summary := range summaries {
		ownerName := summary.OwnerUsername
		if summary.OwnerID == principal.UserID {
			ownerName = selfOwnerName
		}
		wallets = append(wallets, walletResponse{
			ID:        summary.ID,
			Nome:      summary.Name,
			Categoria: summary.Category,
			Cor:       summary.Color,
			Saldo:     money.FormatMinor(summary.BalanceMinor),
			OwnerID:   summary.OwnerID,
			OwnerName: ownerName,
			Role:      summary.Role,
		})
	}
	respondJSON(w, http.StatusOK, wallets)
}

func (h *Handler) DeleteWallet(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	if err := h.service.DeleteWallet(r.Context(), principal.UserID, chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type kpisPayload struct {
	Receita     string  `json:"receita"`
	Despesa     string  `json:"despesa"`
	Saldo       string  `json:"saldo"`
	TotalKM     float64 `json:"total_km"`
	TotalLitros float64 `json:"total_litros"`
	Autonomia   string  `json:"autonomia"`
	Rendimento  string  `json:"rendimento"`
}

type seriesPayload struct {
	Labels   []string `json:"labels"`
	Receitas []string `json:"receitas"`
	Despesas []string `json:"despesas"`
}

type statementEntry struct {
	ID             string  `json:"id"`
	Tag            string  `json:"tag"`
	Descricao      string  `json:"descricao"`
	Valor          string  `json:"valor"`
	Tipo           string  `json:"tipo"`
	Data           string  `json:"data"`
	KM             float64 `json:"km"`
	Litros         float64 `json:"litros"`
	FixedExpenseID *string `json:"fixed_expense_id"`
	CreatedByName  string  `json:"created_by_name"`
}

type dashboardResponse struct {
	ID        string            `json:"id"`
	Nome      string            `json:"nome"`
	Categoria string            `json:"categoria"`
	Cor       string            `json:"cor"`
	Role      string            `json:"role"`
	KPIs      kpisPayload       `json:"kpis"`
	Grafico   seriesPayload     `json:"grafico"`
	Pizza     map[string]string `json:"pizza"`
	Extrato   []statementEntry  `json:"extrato"`
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.PrincipalFromContext(r.Context())
	days, _ := strconv.Atoi(r.URL.Query().Get("dias"))
	dashboard, err := h.service.Dashboard(r.Context(), principal.UserID, chi.URLParam(r, "id"), days)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	pizza := make(map[string]string, len(dashboard.Categories))
	for tag, total := range dashboard.Categories {
		pizza[tag] = money.FormatMinor(total)
	}
	extrato := make([]statementEntry, 0, len(dashboard.Statement))
	for _, row := range dashboard.Statement {
		extrato = append(extrato, newStatementEntry(row))
	}

	respondJSON(w, http.StatusOK, dashboardResponse{
		ID:        dashboard.Wallet.ID,
		Nome:      dashboard.Wallet.Name,
		Categoria: dashboard.Wallet.Category,
		Cor:       dashboard.Wallet.Color,
		Role:      dashboard.Role,
		KPIs: kpisPayload{
			Receita:     money.FormatMinor(dashboard.KPIs.IncomeMinor),
			Despesa:     money.FormatMinor(dashboard.KPIs.ExpenseMinor),
			Saldo:       money.FormatMinor(dashboard.KPIs.BalanceMinor),
			TotalKM:     dashboard.KPIs.TotalDistanceKM,
			TotalLitros: dashboard.KPIs.TotalFuelLiters,
			Autonomia:   dashboard.KPIs.FuelEfficiency.StringFixed(2),
			Rendimento:  dashboard.KPIs.IncomePerKM.StringFixed(2),
		},
		Grafico: seriesPayload{
			Labels:   dashboard.Series.Labels,
			Receitas: formatMinorSlice(dashboard.Series.IncomeMinor),
			Despesas: formatMinorSlice(dashboard.Series.ExpenseMinor),
		},
		Pizza:   pizza,
		Extrato: extrato,
	})
}

func newStatementEntry(row store.TransactionWithCreator) statementEntry {
	createdBy := "N/A"
	if row.CreatorName != nil {
		createdBy = *row.CreatorName
	}
	return statementEntry{
		ID:             row.ID,
		Tag:            row.Tag,
		Descricao:      row.Description,
		Valor:          money.FormatMinor(row.AmountMinor),
		Tipo:           row.Kind,
		Data:           row.Date,
		KM:             row.DistanceKM,
		Litros:         row.FuelLiters,
		FixedExpenseID: row.FixedExpenseID,
		CreatedByName:  createdBy,
	}
}

func formatMinorSlice(values []int64) []string {
	formatted := make([]string, len(values))
	for i, value := range values {
		formatted[i] = money.FormatMinor(value)
	}
	return formatted
}
