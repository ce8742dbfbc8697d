package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"twobolsos/internal/config"
	"twobolsos/internal/middleware"
	"twobolsos/internal/services"
	"twobolsos/internal/store"
	"twobolsos/internal/websocket"

	"github.com/jmoiron/sqlx"
)

type stubTxRunner struct {
	err error
}

func (r stubTxRunner) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(nil)
}

type fakeUserStore struct {
	users     map[string]store.User
	createErr error
	created   []store.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]store.User{}}
}

func (s *fakeUserStore) Create(ctx context.Context, tx store.Execer, id, username string, email *string, passwordHash string) error {
	if s.createErr != nil {
		return s.createErr
	}
	user := store.User{ID: id, Username: username, Email: email, PasswordHash: passwordHash}
	s.users[username] = user
	s.created = append(s.created, user)
	return nil
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (store.User, error) {
	user, ok := s.users[username]
	if !ok {
		return store.User{}, sql.ErrNoRows
	}
	return user, nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, userID string) (store.User, error) {
	for _, user := range s.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return store.User{}, sql.ErrNoRows
}

// fakeService routes every method through an optional function field so a
// test only wires what it exercises.
type fakeService struct {
	createWallet       func(userID string, input services.CreateWalletInput) (store.Wallet, error)
	listWallets        func(userID string) ([]store.WalletSummary, error)
	deleteWallet       func(userID, walletID string) error
	dashboard          func(userID, walletID string, days int) (services.Dashboard, error)
	createTransaction  func(userID string, input services.CreateTransactionInput) (store.Transaction, error)
	deleteTransaction  func(userID, transactionID string) error
	createInvite       func(userID, walletID string) (store.Invite, error)
	redeemInvite       func(userID, code string) (store.WalletWithOwner, error)
	listMembers        func(userID, walletID string) ([]store.Member, error)
	updateMemberRole   func(userID, walletID, targetUserID, role string) error
	removeMember       func(userID, walletID, targetUserID string) error
	createFixedExpense func(userID string, input services.CreateFixedExpenseInput) (store.FixedExpense, error)
	listFixedExpenses  func(userID, walletID string) ([]services.FixedExpenseStatus, error)
	payFixedExpense    func(userID, walletID, fixedExpenseID string) (store.Transaction, error)
	deleteFixedExpense func(userID, walletID, fixedExpenseID string) error
}

func (s *fakeService) CreateWallet(ctx context.Context, userID string, input services.CreateWalletInput) (store.Wallet, error) {
	return s.createWallet(userID, input)
}

func (s *fakeService) ListWallets(ctx context.Context, userID string) ([]store.WalletSummary, error) {
	return s.listWallets(userID)
}

func (s *fakeService) DeleteWallet(ctx context.Context, userID, walletID string) error {
	return s.deleteWallet(userID, walletID)
}

func (s *fakeService) Dashboard(ctx context.Context, userID, walletID string, days int) (services.Dashboard, error) {
	return s.dashboard(userID, walletID, days)
}

func (s *fakeService) CreateTransaction(ctx context.Context, userID string, input services.CreateTransactionInput) (store.Transaction, error) {
	return s.createTransaction(userID, input)
}

func (s *fakeService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	return s.deleteTransaction(userID, transactionID)
}

func (s *fakeService) CreateInvite(ctx context.Context, userID, walletID string) (store.Invite, error) {
	return s.createInvite(userID, walletID)
}

func (s *fakeService) RedeemInvite(ctx context.Context, userID, code string) (store.WalletWithOwner, error) {
	return s.redeemInvite(userID, code)
}

func (s *fakeService) ListMembers(ctx context.Context, userID, walletID string) ([]store.Member, error) {
	return s.listMembers(userID, walletID)
}

func (s *fakeService) UpdateMemberRole(ctx context.Context, userID, walletID, targetUserID, role string) error {
	return s.updateMemberRole(userID, walletID, targetUserID, role)
}

func (s *fakeService) RemoveMember(ctx context.Context, userID, walletID, targetUserID string) error {
	return s.removeMember(userID, walletID, targetUserID)
}

func (s *fakeService) CreateFixedExpense(ctx context.Context, userID string, input services.CreateFixedExpenseInput) (store.FixedExpense, error) {
	return s.createFixedExpense(userID, input)
}

func (s *fakeService) ListFixedExpenses(ctx context.Context, userID, walletID string) ([]services.FixedExpenseStatus, error) {
	return s.listFixedExpenses(userID, walletID)
}

func (s *fakeService) PayFixedExpense(ctx context.Context, userID, walletID, fixedExpenseID string) (store.Transaction, error) {
	return s.payFixedExpense(userID, walletID, fixedExpenseID)
}

func (s *fakeService) DeleteFixedExpense(ctx context.Context, userID, walletID, fixedExpenseID string) error {
	return s.deleteFixedExpense(userID, walletID, fixedExpenseID)
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		AllowedOrigins: "*",
	}
}

func newTestHandler(users UserStore, service WalletService) *Handler {
	return New(testConfig(), stubTxRunner{}, users, service, websocket.NewHub())
}

// withPrincipal stamps the authenticated caller directly on the request so
// handlers can be tested without going through the Auth middleware.
func withPrincipal(r *http.Request, userID, username string) *http.Request {
	ctx := middleware.WithPrincipal(r.Context(), middleware.Principal{UserID: userID, Username: username})
	return r.WithContext(ctx)
}
