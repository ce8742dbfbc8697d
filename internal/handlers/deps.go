package handlers

import (
	"context"

	"twobolsos/internal/services"
	"twobolsos/internal/store"
)

type UserStore interface {
	Create(ctx context.Context, tx store.Execer, id, username string, email *string, passwordHash string) error
	GetByUsername(ctx context.Context, username string) (store.User, error)
	GetByID(ctx context.Context, userID string) (store.User, error)
}

type WalletService interface {
	CreateWallet(ctx context.Context, userID string, input services.CreateWalletInput) (store.Wallet, error)
	ListWallets(ctx context.Context, userID string) ([]store.WalletSummary, error)
	DeleteWallet(ctx context.Context, userID, walletID string) error
	Dashboard(ctx context.Context, userID, walletID string, days int) (services.Dashboard, error)
	CreateTransaction(ctx context.Context, userID string, input services.CreateTransactionInput) (store.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	CreateInvite(ctx context.Context, userID, walletID string) (store.Invite, error)
	RedeemInvite(ctx context.Context, userID, code string) (store.WalletWithOwner, error)
	ListMembers(ctx context.Context, userID, walletID string) ([]store.Member, error)
	UpdateMemberRole(ctx context.Context, userID, walletID, targetUserID, role string) error
	RemoveMember(ctx context.Context, userID, walletID, targetUserID string) error
	CreateFixedExpense(ctx context.Context, userID string, input services.CreateFixedExpenseInput) (store.FixedExpense, error)
	ListFixedExpenses(ctx context.Context, userID, walletID string) ([]services.FixedExpenseStatus, error)
	PayFixedExpense(ctx context.Context, userID, walletID, fixedExpenseID string) (store.Transaction, error)
	DeleteFixedExpense(ctx context.Context, userID, walletID, fixedExpenseID string) error
}
