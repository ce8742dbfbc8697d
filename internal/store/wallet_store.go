package store

import (
	"context"
	"time"
)

const (
	CategoryStandard = "STANDARD"
	CategoryDriver   = "DRIVER"
)

type WalletStore struct {
	db DB
}

func NewWalletStore(db DB) *WalletStore {
	return &WalletStore{db: db}
}

type Wallet struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Color     string    `db:"color"`
	OwnerID   string    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
}

type WalletWithOwner struct {
	Wallet
	OwnerUsername string `db:"owner_username"`
}

// WalletSummary is one row of the wallet list: the wallet plus the caller's
// role and the net balance over all its transactions.
type WalletSummary struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Category      string `db:"category"`
	Color         string `db:"color"`
	OwnerID       string `db:"owner_id"`
	OwnerUsername string `db:"owner_username"`
	Role          string `db:"role"`
	BalanceMinor  int64  `db:"balance_minor"`
}

func (s *WalletStore) Create(ctx context.Context, tx Execer, id, name, category, color, ownerID string) error {
	query := `
		INSERT INTO wallets (id, name, category, color, owner_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := tx.ExecContext(ctx, query, id, name, category, color, ownerID)
	return err
}

func (s *WalletStore) GetByID(ctx context.Context, walletID string) (WalletWithOwner, error) {
	var row WalletWithOwner
	err := s.db.GetContext(ctx, &row, `
		SELECT w.id, w.name, w.category, w.color, w.owner_id, w.created_at,
		       u.username AS owner_username
		FROM wallets w
		JOIN users u ON u.id = w.owner_id
		WHERE w.id = $1
	`, walletID)
	if err != nil {
		return WalletWithOwner{}, err
	}
	return row, nil
}

// ListForUser returns owned and shared wallets in one pass, with the
// caller's role and the balance computed from the transaction rows.
func (s *WalletStore) ListForUser(ctx context.Context, userID string) ([]WalletSummary, error) {
	var rows []WalletSummary
	err := s.db.SelectContext(ctx, &rows, `
		SELECT w.id,
		       w.name,
		       w.category,
		       w.color,
		       w.owner_id,
		       u.username AS owner_username,
		       CASE WHEN w.owner_id = $1 THEN 'owner' ELSE s.role END AS role,
		       COALESCE(SUM(CASE t.kind WHEN 'receita' THEN t.amount_minor
		                                WHEN 'despesa' THEN -t.amount_minor
		                                ELSE 0 END), 0) AS balance_minor
		FROM wallets w
		JOIN users u ON u.id = w.owner_id
		LEFT JOIN wallet_shares s ON s.wallet_id = w.id AND s.user_id = $1
		LEFT JOIN transactions t ON t.wallet_id = w.id
		WHERE w.owner_id = $1 OR s.user_id IS NOT NULL
		GROUP BY w.id, w.name, w.category, w.color, w.owner_id, u.username, s.role, w.created_at
		ORDER BY w.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *WalletStore) Delete(ctx context.Context, tx Execer, walletID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM wallets WHERE id = $1`, walletID)
	return err
}
