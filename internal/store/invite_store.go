package store

import (
	"context"
	"time"
)

type InviteStore struct {
	db DB
}

func NewInviteStore(db DB) *InviteStore {
	return &InviteStore{db: db}
}

type Invite struct {
	ID        string    `db:"id"`
	Code      string    `db:"code"`
	WalletID  string    `db:"wallet_id"`
	ExpiresAt time.Time `db:"expires_at"`
	Active    bool      `db:"active"`
}

type InviteInput struct {
	ID        string
	Code      string
	WalletID  string
	ExpiresAt time.Time
}

func (s *InviteStore) Create(ctx context.Context, input InviteInput) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invite_codes (id, code, wallet_id, expires_at, active)
		VALUES ($1, $2, $3, $4, TRUE)
	`, input.ID, input.Code, input.WalletID, input.ExpiresAt)
	return err
}

// GetActiveByCode looks up an invite that has not been deactivated. Expiry
// is checked by the caller so it can report it distinctly.
func (s *InviteStore) GetActiveByCode(ctx context.Context, code string) (Invite, error) {
	var row Invite
	err := s.db.GetContext(ctx, &row, `
		SELECT id, code, wallet_id, expires_at, active
		FROM invite_codes
		WHERE code = $1 AND active = TRUE
	`, code)
	if err != nil {
		return Invite{}, err
	}
	return row, nil
}

func (s *InviteStore) DeleteByWallet(ctx context.Context, tx Execer, walletID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM invite_codes WHERE wallet_id = $1`, walletID)
	return err
}
