package store

import "context"

type ShareStore struct {
	db DB
}

func NewShareStore(db DB) *ShareStore {
	return &ShareStore{db: db}
}

type Share struct {
	UserID   string `db:"user_id"`
	WalletID string `db:"wallet_id"`
	Role     string `db:"role"`
}

type Member struct {
	UserID   string `db:"user_id"`
	Username string `db:"username"`
	Role     string `db:"role"`
}

func (s *ShareStore) Create(ctx context.Context, tx Execer, userID, walletID, role string) error {
	query := `
		INSERT INTO wallet_shares (user_id, wallet_id, role)
		VALUES ($1, $2, $3)
	`
	_, err := tx.ExecContext(ctx, query, userID, walletID, role)
	return err
}

func (s *ShareStore) ListByWallet(ctx context.Context, walletID string) ([]Share, error) {
	var rows []Share
	err := s.db.SelectContext(ctx, &rows, `
		SELECT user_id, wallet_id, role
		FROM wallet_shares
		WHERE wallet_id = $1
	`, walletID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListMembersByWallet returns the share rows joined with usernames, for the
// member listing. The owner is not in this set.
func (s *ShareStore) ListMembersByWallet(ctx context.Context, walletID string) ([]Member, error) {
	var rows []Member
	err := s.db.SelectContext(ctx, &rows, `
		SELECT s.user_id, u.username, s.role
		FROM wallet_shares s
		JOIN users u ON u.id = s.user_id
		WHERE s.wallet_id = $1
		ORDER BY u.username
	`, walletID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateRole returns the number of rows changed; zero means the target has
// no share on the wallet.
func (s *ShareStore) UpdateRole(ctx context.Context, tx Execer, userID, walletID, role string) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE wallet_shares
		SET role = $1
		WHERE user_id = $2 AND wallet_id = $3
	`, role, userID, walletID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *ShareStore) Delete(ctx context.Context, tx Execer, userID, walletID string) error {
	_, err := tx.ExecContext(ctx, `
		DELETE FROM wallet_shares
		WHERE user_id = $1 AND wallet_id = $2
	`, userID, walletID)
	return err
}

func (s *ShareStore) DeleteByWallet(ctx context.Context, tx Execer, walletID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM wallet_shares WHERE wallet_id = $1`, walletID)
	return err
}
