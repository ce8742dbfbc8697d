package store

import "context"

type FixedExpenseStore struct {
	db DB
}

func NewFixedExpenseStore(db DB) *FixedExpenseStore {
	return &FixedExpenseStore{db: db}
}

type FixedExpense struct {
	ID          string `db:"id"`
	WalletID    string `db:"wallet_id"`
	Name        string `db:"name"`
	AmountMinor int64  `db:"amount_minor"`
	Tag         string `db:"tag"`
	DueDay      int    `db:"due_day"`
}

func (s *FixedExpenseStore) Create(ctx context.Context, tx Execer, input FixedExpense) error {
	query := `
		INSERT INTO fixed_expenses (id, wallet_id, name, amount_minor, tag, due_day)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := tx.ExecContext(ctx, query, input.ID, input.WalletID, input.Name, input.AmountMinor, input.Tag, input.DueDay)
	return err
}

func (s *FixedExpenseStore) GetByID(ctx context.Context, fixedExpenseID string) (FixedExpense, error) {
	var row FixedExpense
	err := s.db.GetContext(ctx, &row, `
		SELECT id, wallet_id, name, amount_minor, tag, due_day
		FROM fixed_expenses
		WHERE id = $1
	`, fixedExpenseID)
	if err != nil {
		return FixedExpense{}, err
	}
	return row, nil
}

func (s *FixedExpenseStore) ListByWallet(ctx context.Context, walletID string) ([]FixedExpense, error) {
	var rows []FixedExpense
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, wallet_id, name, amount_minor, tag, due_day
		FROM fixed_expenses
		WHERE wallet_id = $1
		ORDER BY due_day, name
	`, walletID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *FixedExpenseStore) Delete(ctx context.Context, tx Execer, fixedExpenseID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM fixed_expenses WHERE id = $1`, fixedExpenseID)
	return err
}

func (s *FixedExpenseStore) DeleteByWallet(ctx context.Context, tx Execer, walletID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM fixed_expenses WHERE wallet_id = $1`, walletID)
	return err
}
