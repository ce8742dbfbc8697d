package store

import "context"

const (
	KindIncome  = "receita"
	KindExpense = "despesa"
)

type TransactionStore struct {
	db DB
}

func NewTransactionStore(db DB) *TransactionStore {
	return &TransactionStore{db: db}
}

type Transaction struct {
	ID             string  `db:"id"`
	WalletID       string  `db:"wallet_id"`
	Tag            string  `db:"tag"`
	Description    string  `db:"description"`
	AmountMinor    int64   `db:"amount_minor"`
	Kind           string  `db:"kind"`
	Date           string  `db:"tx_date"`
	DistanceKM     float64 `db:"distance_km"`
	FuelLiters     float64 `db:"fuel_liters"`
	FixedExpenseID *string `db:"fixed_expense_id"`
	CreatedByID    *string `db:"created_by_id"`
}

type TransactionWithCreator struct {
	Transaction
	CreatorName *string `db:"creator_name"`
}

type TransactionInput struct {
	ID             string
	WalletID       string
	Tag            string
	Description    string
	AmountMinor    int64
	Kind           string
	Date           string
	DistanceKM     float64
	FuelLiters     float64
	FixedExpenseID *string
	CreatedByID    *string
}

func (s *TransactionStore) Create(ctx context.Context, tx Execer, input TransactionInput) error {
	query := `
		INSERT INTO transactions (id, wallet_id, tag, description, amount_minor, kind, tx_date, distance_km, fuel_liters, fixed_expense_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := tx.ExecContext(ctx, query,
		input.ID, input.WalletID, input.Tag, input.Description, input.AmountMinor,
		input.Kind, input.Date, input.DistanceKM, input.FuelLiters, input.FixedExpenseID, input.CreatedByID,
	)
	return err
}

func (s *TransactionStore) GetByID(ctx context.Context, transactionID string) (Transaction, error) {
	var row Transaction
	err := s.db.GetContext(ctx, &row, `
		SELECT id, wallet_id, tag, description, amount_minor, kind, tx_date, distance_km, fuel_liters, fixed_expense_id, created_by_id
		FROM transactions
		WHERE id = $1
	`, transactionID)
	if err != nil {
		return Transaction{}, err
	}
	return row, nil
}

// ListByWallet returns every transaction of the wallet, newest date first,
// joined with the creating user's name when one is recorded.
func (s *TransactionStore) ListByWallet(ctx context.Context, walletID string) ([]TransactionWithCreator, error) {
	var rows []TransactionWithCreator
	err := s.db.SelectContext(ctx, &rows, `
		SELECT t.id, t.wallet_id, t.tag, t.description, t.amount_minor, t.kind, t.tx_date,
		       t.distance_km, t.fuel_liters, t.fixed_expense_id, t.created_by_id,
		       u.username AS creator_name
		FROM transactions t
		LEFT JOIN users u ON u.id = t.created_by_id
		WHERE t.wallet_id = $1
		ORDER BY t.tx_date DESC, t.created_at DESC
	`, walletID)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByFixedExpense returns the payments linked to a fixed expense with
// tx_date >= since. Pass "" for since to fetch all of them.
func (s *TransactionStore) ListByFixedExpense(ctx context.Context, fixedExpenseID, since string) ([]Transaction, error) {
	var rows []Transaction
	query := `
		SELECT id, wallet_id, tag, description, amount_minor, kind, tx_date, distance_km, fuel_liters, fixed_expense_id, created_by_id
		FROM transactions
		WHERE fixed_expense_id = $1
	`
	args := []any{fixedExpenseID}
	if since != "" {
		query += ` AND tx_date >= $2`
		args = append(args, since)
	}
	err := s.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *TransactionStore) Delete(ctx context.Context, tx Execer, transactionID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, transactionID)
	return err
}

func (s *TransactionStore) DeleteByWallet(ctx context.Context, tx Execer, walletID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE wallet_id = $1`, walletID)
	return err
}
