package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"twobolsos/internal/access"
	"twobolsos/internal/db"
	"twobolsos/internal/ledger"
	"twobolsos/internal/store"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrFixedExpenseNotFound = errors.New("fixed expense not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrInviteNotFound       = errors.New("invite code not found")
	ErrInviteExpired        = errors.New("invite code expired")
	ErrSelfInvite           = errors.New("owner cannot join own wallet")
	ErrForbidden            = errors.New("permission denied")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidName          = errors.New("invalid name")
	ErrInvalidCategory      = errors.New("invalid wallet category")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidKind          = errors.New("invalid transaction kind")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDueDay        = errors.New("invalid due day")
	ErrAlreadyPaid          = errors.New("fixed expense already paid this month")
)

const (
	inviteTTL          = 24 * time.Hour
	inviteCodeLength   = 6
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeAttempts = 5

	dateLayout = "2006-01-02"
)

type WalletStore interface {
	Create(ctx context.Context, tx store.Execer, id, name, category, color, ownerID string) error
	GetByID(ctx context.Context, walletID string) (store.WalletWithOwner, error)
	ListForUser(ctx context.Context, userID string) ([]store.WalletSummary, error)
	Delete(ctx context.Context, tx store.Execer, walletID string) error
}

type ShareStore interface {
	Create(ctx context.Context, tx store.Execer, userID, walletID, role string) error
	ListByWallet(ctx context.Context, walletID string) ([]store.Share, error)
	ListMembersByWallet(ctx context.Context, walletID string) ([]store.Member, error)
	UpdateRole(ctx context.Context, tx store.Execer, userID, walletID, role string) (int64, error)
	Delete(ctx context.Context, tx store.Execer, userID, walletID string) error
	DeleteByWallet(ctx context.Context, tx store.Execer, walletID string) error
}

type InviteStore interface {
	Create(ctx context.Context, input store.InviteInput) error
	GetActiveByCode(ctx context.Context, code string) (store.Invite, error)
	DeleteByWallet(ctx context.Context, tx store.Execer, walletID string) error
}

type TransactionStore interface {
	Create(ctx context.Context, tx store.Execer, input store.TransactionInput) error
	GetByID(ctx context.Context, transactionID string) (store.Transaction, error)
	ListByWallet(ctx context.Context, walletID string) ([]store.TransactionWithCreator, error)
	ListByFixedExpense(ctx context.Context, fixedExpenseID, since string) ([]store.Transaction, error)
	Delete(ctx context.Context, tx store.Execer, transactionID string) error
	DeleteByWallet(ctx context.Context, tx store.Execer, walletID string) error
}

type FixedExpenseStore interface {
	Create(ctx context.Context, tx store.Execer, input store.FixedExpense) error
	GetByID(ctx context.Context, fixedExpenseID string) (store.FixedExpense, error)
	ListByWallet(ctx context.Context, walletID string) ([]store.FixedExpense, error)
	Delete(ctx context.Context, tx store.Execer, fixedExpenseID string) error
	DeleteByWallet(ctx context.Context, tx store.Execer, walletID string) error
}

// Notifier is the realtime fan-out. Delivery is best-effort and never
// reports failure back to the caller.
type Notifier interface {
	SendToUser(message, userID string)
	BroadcastToWallet(message string, userIDs []string)
}

// WalletService implements the wallet, transaction, sharing and fixed
// expense use cases: authorize, mutate inside a store transaction, then
// notify the affected members.
type WalletService struct {
	txRunner      db.TxRunner
	wallets       WalletStore
	shares        ShareStore
	invites       InviteStore
	transactions  TransactionStore
	fixedExpenses FixedExpenseStore
	notifier      Notifier
	now           func() time.Time
}

func NewWalletService(txRunner db.TxRunner, wallets WalletStore, shares ShareStore, invites InviteStore, transactions TransactionStore, fixedExpenses FixedExpenseStore, notifier Notifier) *WalletService {
	return &WalletService{
		txRunner:      txRunner,
		wallets:       wallets,
		shares:        shares,
		invites:       invites,
		transactions:  transactions,
		fixedExpenses: fixedExpenses,
		notifier:      notifier,
		now:           time.Now,
	}
}

// ---- wallets ----

type CreateWalletInput struct {
	Name     string
	Category string
	Color    string
}

func (s *WalletService) CreateWallet(ctx context.Context, userID string, input CreateWalletInput) (store.Wallet, error) {
	if input.Name == "" {
		return store.Wallet{}, ErrInvalidName
	}
	if input.Category == "" {
		input.Category = store.CategoryStandard
	}
	if input.Category != store.CategoryStandard && input.Category != store.CategoryDriver {
		return store.Wallet{}, ErrInvalidCategory
	}
	if input.Color == "" {
		input.Color = "#0d6efd"
	}
	wallet := store.Wallet{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Category: input.Category,
		Color:    input.Color,
		OwnerID:  userID,
	}
	err := s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.wallets.Create(ctx, tx, wallet.ID, wallet.Name, wallet.Category, wallet.Color, wallet.OwnerID)
	})
	if err != nil {
		return store.Wallet{}, err
	}
	s.notifier.SendToUser("UPDATE_LIST", userID)
	return wallet, nil
}

func (s *WalletService) ListWallets(ctx context.Context, userID string) ([]store.WalletSummary, error) {
	return s.wallets.ListForUser(ctx, userID)
}

func (s *WalletService) DeleteWallet(ctx context.Context, userID, walletID string) error {
	wallet, err := s.getWallet(ctx, walletID)
	if err != nil {
		return err
	}
	if wallet.OwnerID != userID {
		return ErrForbidden
	}
	return s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.transactions.DeleteByWallet(ctx, tx, walletID); err != nil {
			return err
		}
		if err := s.fixedExpenses.DeleteByWallet(ctx, tx, walletID); err != nil {
			return err
		}
		if err := s.shares.DeleteByWallet(ctx, tx, walletID); err != nil {
			return err
		}
		if err := s.invites.DeleteByWallet(ctx, tx, walletID); err != nil {
			return err
		}
		return s.wallets.Delete(ctx, tx, walletID)
	})
}

// ---- dashboard ----

type Dashboard struct {
	Wallet     store.WalletWithOwner
	Role       string
	KPIs       ledger.KPIs
	Series     ledger.Series
	Categories map[string]int64
	Statement  []store.TransactionWithCreator
}

func (s *WalletService) Dashboard(ctx context.Context, userID, walletID string, days int) (Dashboard, error) {
	wallet, shares, err := s.getWalletWithShares(ctx, walletID)
	if err != nil {
		return Dashboard{}, err
	}
	if !access.CanRead(userID, wallet.OwnerID, toAccessShares(shares)) {
		return Dashboard{}, ErrForbidden
	}
	rows, err := s.transactions.ListByWallet(ctx, walletID)
	if err != nil {
		return Dashboard{}, err
	}
	plain := make([]store.Transaction, len(rows))
	for i, row := range rows {
		plain[i] = row.Transaction
	}
	today := s.now()
	return Dashboard{
		Wallet:     wallet,
		Role:       access.RoleOf(userID, wallet.OwnerID, toAccessShares(shares)),
		KPIs:       ledger.Summarize(plain),
		Series:     ledger.DailySeries(plain, ledger.ClampSeriesDays(days), today),
		Categories: ledger.CategoryTotals(plain, today),
		Statement:  rows,
	}, nil
}

// ---- transactions ----

type CreateTransactionInput struct {
	WalletID       string
	Tag            string
	Description    string
	AmountMinor    int64
	Kind           string
	Date           string
	DistanceKM     float64
	FuelLiters     float64
	FixedExpenseID *string
}

func (s *WalletService) CreateTransaction(ctx context.Context, userID string, input CreateTransactionInput) (store.Transaction, error) {
	if input.AmountMinor <= 0 {
		return store.Transaction{}, ErrInvalidAmount
	}
	if input.Kind != store.KindIncome && input.Kind != store.KindExpense {
		return store.Transaction{}, ErrInvalidKind
	}
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return store.Transaction{}, ErrInvalidDate
	}
	wallet, shares, err := s.getWalletWithShares(ctx, input.WalletID)
	if err != nil {
		return store.Transaction{}, err
	}
	if !access.CanEdit(userID, wallet.OwnerID, toAccessShares(shares)) {
		return store.Transaction{}, ErrForbidden
	}
	if input.Tag == "" {
		input.Tag = "Geral"
	}
	transaction := store.Transaction{
		ID:             uuid.NewString(),
		WalletID:       input.WalletID,
		Tag:            input.Tag,
		Description:    input.Description,
		AmountMinor:    input.AmountMinor,
		Kind:           input.Kind,
		Date:           input.Date,
		DistanceKM:     input.DistanceKM,
		FuelLiters:     input.FuelLiters,
		FixedExpenseID: input.FixedExpenseID,
		CreatedByID:    &userID,
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.transactions.Create(ctx, tx, store.TransactionInput{
			ID:             transaction.ID,
			WalletID:       transaction.WalletID,
			Tag:            transaction.Tag,
			Description:    transaction.Description,
			AmountMinor:    transaction.AmountMinor,
			Kind:           transaction.Kind,
			Date:           transaction.Date,
			DistanceKM:     transaction.DistanceKM,
			FuelLiters:     transaction.FuelLiters,
			FixedExpenseID: transaction.FixedExpenseID,
			CreatedByID:    transaction.CreatedByID,
		})
	})
	if err != nil {
		return store.Transaction{}, err
	}
	s.notifier.BroadcastToWallet("UPDATE_DASHBOARD", memberIDs(wallet, shares))
	return transaction, nil
}

func (s *WalletService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	transaction, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTransactionNotFound
		}
		return err
	}
	wallet, shares, err := s.getWalletWithShares(ctx, transaction.WalletID)
	if err != nil {
		return err
	}
	if !access.CanEdit(userID, wallet.OwnerID, toAccessShares(shares)) {
		return ErrForbidden
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.transactions.Delete(ctx, tx, transactionID)
	})
	if err != nil {
		return err
	}
	s.notifier.BroadcastToWallet("UPDATE_DASHBOARD", memberIDs(wallet, shares))
	return nil
}

// ---- sharing ----

func (s *WalletService) CreateInvite(ctx context.Context, userID, walletID string) (store.Invite, error) {
	wallet, err := s.getWallet(ctx, walletID)
	if err != nil {
		return store.Invite{}, err
	}
	if wallet.OwnerID != userID {
		return store.Invite{}, ErrForbidden
	}
	// The code space is 36^6; collisions are unlikely but retried anyway.
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		code, err := generateInviteCode()
		if err != nil {
			return store.Invite{}, err
		}
		invite := store.InviteInput{
			ID:        uuid.NewString(),
			Code:      code,
			WalletID:  walletID,
			ExpiresAt: s.now().Add(inviteTTL),
		}
		if err := s.invites.Create(ctx, invite); err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return store.Invite{}, err
		}
		return store.Invite{
			ID:        invite.ID,
			Code:      invite.Code,
			WalletID:  invite.WalletID,
			ExpiresAt: invite.ExpiresAt,
			Active:    true,
		}, nil
	}
	return store.Invite{}, errors.New("could not generate a unique invite code")
}

// RedeemInvite grants the caller an editor share on the invite's wallet.
// Redeeming while already a member keeps the existing role. The code stays
// active until it expires, so other users may still redeem it.
func (s *WalletService) RedeemInvite(ctx context.Context, userID, code string) (store.WalletWithOwner, error) {
	invite, err := s.invites.GetActiveByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.WalletWithOwner{}, ErrInviteNotFound
		}
		return store.WalletWithOwner{}, err
	}
	if !s.now().Before(invite.ExpiresAt) {
		return store.WalletWithOwner{}, ErrInviteExpired
	}
	wallet, shares, err := s.getWalletWithShares(ctx, invite.WalletID)
	if err != nil {
		if errors.Is(err, ErrWalletNotFound) {
			return store.WalletWithOwner{}, ErrInviteNotFound
		}
		return store.WalletWithOwner{}, err
	}
	if wallet.OwnerID == userID {
		return store.WalletWithOwner{}, ErrSelfInvite
	}
	alreadyMember := false
	for _, share := range shares {
		if share.UserID == userID {
			alreadyMember = true
			break
		}
	}
	if !alreadyMember {
		err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
			return s.shares.Create(ctx, tx, userID, wallet.ID, access.RoleEditor)
		})
		if err != nil {
			return store.WalletWithOwner{}, err
		}
		shares = append(shares, store.Share{UserID: userID, WalletID: wallet.ID, Role: access.RoleEditor})
	}
	s.notifier.BroadcastToWallet("UPDATE_DASHBOARD", memberIDs(wallet, shares))
	return wallet, nil
}

func (s *WalletService) ListMembers(ctx context.Context, userID, walletID string) ([]store.Member, error) {
	wallet, shares, err := s.getWalletWithShares(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(userID, wallet.OwnerID, toAccessShares(shares)) {
		return nil, ErrForbidden
	}
	rows, err := s.shares.ListMembersByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}
	members := make([]store.Member, 0, len(rows)+1)
	members = append(members, store.Member{
		UserID:   wallet.OwnerID,
		Username: wallet.OwnerUsername,
		Role:     access.RoleOwner,
	})
	members = append(members, rows...)
	return members, nil
}

func (s *WalletService) UpdateMemberRole(ctx context.Context, userID, walletID, targetUserID, role string) error {
	wallet, shares, err := s.getWalletWithShares(ctx, walletID)
	if err != nil {
		return err
	}
	if wallet.OwnerID != userID {
		return ErrForbidden
	}
	if !access.ValidAssignableRole(role) {
		return ErrInvalidRole
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		changed, err := s.shares.UpdateRole(ctx, tx, targetUserID, walletID, role)
		if err != nil {
			return err
		}
		if changed == 0 {
			return ErrMemberNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.notifier.BroadcastToWallet("UPDATE_DASHBOARD", memberIDs(wallet, shares))
	return nil
}

// RemoveMember is idempotent: removing a user without a share succeeds.
// The removed user is notified along with the remaining members.
func (s *WalletService) RemoveMember(ctx context.Context, userID, walletID, targetUserID string) error {
	wallet, shares, err := s.getWalletWithShares(ctx, walletID)
	if err != nil {
		return err
	}
	if wallet.OwnerID != userID {
		return ErrForbidden
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.shares.Delete(ctx, tx, targetUserID, walletID)
	})
	if err != nil {
		return err
	}
	remaining := shares[:0:0]
	for _, share := range shares {
		if share.UserID != targetUserID {
			remaining = append(remaining, share)
		}
	}
	s.notifier.BroadcastToWallet("UPDATE_DASHBOARD", append(memberIDs(wallet, remaining), targetUserID))
	return nil
}

// ---- fixed expenses ----

type CreateFixedExpenseInput struct {
	WalletID    string
	Name        string
	AmountMinor int64
	Tag         string
	DueDay      int
}

type FixedExpenseStatus struct {
	store.FixedExpense
	PaidThisMonth bool
}

func (s *WalletService) CreateFixedExpense(ctx context.Context, userID string, input CreateFixedExpenseInput) (store.FixedExpense, error) {
	if input.Name == "" {
		return store.FixedExpense{}, ErrInvalidName
	}
	if input.AmountMinor <= 0 {
		return store.FixedExpense{}, ErrInvalidAmount
	}
	if input.DueDay < 1 || input.DueDay > 31 {
		return store.FixedExpense{}, ErrInvalidDueDay
	}
	wallet, shares, err := s.getWalletWithShares(ctx, input.WalletID)
	if err != nil {
		return store.FixedExpense{}, err
	}
	if !access.CanEdit(userID, wallet.OwnerID, toAccessShares(shares)) {
		return store.FixedExpense{}, ErrForbidden
	}
	if input.Tag == "" {
		input.Tag = "Fixas"
	}
	fixedExpense := store.FixedExpense{
		ID:          uuid.NewString(),
		WalletID:    input.WalletID,
		Name:        input.Name,
		AmountMinor: input.AmountMinor,
		Tag:         input.Tag,
		DueDay:      input.DueDay,
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.fixedExpenses.Create(ctx, tx, fixedExpense)
	})
	if err != nil {
		return store.FixedExpense{}, err
	}
	s.notifier.BroadcastToWallet("UPDATE_DASHBOARD", memberIDs(wallet, shares))
	return fixedExpense, nil
}

// ListFixedExpenses derives the paid flag per expense by scanning the
// current month's linked payments. Nothing is stored.
func (s *WalletService) ListFixedExpenses(ctx context.Context, userID, walletID string) ([]FixedExpenseStatus, error) {
	wallet, shares, err := s.getWalletWithShares(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(userID, wallet.OwnerID, toAccessShares(shares)) {
		return nil, ErrForbidden
	}
	fixedExpenses, err := s.fixedExpenses.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}
	today := s.now()
	since := ledger.FirstOfMonth(today)
	statuses := make([]FixedExpenseStatus, 0, len(fixedExpenses))
	for _, fixedExpense := range fixedExpenses {
		payments, err := s.transactions.ListByFixedExpense(ctx, fixedExpense.ID, since)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, FixedExpenseStatus{
			FixedExpense:  fixedExpense,
			PaidThisMonth: ledger.PaidInMonth(payments, today),
		})
	}
	return statuses, nil
}

func (s *WalletService) PayFixedExpense(ctx context.Context, userID, walletID, fixedExpenseID string) (store.Transaction, error) {
	fixedExpense, err := s.getFixedExpense(ctx, walletID, fixedExpenseID)
	if err != nil {
		return store.Transaction{}, err
	}
	wallet, shares, err := s.getWalletWithShares(ctx, walletID)
	if err != nil {
		return store.Transaction{}, err
	}
	if !access.CanEdit(userID, wallet.OwnerID, toAccessShares(shares)) {
		return store.Transaction{}, ErrForbidden
	}
	today := s.now()
	payments, err := s.transactions.ListByFixedExpense(ctx, fixedExpenseID, "")
	if err != nil {
		return store.Transaction{}, err
	}
	if ledger.PaidInMonth(payments, today) {
		return store.Transaction{}, ErrAlreadyPaid
	}
	transaction := store.Transaction{
		ID:             uuid.NewString(),
		WalletID:       fixedExpense.WalletID,
		Tag:            fixedExpense.Tag,
		Description:    fmt.Sprintf("%s (Ref: %s)", fixedExpense.Name, today.Format("01/2006")),
		AmountMinor:    fixedExpense.AmountMinor,
		Kind:           store.KindExpense,
		Date:           today.Format(dateLayout),
		FixedExpenseID: &fixedExpense.ID,
		CreatedByID:    &userID,
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.transactions.Create(ctx, tx, store.TransactionInput{
			ID:             transaction.ID,
			WalletID:       transaction.WalletID,
			Tag:            transaction.Tag,
			Description:    transaction.Description,
			AmountMinor:    transaction.AmountMinor,
			Kind:           transaction.Kind,
			Date:           transaction.Date,
			FixedExpenseID: transaction.FixedExpenseID,
			CreatedByID:    transaction.CreatedByID,
		})
	})
	if err != nil {
		return store.Transaction{}, err
	}
	s.notifier.BroadcastToWallet("UPDATE_DASHBOARD", memberIDs(wallet, shares))
	return transaction, nil
}

func (s *WalletService) DeleteFixedExpense(ctx context.Context, userID, walletID, fixedExpenseID string) error {
	if _, err := s.getFixedExpense(ctx, walletID, fixedExpenseID); err != nil {
		return err
	}
	wallet, shares, err := s.getWalletWithShares(ctx, walletID)
	if err != nil {
		return err
	}
	if !access.CanEdit(userID, wallet.OwnerID, toAccessShares(shares)) {
		return ErrForbidden
	}
	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.fixedExpenses.Delete(ctx, tx, fixedExpenseID)
	})
	if err != nil {
		return err
	}
	s.notifier.BroadcastToWallet("UPDATE_DASHBOARD", memberIDs(wallet, shares))
	return nil
}

// ---- helpers ----

func (s *WalletService) getWallet(ctx context.Context, walletID string) (store.WalletWithOwner, error) {
	wallet, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.WalletWithOwner{}, ErrWalletNotFound
		}
		return store.WalletWithOwner{}, err
	}
	return wallet, nil
}

func (s *WalletService) getWalletWithShares(ctx context.Context, walletID string) (store.WalletWithOwner, []store.Share, error) {
	wallet, err := s.getWallet(ctx, walletID)
	if err != nil {
		return store.WalletWithOwner{}, nil, err
	}
	shares, err := s.shares.ListByWallet(ctx, walletID)
	if err != nil {
		return store.WalletWithOwner{}, nil, err
	}
	return wallet, shares, nil
}

func (s *WalletService) getFixedExpense(ctx context.Context, walletID, fixedExpenseID string) (store.FixedExpense, error) {
	fixedExpense, err := s.fixedExpenses.GetByID(ctx, fixedExpenseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.FixedExpense{}, ErrFixedExpenseNotFound
		}
		return store.FixedExpense{}, err
	}
	if fixedExpense.WalletID != walletID {
		return store.FixedExpense{}, ErrFixedExpenseNotFound
	}
	return fixedExpense, nil
}

func toAccessShares(shares []store.Share) []access.Share {
	result := make([]access.Share, len(shares))
	for i, share := range shares {
		result[i] = access.Share{UserID: share.UserID, Role: share.Role}
	}
	return result
}

func memberIDs(wallet store.WalletWithOwner, shares []store.Share) []string {
	ids := make([]string, 0, len(shares)+1)
	ids = append(ids, wallet.OwnerID)
	for _, share := range shares {
		ids = append(ids, share.UserID)
	}
	return ids
}

func generateInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)]
	}
	return string(buf), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505"
}
