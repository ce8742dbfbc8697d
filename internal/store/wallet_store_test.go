package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"
)

func TestWalletStoreCreate(t *testing.T) {
	ctx := context.Background()
	execer := stubExecer{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO wallets") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 5 {
				t.Fatalf("expected 5 args, got %d", len(args))
			}
			if args[0] != "wallet-1" || args[1] != "Casa" || args[2] != CategoryStandard || args[4] != "user-1" {
				t.Fatalf("unexpected args: %#v", args)
			}
			return stubResult{rows: 1}, nil
		},
	}
	store := NewWalletStore(stubDB{})
	if err := store.Create(ctx, execer, "wallet-1", "Casa", CategoryStandard, "#0d6efd", "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWalletStoreGetByID(t *testing.T) {
	ctx := context.Background()
	store := NewWalletStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "JOIN users u ON u.id = w.owner_id") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 1 || args[0] != "wallet-1" {
				t.Fatalf("unexpected args: %#v", args)
			}
			*dest.(*WalletWithOwner) = WalletWithOwner{
				Wallet:        Wallet{ID: "wallet-1", Name: "Casa", OwnerID: "user-1"},
				OwnerUsername: "maria",
			}
			return nil
		},
	})
	row, err := store.GetByID(ctx, "wallet-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.ID != "wallet-1" || row.OwnerUsername != "maria" {
		t.Fatalf("unexpected row: %#v", row)
	}
}

func TestWalletStoreGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewWalletStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			return sql.ErrNoRows
		},
	})
	if _, err := store.GetByID(ctx, "missing"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestWalletStoreListForUser(t *testing.T) {
	ctx := context.Background()
	store := NewWalletStore(stubDB{
		selectFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "LEFT JOIN wallet_shares") || !strings.Contains(query, "balance_minor") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 1 || args[0] != "user-1" {
				t.Fatalf("unexpected args: %#v", args)
			}
			*dest.(*[]WalletSummary) = []WalletSummary{
				{ID: "wallet-1", Role: "owner", BalanceMinor: 15000},
			}
			return nil
		},
	})
	rows, err := store.ListForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].BalanceMinor != 15000 {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestWalletStoreDelete(t *testing.T) {
	ctx := context.Background()
	execer := stubExecer{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "DELETE FROM wallets") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 1 || args[0] != "wallet-1" {
				t.Fatalf("unexpected args: %#v", args)
			}
			return stubResult{rows: 1}, nil
		},
	}
	store := NewWalletStore(stubDB{})
	if err := store.Delete(ctx, execer, "wallet-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
