package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"
)

func TestUserStoreCreate(t *testing.T) {
	ctx := context.Background()
	email := "maria@example.com"
	execer := stubExecer{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO users") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 4 || args[0] != "user-1" || args[1] != "maria" {
				t.Fatalf("unexpected args: %#v", args)
			}
			if args[2] != &email {
				t.Fatalf("unexpected email arg: %#v", args[2])
			}
			return stubResult{rows: 1}, nil
		},
	}
	store := NewUserStore(stubDB{})
	if err := store.Create(ctx, execer, "user-1", "maria", &email, "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserStoreCreateNilEmail(t *testing.T) {
	ctx := context.Background()
	execer := stubExecer{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			ptr, ok := args[2].(*string)
			if !ok || ptr != nil {
				t.Fatalf("unexpected email arg: %#v", args[2])
			}
			return stubResult{rows: 1}, nil
		},
	}
	store := NewUserStore(stubDB{})
	if err := store.Create(ctx, execer, "user-1", "maria", nil, "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserStoreGetByUsername(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "WHERE username = $1") || !strings.Contains(query, "password_hash") {
				t.Fatalf("unexpected query: %s", query)
			}
			*dest.(*User) = User{ID: "user-1", Username: "maria", PasswordHash: "hash"}
			return nil
		},
	})
	row, err := store.GetByUsername(ctx, "maria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.ID != "user-1" || row.PasswordHash != "hash" {
		t.Fatalf("unexpected row: %#v", row)
	}
}

func TestUserStoreGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			return sql.ErrNoRows
		},
	})
	if _, err := store.GetByID(ctx, "missing"); err != sql.ErrNoRows {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
