package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
)

func TestPostgresRepositoryManager_VendsRepositories(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	m := NewPostgresRepositoryManager()
	if m.Users(db) == nil {
		t.Error("Users returned nil")
	}
	if m.Posts(db) == nil {
		t.Error("Posts returned nil")
	}
}

func TestRunMigrations_CallsGoose(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	called := false
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		called = true
		if dir != "." {
			t.Errorf("dir = %q, want .", dir)
		}
		return nil
	}

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if !called {
		t.Error("goose.UpContext was not called")
	}
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("migrate failed")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); !errors.Is(err, boom) {
		t.Fatalf("want migrate error, got %v", err)
	}
}
