package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"docshelf-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RegistrationRequestRepository
	repository.UserRepository
	repository.AuditLogRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                            db,
		RegistrationRequestRepository: NewRegistrationRequestRepository(db),
		UserRepository:                NewUserRepository(db),
		AuditLogRepository:            NewAuditLogRepository(db),
	}
}

type txKey struct{}

// WithinTx begins a transaction, stores it in the context and invokes fn.
// Repositories created from this store pick the transaction up from the
// context, so every repository call made inside fn shares it. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		// Already inside a transaction, join it.
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// dbtx is the subset of *sql.DB and *sql.Tx the repositories use.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction carried in ctx, or the plain connection pool.
func conn(ctx context.Context, db *sql.DB) dbtx {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}
