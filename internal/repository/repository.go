package repository

import (
	"context"

	"docshelf-backend/internal/domain"
)

// Transactor runs fn inside a single database transaction. The transaction is
// carried in the context handed to fn; repository calls made with that context
// join it. A nil return commits, any error rolls back every write.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type RegistrationRequestRepository interface {
	// Create assigns the id and create date, forces status PENDING and
	// persists the request. Returns the new id.
	Create(ctx context.Context, req *domain.RegistrationRequest) (string, error)
	// GetActiveByID returns the non-deleted request with the given id, or
	// (nil, nil) when no such request exists.
	GetActiveByID(ctx context.Context, id string) (*domain.RegistrationRequest, error)
	// FindAllPending returns non-deleted PENDING requests, most recent first.
	FindAllPending(ctx context.Context) ([]domain.RegistrationRequest, error)
	// Update overwrites status and reason and stamps the update date.
	// Returns sql.ErrNoRows when the active request is gone.
	Update(ctx context.Context, req *domain.RegistrationRequest) error
	// SoftDelete stamps the delete date without removing the row.
	// Returns sql.ErrNoRows when the active request is gone.
	SoftDelete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetActiveByID(ctx context.Context, id string) (*domain.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*domain.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAllActiveByRoleID(ctx context.Context, roleID string) ([]domain.User, error)
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}
