package service

import (
	"context"

	"docshelf-backend/internal/domain"
)

type RegistrationService interface {
	// CreateRequest records a new PENDING registration request and returns
	// its id. Fails with ErrUsernameTaken or ErrEmailTaken when an active
	// user already holds the username or email.
	CreateRequest(ctx context.Context, username, email string) (string, error)
	// FindAllPending returns all pending requests, most recent first.
	FindAllPending(ctx context.Context) ([]domain.RegistrationRequest, error)
	// ApproveRequest transitions a pending request to APPROVED and
	// provisions the user account. The approval email is best-effort.
	ApproveRequest(ctx context.Context, requestID, adminID string) error
	// RejectRequest transitions a pending request to REJECTED with the
	// given reason. The rejection email is best-effort.
	RejectRequest(ctx context.Context, requestID, adminID, reason string) error
	// DeleteRequest soft-deletes a request.
	DeleteRequest(ctx context.Context, requestID, adminID string) error
}

type AuthService interface {
	// Login verifies the credentials of an active user and returns a signed
	// access token carrying the user's role.
	Login(ctx context.Context, username, password string) (string, error)
}

type EmailService interface {
	SendRegistrationApproved(ctx context.Context, email, username string) error
	SendRegistrationRejected(ctx context.Context, email, username, reason string) error
	SendAdminNotification(ctx context.Context, to, subject, body string) error
}
