package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"docshelf-backend/internal/domain"
	"docshelf-backend/internal/logger"
	"docshelf-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken         = errors.New("username already exists")
	ErrEmailTaken            = errors.New("email already exists")
	ErrRequestNotFound       = errors.New("registration request not found")
	ErrRequestAlreadyDecided = errors.New("registration request already decided")
)

const registrationRequestEntity = "registration_request"

type registrationService struct {
	tx        repository.Transactor
	reqRepo   repository.RegistrationRequestRepository
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
	emailSvc  EmailService
}

func NewRegistrationService(
	tx repository.Transactor,
	reqRepo repository.RegistrationRequestRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditLogRepository,
	emailSvc EmailService,
) RegistrationService {
	return &registrationService{
		tx:        tx,
		reqRepo:   reqRepo,
		userRepo:  userRepo,
		auditRepo: auditRepo,
		emailSvc:  emailSvc,
	}
}

func (s *registrationService) CreateRequest(ctx context.Context, username, email string) (string, error) {
	var requestID string
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		// Check against the active user directory. Pending requests for the
		// same username or email are deliberately not checked.
		user, err := s.userRepo.GetActiveByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to look up username: %w", err)
		}
		if user != nil {
			return ErrUsernameTaken
		}

		user, err = s.userRepo.GetActiveByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to look up email: %w", err)
		}
		if user != nil {
			return ErrEmailTaken
		}

		req := &domain.RegistrationRequest{
			Username: username,
			Email:    email,
		}
		requestID, err = s.reqRepo.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to create registration request: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return requestID, nil
}

func (s *registrationService) FindAllPending(ctx context.Context) ([]domain.RegistrationRequest, error) {
	return s.reqRepo.FindAllPending(ctx)
}

func (s *registrationService) ApproveRequest(ctx context.Context, requestID, adminID string) error {
	var req *domain.RegistrationRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.loadPending(ctx, requestID)
		if err != nil {
			return err
		}

		req.Status = domain.RegistrationRequestStatusApproved
		req.Reason = ""
		if err := s.updateAudited(ctx, req, adminID); err != nil {
			return err
		}

		// Provision the account. The initial password equals the username;
		// operators are expected to force a reset on first login.
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Username), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash initial password: %w", err)
		}
		user := &domain.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			RoleID:       domain.RoleUser,
			StorageQuota: domain.DefaultStorageQuota,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user account: %w", err)
		}
		return s.auditRepo.Create(ctx, &domain.AuditLog{
			EntityID:    user.ID,
			EntityClass: "user",
			Type:        domain.AuditLogTypeCreate,
			Message:     user.Username,
			ActorID:     adminID,
		})
	})
	if err != nil {
		return err
	}

	// The account exists whether or not this email makes it out.
	if err := s.emailSvc.SendRegistrationApproved(ctx, req.Email, req.Username); err != nil {
		logger.Error("Failed to send registration approval email", "request_id", requestID, "email", req.Email, "error", err)
	}
	return nil
}

func (s *registrationService) RejectRequest(ctx context.Context, requestID, adminID, reason string) error {
	var req *domain.RegistrationRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.loadPending(ctx, requestID)
		if err != nil {
			return err
		}

		req.Status = domain.RegistrationRequestStatusRejected
		req.Reason = reason
		return s.updateAudited(ctx, req, adminID)
	})
	if err != nil {
		return err
	}

	if err := s.emailSvc.SendRegistrationRejected(ctx, req.Email, req.Username, reason); err != nil {
		logger.Error("Failed to send registration rejection email", "request_id", requestID, "email", req.Email, "error", err)
	}
	return nil
}

func (s *registrationService) DeleteRequest(ctx context.Context, requestID, adminID string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		req, err := s.reqRepo.GetActiveByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to load registration request: %w", err)
		}
		if req == nil {
			return ErrRequestNotFound
		}

		if err := s.reqRepo.SoftDelete(ctx, requestID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("failed to delete registration request: %w", err)
		}
		return s.auditRepo.Create(ctx, &domain.AuditLog{
			EntityID:    req.ID,
			EntityClass: registrationRequestEntity,
			Type:        domain.AuditLogTypeDelete,
			Message:     req.Username,
			ActorID:     adminID,
		})
	})
}

// loadPending fetches the active request and enforces the one-shot state
// machine: only a PENDING request may be decided.
func (s *registrationService) loadPending(ctx context.Context, requestID string) (*domain.RegistrationRequest, error) {
	req, err := s.reqRepo.GetActiveByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load registration request: %w", err)
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.Status != domain.RegistrationRequestStatusPending {
		return nil, ErrRequestAlreadyDecided
	}
	return req, nil
}

func (s *registrationService) updateAudited(ctx context.Context, req *domain.RegistrationRequest, adminID string) error {
	if err := s.reqRepo.Update(ctx, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("failed to update registration request: %w", err)
	}
	return s.auditRepo.Create(ctx, &domain.AuditLog{
		EntityID:    req.ID,
		EntityClass: registrationRequestEntity,
		Type:        domain.AuditLogTypeUpdate,
		Message:     req.Username,
		ActorID:     adminID,
	})
}
