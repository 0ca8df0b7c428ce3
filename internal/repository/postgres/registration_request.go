package postgres

import (
	"context"
	"database/sql"
	"time"

	"docshelf-backend/internal/domain"
	"docshelf-backend/internal/repository"

	"github.com/google/uuid"
)

type registrationRequestRepository struct {
	db *sql.DB
}

func NewRegistrationRequestRepository(db *sql.DB) repository.RegistrationRequestRepository {
	return &registrationRequestRepository{db: db}
}

func (r *registrationRequestRepository) Create(ctx context.Context, req *domain.RegistrationRequest) (string, error) {
	req.ID = uuid.NewString()
	req.Status = domain.RegistrationRequestStatusPending
	req.CreateDate = time.Now()

	query := `INSERT INTO registration_requests (id, username, email, status, reason, create_date)
	          VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, req.ID, req.Username, req.Email, req.Status, req.Reason, req.CreateDate)
	if err != nil {
		return "", err
	}
	return req.ID, nil
}

func (r *registrationRequestRepository) GetActiveByID(ctx context.Context, id string) (*domain.RegistrationRequest, error) {
	req := &domain.RegistrationRequest{}
	var reason sql.NullString
	query := `SELECT id, username, email, status, reason, create_date, update_date
	          FROM registration_requests WHERE id = $1 AND delete_date IS NULL`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&req.ID, &req.Username, &req.Email, &req.Status, &reason, &req.CreateDate, &req.UpdateDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	req.Reason = reason.String
	return req, nil
}

func (r *registrationRequestRepository) FindAllPending(ctx context.Context) ([]domain.RegistrationRequest, error) {
	query := `SELECT id, username, email, status, reason, create_date, update_date
	          FROM registration_requests
	          WHERE status = $1 AND delete_date IS NULL
	          ORDER BY create_date DESC`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, domain.RegistrationRequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.RegistrationRequest
	for rows.Next() {
		var req domain.RegistrationRequest
		var reason sql.NullString
		if err := rows.Scan(&req.ID, &req.Username, &req.Email, &req.Status, &reason, &req.CreateDate, &req.UpdateDate); err != nil {
			return nil, err
		}
		req.Reason = reason.String
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *registrationRequestRepository) Update(ctx context.Context, req *domain.RegistrationRequest) error {
	now := time.Now()
	query := `UPDATE registration_requests SET status = $1, reason = NULLIF($2, ''), update_date = $3
	          WHERE id = $4 AND delete_date IS NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, req.Status, req.Reason, now, req.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	req.UpdateDate = &now
	return nil
}

func (r *registrationRequestRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE registration_requests SET delete_date = $1
	          WHERE id = $2 AND delete_date IS NULL`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
