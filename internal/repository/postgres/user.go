package postgres

import (
	"context"
	"database/sql"
	"time"

	"docshelf-backend/internal/domain"
	"docshelf-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	u.ID = uuid.NewString()
	u.CreateDate = time.Now()
	query := `INSERT INTO users (id, username, email, password_hash, role_id, storage_quota, create_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, u.ID, u.Username, u.Email, u.PasswordHash, u.RoleID, u.StorageQuota, u.CreateDate)
	return err
}

const userColumns = `id, username, email, password_hash, role_id, storage_quota, create_date`

func (r *userRepository) GetActiveByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND delete_date IS NULL`
	return r.scanOne(conn(ctx, r.db).QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND delete_date IS NULL`
	return r.scanOne(conn(ctx, r.db).QueryRowContext(ctx, query, username))
}

func (r *userRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) AND delete_date IS NULL`
	return r.scanOne(conn(ctx, r.db).QueryRowContext(ctx, query, email))
}

func (r *userRepository) FindAllActiveByRoleID(ctx context.Context, roleID string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role_id = $1 AND delete_date IS NULL ORDER BY username`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleID, &u.StorageQuota, &u.CreateDate); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// scanOne maps sql.ErrNoRows to (nil, nil): absence of an active user is an
// expected outcome on these lookup paths, not a failure.
func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleID, &u.StorageQuota, &u.CreateDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
