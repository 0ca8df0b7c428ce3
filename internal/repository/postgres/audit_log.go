package postgres

import (
	"context"
	"database/sql"
	"time"

	"docshelf-backend/internal/domain"
	"docshelf-backend/internal/repository"

	"github.com/google/uuid"
)

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	entry.ID = uuid.NewString()
	entry.CreateDate = time.Now()
	query := `INSERT INTO audit_logs (id, entity_id, entity_class, type, message, actor_id, create_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		entry.ID, entry.EntityID, entry.EntityClass, entry.Type, entry.Message, entry.ActorID, entry.CreateDate)
	return err
}
