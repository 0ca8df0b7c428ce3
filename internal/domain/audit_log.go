package domain

import "time"

type AuditLogType string

const (
	AuditLogTypeCreate AuditLogType = "CREATE"
	AuditLogTypeUpdate AuditLogType = "UPDATE"
	AuditLogTypeDelete AuditLogType = "DELETE"
)

// AuditLog records who did what to which entity. One row is written for every
// mutation of a registration request and for every provisioned user account.
type AuditLog struct {
	ID          string       `json:"id"`
	EntityID    string       `json:"entity_id"`
	EntityClass string       `json:"entity_class"`
	Type        AuditLogType `json:"type"`
	Message     string       `json:"message"`
	ActorID     string       `json:"actor_id"`
	CreateDate  time.Time    `json:"create_date"`
}
