package domain

import "time"

type RegistrationRequestStatus string

const (
	RegistrationRequestStatusPending  RegistrationRequestStatus = "PENDING"
	RegistrationRequestStatusApproved RegistrationRequestStatus = "APPROVED"
	RegistrationRequestStatusRejected RegistrationRequestStatus = "REJECTED"
)

// RegistrationRequest captures a prospective user's desired username and email
// while it awaits an admin decision. A request is PENDING until it is approved
// or rejected exactly once; DeleteDate marks a soft delete.
type RegistrationRequest struct {
	ID         string                    `json:"id"`
	Username   string                    `json:"username"`
	Email      string                    `json:"email"`
	Status     RegistrationRequestStatus `json:"status"`
	Reason     string                    `json:"reason,omitempty"` // set on rejection only
	CreateDate time.Time                 `json:"create_date"`
	UpdateDate *time.Time                `json:"update_date,omitempty"`
	DeleteDate *time.Time                `json:"delete_date,omitempty"`
}
