package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// DefaultStorageQuota is the storage quota (in bytes) granted to users
	// provisioned through the registration workflow.
	DefaultStorageQuota int64 = 1000000
)

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	RoleID       string     `json:"role_id"`
	StorageQuota int64      `json:"storage_quota"`
	CreateDate   time.Time  `json:"create_date"`
	DeleteDate   *time.Time `json:"delete_date,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}
