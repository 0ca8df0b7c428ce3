package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"docshelf-backend/internal/domain"
	"docshelf-backend/internal/logger"
)

// SendPendingRegistrationDigest emails every active admin a summary of the
// registration requests still waiting for a decision.
func (jr *JobRunner) SendPendingRegistrationDigest() {
	jr.runWithRecovery("SendPendingRegistrationDigest", func() {
		ctx := context.Background()

		query := `
			SELECT id, username, email, create_date
			FROM registration_requests
			WHERE status = 'PENDING' AND delete_date IS NULL
			ORDER BY create_date DESC
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query pending registration requests", "error", err)
			return
		}
		defer rows.Close()

		var lines []string
		for rows.Next() {
			var (
				id         string
				username   string
				email      string
				createDate time.Time
			)
			if err := rows.Scan(&id, &username, &email, &createDate); err != nil {
				logger.Error("Failed to scan pending registration request", "error", err)
				continue
			}
			lines = append(lines, fmt.Sprintf("- %s <%s> (submitted %s)", username, email, createDate.Format("2006-01-02")))
		}
		if err := rows.Err(); err != nil {
			logger.Error("Failed to read pending registration requests", "error", err)
			return
		}

		if len(lines) == 0 {
			logger.Debug("No pending registration requests, skipping digest")
			return
		}

		admins, err := jr.store.FindAllActiveByRoleID(ctx, domain.RoleAdmin)
		if err != nil {
			logger.Error("Failed to list admins for registration digest", "error", err)
			return
		}

		subject := fmt.Sprintf("%d registration request(s) awaiting review", len(lines))
		body := fmt.Sprintf(`The following registration requests are pending a decision:

%s

Please review them in the admin console.`, strings.Join(lines, "\n"))

		count := 0
		for _, admin := range admins {
			if err := jr.services.Email.SendAdminNotification(ctx, admin.Email, subject, body); err != nil {
				logger.Error("Failed to send registration digest",
					"admin_id", admin.ID,
					"email", admin.Email,
					"error", err)
				continue
			}
			count++
		}

		logger.Info("Sent pending registration digest", "pending", len(lines), "admins_notified", count)
	})
}
