package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
	appName  string
}

func NewEmailService(host string, port int, username, password, from, appName string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		appName:  appName,
	}
}

func (s *emailService) SendRegistrationApproved(ctx context.Context, email, username string) error {
	subject := fmt.Sprintf("Your %s registration has been approved", s.appName)
	body := fmt.Sprintf("Hello %s,\n\nYour registration request has been approved. You can now sign in with your username.\n\nBest regards,\nThe %s Team", username, s.appName)
	return s.send(email, subject, body)
}

func (s *emailService) SendRegistrationRejected(ctx context.Context, email, username, reason string) error {
	subject := fmt.Sprintf("Your %s registration has been rejected", s.appName)
	body := fmt.Sprintf("Hello %s,\n\nYour registration request has been rejected.\n\nReason: %s\n\nBest regards,\nThe %s Team", username, reason, s.appName)
	return s.send(email, subject, body)
}

func (s *emailService) SendAdminNotification(ctx context.Context, to, subject, body string) error {
	return s.send(to, subject, body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
