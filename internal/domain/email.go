package domain

import (
	"context"
	"fmt"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_email_service.go -package mocks github.com/sparkleclean/sparkle/internal/domain EmailService

type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (r *SendEmailRequest) Validate() error {
	if !govalidator.IsEmail(r.To) {
		return fmt.Errorf("invalid send email request: to must be a valid email")
	}
	if r.Subject == "" {
		return fmt.Errorf("invalid send email request: subject is required")
	}
	if r.Body == "" {
		return fmt.Errorf("invalid send email request: body is required")
	}
	return nil
}

// EmailService relays operator-composed emails. Send returns configured=false
// without error when SMTP settings are absent; the handler turns that into a
// soft "not configured" response instead of a failure.
type EmailService interface {
	Send(ctx context.Context, req *SendEmailRequest) (configured bool, err error)
}
