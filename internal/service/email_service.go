package service

import (
	"context"
	"fmt"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/logger"
	"github.com/sparkleclean/sparkle/pkg/mailer"
)

// EmailService relays ad-hoc emails composed in the client. When SMTP is not
// configured it reports that back instead of failing, so the client can show
// a soft notice.
type EmailService struct {
	mailer     mailer.Mailer
	configured bool
	logger     logger.Logger
}

func NewEmailService(mailer mailer.Mailer, configured bool, logger logger.Logger) *EmailService {
	return &EmailService{
		mailer:     mailer,
		configured: configured,
		logger:     logger,
	}
}

func (s *EmailService) Send(ctx context.Context, req *domain.SendEmailRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return s.configured, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	if !s.configured {
		s.logger.WithField("to", req.To).Info("Email not sent: SMTP is not configured")
		return false, nil
	}

	if err := s.mailer.Send(req.To, req.Subject, req.Body); err != nil {
		s.logger.WithField("to", req.To).Error(fmt.Sprintf("Failed to send email: %v", err))
		return true, fmt.Errorf("failed to send email: %w", err)
	}
	return true, nil
}
