package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/sparkle/internal/domain"
	pkgmocks "github.com/sparkleclean/sparkle/pkg/mocks"
)

func setupEmailServiceTest(t *testing.T, configured bool) (*pkgmocks.MockMailer, *EmailService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mail := pkgmocks.NewMockMailer(ctrl)

	log := pkgmocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	return mail, NewEmailService(mail, configured, log)
}

func TestEmailService_Send(t *testing.T) {
	req := &domain.SendEmailRequest{
		To:      "owner@example.com",
		Subject: "Cleaning done",
		Body:    "Apartment 4B is ready.",
	}

	t.Run("relays through the mailer", func(t *testing.T) {
		mail, svc := setupEmailServiceTest(t, true)
		mail.EXPECT().Send(req.To, req.Subject, req.Body).Return(nil)

		sent, err := svc.Send(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, sent)
	})

	t.Run("smtp not configured is not an error", func(t *testing.T) {
		_, svc := setupEmailServiceTest(t, false)

		sent, err := svc.Send(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, sent)
	})

	t.Run("mailer failure", func(t *testing.T) {
		mail, svc := setupEmailServiceTest(t, true)
		mail.EXPECT().Send(req.To, req.Subject, req.Body).Return(assert.AnError)

		sent, err := svc.Send(context.Background(), req)
		assert.Error(t, err)
		assert.True(t, sent)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		_, svc := setupEmailServiceTest(t, true)

		_, err := svc.Send(context.Background(), &domain.SendEmailRequest{To: "not-an-email", Subject: "x", Body: "y"})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidRequest{}, err)
	})
}
