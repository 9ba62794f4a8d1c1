package http

import (
	"github.com/golang/mock/gomock"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/domain/mocks"
	"github.com/sparkleclean/sparkle/internal/http/middleware"
	pkgmocks "github.com/sparkleclean/sparkle/pkg/mocks"
)

const (
	adminToken    = "admin-token"
	operatorToken = "operator-token"
)

var (
	testAdmin    = &domain.User{ID: 1, Email: "admin@example.com", Name: "Admin", Role: domain.RoleAdmin}
	testOperator = &domain.User{ID: 4, Email: "op@example.com", Name: "Op", Role: domain.RoleOperator}
)

// newTestAuth builds an auth middleware whose token check resolves the two
// fixed test tokens and rejects everything else.
func newTestAuth(ctrl *gomock.Controller) *middleware.AuthMiddleware {
	authService := mocks.NewMockAuthService(ctrl)
	authService.EXPECT().VerifyToken(gomock.Any(), adminToken).Return(testAdmin, nil).AnyTimes()
	authService.EXPECT().VerifyToken(gomock.Any(), operatorToken).Return(testOperator, nil).AnyTimes()
	authService.EXPECT().VerifyToken(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ErrInvalidCredentials{}).AnyTimes()
	return middleware.NewAuthMiddleware(authService)
}

func newQuietLogger(ctrl *gomock.Controller) *pkgmocks.MockLogger {
	log := pkgmocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}
