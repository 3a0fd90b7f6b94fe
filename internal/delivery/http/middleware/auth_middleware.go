package middleware

import (
	deliverycontext "passport/internal/delivery/context"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderAccessToken is the request header carrying the session token.
const HeaderAccessToken = "access_token"

// AuthMiddleware validates session tokens against the token store. Presence
// and persisted expiry of the record decide validity.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC}
}

// Authenticate resolves the access_token header to a user ID and stores it on
// the context for handlers. All failures flow to the error middleware.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(HeaderAccessToken)
		if token == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("access token header is missing")
		}

		userID, err := m.sessionUC.ValidateToken(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
