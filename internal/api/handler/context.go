package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techxchange/marketplace-api/internal/api/middleware"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// ctxClaims extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-positive user id
// means the middleware did not run (or the token carried no usable subject),
// so reject with 401 rather than passing a zero identity downstream.
func ctxClaims(c echo.Context) (ports.TokenClaims, error) {
	userID, _ := c.Get(middleware.CtxUserID).(int64)
	if userID <= 0 {
		return ports.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get(middleware.CtxRole).(string)
	tokenID, _ := c.Get(middleware.CtxTokenID).(string)
	exp, _ := c.Get(middleware.CtxTokenExp).(time.Time)

	return ports.TokenClaims{
		UserID:    userID,
		Role:      role,
		TokenID:   tokenID,
		ExpiresAt: exp,
	}, nil
}
