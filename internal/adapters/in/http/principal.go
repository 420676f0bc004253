package http

import (
	"context"
	"errors"
	"strings"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/user"
	"salesdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the identifier of the caller. The gateway in front of
// the service is responsible for authenticating it.
const UserIDHeader = "X-User-ID"

const principalKey = "principal"

// UserFinder looks up the caller in the user directory.
type UserFinder interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}

// PrincipalMiddleware resolves the caller from the X-User-ID header and stores
// it in the echo context. A missing header yields the anonymous principal; an
// identifier that is not in the directory is rejected.
func PrincipalMiddleware(users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
			if raw == "" {
				c.Set(principalKey, kernel.Anonymous())
				return next(c)
			}

			id, err := kernel.UUIDFromString(raw)
			if err != nil {
				return errs.NewValueIsInvalidErrorWithCause(UserIDHeader, err)
			}

			u, err := users.Get(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return errs.NewAccessDeniedErrorWithCause("unknown user", err)
				}
				return err
			}

			c.Set(principalKey, u.Principal())
			return next(c)
		}
	}
}

// principalFrom returns the caller stored by PrincipalMiddleware, or the
// anonymous principal when the middleware did not run.
func principalFrom(c echo.Context) kernel.Principal {
	if p, ok := c.Get(principalKey).(kernel.Principal); ok {
		return p
	}
	return kernel.Anonymous()
}
