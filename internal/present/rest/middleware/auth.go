package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/hangarhq/hangar/internal/domain"
	"github.com/hangarhq/hangar/internal/present/rest/presenter"
	"github.com/hangarhq/hangar/internal/usecase"
)

var tracer = otel.Tracer("auth")

// AuthMiddleware guards routes behind bearer-token verification. Verified
// tokens are cached for a short window to keep hot paths off the parser; the
// window is noise next to the hours-long token lifetime.
type AuthMiddleware struct {
	auth     *usecase.AuthUsecase
	verified *cache.Cache
}

func NewAuthMiddleware(auth *usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth:     auth,
		verified: cache.New(10*time.Minute, 15*time.Minute),
	}
}

func (m *AuthMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireToken")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")
		if authHeader == "" {
			return presenter.Unauthorized(c, "missing authorization header")
		}

		split := strings.Split(authHeader, " ")
		if len(split) != 2 || split[0] != "Bearer" {
			span.RecordError(errors.New("invalid authorization header"))
			return presenter.Unauthorized(c, "only Bearer is acceptable")
		}
		token := split[1]

		subject, found := m.verified.Get(token)
		if !found {
			result, err := m.auth.Verify(ctx, token)
			if err != nil {
				span.RecordError(errors.Wrap(err, "AuthMiddleware.RequireToken: verification failed"))
				return presenter.Unauthorized(c, "invalid token")
			}
			subject = result
			m.verified.Set(token, result, cache.DefaultExpiration)
		}

		requester := subject.(string)
		ctx = context.WithValue(ctx, domain.RequesterCtxKey, requester)
		span.SetAttributes(attribute.String("Requester", requester))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
