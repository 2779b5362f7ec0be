package auth

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/model"
)

const (
	tokenContextKey  = "token"
	callerContextKey = "caller"
)

// UserLoader resolves the account a token was issued for.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// Bearer verifies the Authorization header and loads the caller onto the context.
// Tokens found in revoked are rejected; revoked may be nil.
func Bearer(jwtService *JWTService, users UserLoader, revoked RevocationList) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:  jwtService.Secret(),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
		},
	})

	load := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
			}
			if revoked != nil && revoked.IsRevoked(c.Request().Context(), claims.ID) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
			}
			user, err := users.FindByID(c.Request().Context(), claims.User.ID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error())
			}
			c.Set(callerContextKey, user)
			return next(c)
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(load(next))
	}
}

// ClaimsFromContext returns the verified claims, or nil on public routes.
func ClaimsFromContext(c echo.Context) *Claims {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok {
		return nil
	}
	claims, _ := token.Claims.(*Claims)
	return claims
}

// CallerFromContext returns the authenticated user, or nil on public routes.
func CallerFromContext(c echo.Context) *model.User {
	user, _ := c.Get(callerContextKey).(*model.User)
	return user
}

// Check reports whether the user's role is one of roles.
func Check(user *model.User, roles ...string) bool {
	if user == nil || user.UserType == nil {
		return false
	}
	for _, role := range roles {
		if user.UserType.Key == role {
			return true
		}
	}
	return false
}
