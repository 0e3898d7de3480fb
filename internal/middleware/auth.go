package middleware

import (
	stderrors "errors"

	"finance-history/internal/errors"
	"finance-history/internal/handlers"
	"finance-history/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid access token issued by the finance
// backend. The raw token is kept on the request context so the remote transaction source can
// forward it.
func RequireAuth(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				recordAuthEvent(metrics, "missing_token")
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				recordAuthEvent(metrics, "invalid_header")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					recordAuthEvent(metrics, "expired")
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				recordAuthEvent(metrics, "invalid_token")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil || userID == uuid.Nil {
				recordAuthEvent(metrics, "invalid_token")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			c.Set("token_jti", claims.ID)

			req := c.Request()
			c.SetRequest(req.WithContext(services.WithAccessToken(req.Context(), token)))

			recordAuthEvent(metrics, "success")
			return next(c)
		}
	}
}

func recordAuthEvent(metrics services.MetricsRecorderInterface, result string) {
	metrics.IncrementCounter("authentication_event", map[string]string{"event_type": result})
}
