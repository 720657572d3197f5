package http

import (
	"net/http"
	"strings"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actingUserIDKey = "actingUserID"

// SessionAuth returns middleware that authenticates requests by the
// bearer token issued at login. The token must be a valid HS256 session
// token; its subject becomes the acting user for the request.
func SessionAuth(jwtSecret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
				return jwtSecret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			if typ, _ := claims["typ"].(string); typ != "session" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			subject, _ := claims["sub"].(string)
			userID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			ctx.Set(actingUserIDKey, userID)
			return next(ctx)
		}
	}
}

// actingUserID returns the authenticated user set by SessionAuth.
func actingUserID(ctx echo.Context) kernel.UUID {
	userID, _ := ctx.Get(actingUserIDKey).(kernel.UUID)
	return userID
}
