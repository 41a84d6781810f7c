// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/seifeddinerezgui/gethrought/internal/auth"
	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// RequireAuth function is a middleware that validates a Bearer token in the Authorization
// header and checks that the user the token was issued to still exists before allowing
// access to the endpoint. The user is stored in the context under utilities.ContextUserKey.
func RequireAuth(tokens *auth.Tokens, s store.Store, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		token, err := tokens.ValidatedToken(tokenString)

		if err != nil {
			auth.LogAuthAttempt(logger, zap.WarnLevel, "Token", auth.StatusFail, "", err.Error())

			if errors.Is(err, jwt.ErrTokenExpired) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Access token expired",
				})
				return
			}

			if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Invalid token issuer",
				})
				return
			}

			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid access token",
			})
			return
		}

		claims := token.Claims.(*jwt.RegisteredClaims)
		ctx.Set("claims", claims)

		userID, err := auth.UserID(claims)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid access token",
			})
			return
		}

		foundUser, err := s.GetUser(ctx.Request.Context(), userID)
		if err != nil {

			if errors.Is(err, store.ErrNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "User not exist",
				})
				return
			}

			logger.Error("failed to retrieve user", zap.Uint("user_id", userID), zap.Error(err))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "Failed to retrieve user data",
			})
			return
		}

		ctx.Set(utilities.ContextUserKey, foundUser)
		ctx.Next()
	}
}
