package middleware

import (
	"net/http"
	"strings"

	"github.com/biblioteca/biblioteca-backend/src/session"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionKey holds the session.Session in the gin context.
const SessionKey = "session"

// AuthMiddleware only lets through requests carrying a valid manager token and
// attaches the session to the request context.
func AuthMiddleware(secretKey []byte) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Gets the authorization header
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		// Divides the header into Bearer and Token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			return
		}

		// Verifies the JWT token, expiration included
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return secretKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		current := session.Session{}
		if id, ok := claims["id"].(float64); ok {
			current.ManagerID = int(id)
		}
		if email, ok := claims["email"].(string); ok {
			current.Email = email
		}

		ctx.Set(SessionKey, current)
		ctx.Request = ctx.Request.WithContext(session.With(ctx.Request.Context(), current))
		ctx.Next()
	}
}
