package middleware

import (
	"net/http"

	"roomnest/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionAuth.
const (
	SessionClaimsKey = "sessionClaims"
	SessionEmailKey  = "sessionEmail"
)

// SessionAuth verifies the session token cookie and attaches the decoded
// identity claims to the request context. A missing cookie and a bad token
// are reported separately so browser clients can distinguish "log in" from
// "log in again".
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(utils.SessionCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(SessionClaimsKey, claims)
		if email, ok := utils.ExtractEmailFromClaims(claims); ok {
			c.Set(SessionEmailKey, email)
		}
		c.Next()
	}
}
