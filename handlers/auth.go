package handlers

import (
	"net/http"

	"roomnest/config"
	"roomnest/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues and revokes the cookie-based session token. Identity is
// verified by an external provider; this endpoint only signs whatever claim
// payload the frontend obtained from it.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// IssueToken handles POST /jwt.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var identity map[string]interface{}
	if err := c.ShouldBindJSON(&identity); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid identity payload", nil)
		return
	}
	email, _ := identity["email"].(string)
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email is required", nil)
		return
	}

	token, err := utils.GenerateToken(identity, utils.SessionTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	setSessionCookie(c, token, int(utils.SessionTokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout handles POST /logout by clearing the cookie with matching attributes.
func (h *AuthHandler) Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// setSessionCookie writes the session cookie. Cross-site frontends need
// SameSite=None with Secure in production; local development keeps the
// stricter default so the cookie works without TLS.
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := false
	sameSite := http.SameSiteStrictMode
	if config.IsProduction() {
		secure = true
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(utils.SessionCookieName, token, maxAge, "/", "", secure, true)
}
