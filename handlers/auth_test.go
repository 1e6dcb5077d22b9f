package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roomnest/config"
	"roomnest/utils"

	"github.com/gin-gonic/gin"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler()
	r := gin.New()
	r.POST("/jwt", h.IssueToken)
	r.POST("/logout", h.Logout)
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := w.Result()
	for _, c := range res.Cookies() {
		if c.Name == utils.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie in response", utils.SessionCookieName)
	return nil
}

func TestIssueToken_SetsCookie(t *testing.T) {
	config.AppConfig.Env = "development"
	config.AppConfig.JWTSecret = "test-secret"
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"guest@example.com","name":"Guest"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	cookie := sessionCookie(t, w)
	if cookie.Value == "" {
		t.Fatal("expected a token value")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HTTP-only")
	}
	if cookie.Secure {
		t.Error("cookie must not be Secure outside production")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("expected SameSite=Strict outside production, got %v", cookie.SameSite)
	}

	// The issued token must verify and carry the identity claims.
	claims, err := utils.ValidateToken(cookie.Value)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if email, ok := utils.ExtractEmailFromClaims(claims); !ok || email != "guest@example.com" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}
}

func TestIssueToken_ProductionCookieAttributes(t *testing.T) {
	config.AppConfig.Env = "production"
	config.AppConfig.JWTSecret = "test-secret"
	defer func() { config.AppConfig.Env = "development" }()
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email":"guest@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	cookie := sessionCookie(t, w)
	if !cookie.Secure {
		t.Error("production cookie must be Secure")
	}
	if cookie.SameSite != http.SameSiteNoneMode {
		t.Errorf("expected SameSite=None in production, got %v", cookie.SameSite)
	}
}

func TestIssueToken_MissingEmail(t *testing.T) {
	config.AppConfig.Env = "development"
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"name":"Guest"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	config.AppConfig.Env = "development"
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookie := sessionCookie(t, w)
	if cookie.Value != "" {
		t.Errorf("expected an empty cookie value, got %q", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("expected a negative Max-Age to expire the cookie, got %d", cookie.MaxAge)
	}
}
