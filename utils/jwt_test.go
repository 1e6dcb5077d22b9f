package utils

import (
	"testing"
	"time"

	"roomnest/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	identity := map[string]interface{}{"email": "guest@example.com", "name": "Guest"}
	token, err := GenerateToken(identity, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validation failed: %v", err)
	}
	email, ok := ExtractEmailFromClaims(claims)
	if !ok || email != "guest@example.com" {
		t.Errorf("expected email claim, got %v", claims["email"])
	}
	if claims["name"] != "Guest" {
		t.Errorf("extra identity claims must survive the round trip, got %v", claims["name"])
	}
}

func TestValidateToken_Expired(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken(map[string]interface{}{"email": "guest@example.com"}, -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected an expired token to fail validation")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateToken(map[string]interface{}{"email": "guest@example.com"}, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	config.AppConfig.JWTSecret = "other-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected a token signed with another secret to fail validation")
	}
}
