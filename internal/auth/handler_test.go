package auth

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func TestSignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	h := NewHandler(NewService("admin@example.com", string(hash)), "test-secret")
	app := fiber.New()
	h.RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/sign-in",
		strings.NewReader(`{"email":"admin@example.com","password":"s3cret"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"token"`) {
		t.Fatalf("expected a token in the response, body: %s", body)
	}

	bad := httptest.NewRequest("POST", "/api/v1/sign-in",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	bad.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(bad)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", res2.StatusCode)
	}
}

func TestAuthenticate_UnconfiguredAdmin(t *testing.T) {
	svc := NewService("", "")
	if err := svc.Authenticate("any@example.com", "any"); err == nil {
		t.Fatalf("expected authentication to fail when no admin is configured")
	}
}
