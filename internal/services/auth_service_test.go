package services

import (
	"errors"
	"testing"

	"sales_reports_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewAuthService([]OperatorAccount{
		{ID: 1, Username: "admin", PasswordHash: string(hash), Role: "Admin"},
	})
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(LoginRequest{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if resp.User == nil || resp.User.Role != "Admin" {
		t.Errorf("unexpected user: %+v", resp.User)
	}

	claims, err := utils.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.Username != "admin" || claims.Role != "Admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.Login(LoginRequest{Username: "admin", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(t)
	if _, err := svc.Login(LoginRequest{Username: "ghost", Password: "secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshFlow(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(LoginRequest{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.Refresh(resp.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("expected a new access token")
	}

	if _, err := svc.Refresh("not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestGetOperator(t *testing.T) {
	svc := newTestAuthService(t)

	op, err := svc.GetOperator(1)
	if err != nil {
		t.Fatalf("get operator: %v", err)
	}
	if op.Username != "admin" {
		t.Errorf("unexpected operator: %+v", op)
	}

	if _, err := svc.GetOperator(99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
