package auth

import (
	"errors"
	"testing"
)

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterAssignsClienteRole(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	user, err := service.Register("Test User", "test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != RoleCliente {
		t.Fatalf("expected role CLIENTE, got %s", user.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register("Other User", "test@example.com", "Password@123"); err == nil {
		t.Fatal("expected duplicate email to fail")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Login("test@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "test@example.com", "Password@123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login("test@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
