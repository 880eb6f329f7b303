package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	token := mintToken(t, testSecret, "user-42", time.Now().Add(time.Hour))
	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("principal = %q, want user-42", userID)
	}
}

func TestVerifyRejections(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	cases := map[string]string{
		"empty":           "",
		"garbage":         "not.a.token",
		"wrong signature": mintToken(t, "other-secret", "user-42", time.Now().Add(time.Hour)),
		"expired":         mintToken(t, testSecret, "user-42", time.Now().Add(-time.Hour)),
	}

	for name, token := range cases {
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: err = %v, want ErrInvalidToken", name, err)
		}
	}
}

func TestVerifyTokenWithoutSubject(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestRegisterUserIdempotent(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	first, err := svc.RegisterUser("fb-77", "someone@example.com")
	if err != nil {
		t.Fatalf("first RegisterUser: %v", err)
	}
	second, err := svc.RegisterUser("fb-77", "someone@example.com")
	if err != nil {
		t.Fatalf("second RegisterUser: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("repeated registration created a new row: %s vs %s", first.ID, second.ID)
	}
}

func TestGetProfile(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testSecret)

	user, err := svc.RegisterUser("fb-88", "profile@example.com")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	got, err := svc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Email != "profile@example.com" {
		t.Errorf("email = %q, want profile@example.com", got.Email)
	}

	if _, err := svc.GetProfile("missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("missing user: err = %v, want ErrUserNotFound", err)
	}
}
