package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pypath/pypath/config"
)

func testAuthService() AuthService {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLHours = 1
	return NewAuthService(nil, cfg)
}

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID:   42,
		Username: "alice",
		IsAdmin:  false,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestValidateToken(t *testing.T) {
	svc := testAuthService()

	t.Run("valid token round trips claims", func(t *testing.T) {
		token := signedToken(t, "test-secret", time.Now().Add(time.Hour))
		claims, err := svc.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if claims.UserID != 42 || claims.Username != "alice" || claims.IsAdmin {
			t.Errorf("claims = %+v, want UserID 42, Username alice, IsAdmin false", claims)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signedToken(t, "test-secret", time.Now().Add(-time.Minute))
		if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token := signedToken(t, "other-secret", time.Now().Add(time.Hour))
		if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 42}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("failed to build none-alg token: %v", err)
		}
		if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
		}
	})
}
