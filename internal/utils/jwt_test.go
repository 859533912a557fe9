package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

var testUser = models.User{UserID: "0190f5d2-7a8e-7c1b-9e3f-1a2b3c4d5e6f", Identifier: "x@y.com"}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testUser, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	if token.Claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Claims.Issuer)
	}
	if token.Claims.Subject != testUser.UserID {
		t.Errorf("expected subject %s, got %s", testUser.UserID, token.Claims.Subject)
	}
	if token.Claims.Identifier != "x@y.com" {
		t.Errorf("expected identifier x@y.com, got %s", token.Claims.Identifier)
	}

	lifetime := token.Claims.ExpiresAt.Sub(token.Claims.IssuedAt.Time)
	if lifetime != time.Hour {
		t.Errorf("expected lifetime of 1h, got %s", lifetime)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUser, time.Hour, "key"},
		{"zero duration", "iss", testUser, 0, "key"},
		{"negative duration", "iss", testUser, -time.Hour, "key"},
		{"empty key", "iss", testUser, time.Hour, ""},
		{"empty user id", "iss", models.User{Identifier: "x@y.com"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("iss", testUser, 7*24*time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		t.Fatalf("GetUserID: %v", err)
	}
	if userID != testUser.UserID {
		t.Errorf("expected user id %s, got %s", testUser.UserID, userID)
	}
	if parsed.Claims.Identifier != testUser.Identifier {
		t.Errorf("expected identifier %s, got %s", testUser.Identifier, parsed.Claims.Identifier)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("iss", testUser, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	expired := signClaims(t, models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   testUser.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}, jwt.SigningMethodHS256)

	noExpiry := signClaims(t, models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "iss", Subject: testUser.UserID},
	}, jwt.SigningMethodHS256)

	noSubject := signClaims(t, models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, jwt.SigningMethodHS256)

	otherAlg := signClaims(t, models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   testUser.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, jwt.SigningMethodHS512)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		isExp  bool
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "iss"},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "other"},
		{name: "expired", token: expired, key: "key", issuer: "iss", isExp: true},
		{name: "no expiry", token: noExpiry, key: "key", issuer: "iss"},
		{name: "no subject", token: noSubject, key: "key", issuer: "iss"},
		{name: "other algorithm", token: otherAlg, key: "key", issuer: "iss"},
		{name: "garbage", token: "not.a.jwt", key: "key", issuer: "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.isExp && !errors.Is(err, jwt.ErrTokenExpired) {
				t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func signClaims(t *testing.T, claims models.Claims, method jwt.SigningMethod) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}
