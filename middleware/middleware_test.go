package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"

	"roteiro/globals"
)

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &Claims{
		Username: "tester",
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func contextUserID(r *http.Request) string {
	id, _ := r.Context().Value(globals.UserIDKey).(string)
	return id
}

func TestAuthenticate(t *testing.T) {
	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID = contextUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u123"))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotUserID != "u123" {
		t.Errorf("context user id = %q, want u123", gotUserID)
	}
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Error("handler reached with a bad token")
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Token abcdef"},
		{"garbage", "Bearer not.a.jwt"},
	}
	for _, c := range cases {
		req := httptest.NewRequest("GET", "/api/trips", nil)
		if c.header != "" {
			req.Header.Set("Authorization", c.header)
		}
		rec := httptest.NewRecorder()
		handler(rec, req, nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", c.name, rec.Code)
		}
	}
}

func TestOptionalAuth(t *testing.T) {
	var gotUserID string
	handler := OptionalAuth(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID = contextUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	// With a valid token the user id lands in context.
	req := httptest.NewRequest("GET", "/api/trips/shared/x", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u456"))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)
	if gotUserID != "u456" {
		t.Errorf("context user id = %q, want u456", gotUserID)
	}

	// Without one the request still goes through, anonymously.
	gotUserID = "sentinel"
	req = httptest.NewRequest("GET", "/api/trips/shared/x", nil)
	rec = httptest.NewRecorder()
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous status = %d, want 200", rec.Code)
	}
	if gotUserID != "" {
		t.Errorf("anonymous context user id = %q, want empty", gotUserID)
	}

	// An invalid token degrades to anonymous instead of failing.
	gotUserID = "sentinel"
	req = httptest.NewRequest("GET", "/api/trips/shared/x", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec = httptest.NewRecorder()
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("bad-token status = %d, want 200", rec.Code)
	}
	if gotUserID != "" {
		t.Errorf("bad-token context user id = %q, want empty", gotUserID)
	}
}
