package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestCartTokenMintsWhenAbsent(t *testing.T) {
	var captured string
	handler := CartToken(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = CartTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if captured == "" {
		t.Fatal("expected minted cart token in context")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Fatalf("expected uuid cart token, got %q", captured)
	}
	if got := rec.Header().Get(cartTokenHeader); got != captured {
		t.Fatalf("expected echoed header %q, got %q", captured, got)
	}
}

func TestCartTokenPreservesValidToken(t *testing.T) {
	token := uuid.NewString()
	var captured string
	handler := CartToken(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = CartTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(cartTokenHeader, token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if captured != token {
		t.Fatalf("expected token %q preserved, got %q", token, captured)
	}
}

func TestCartTokenReplacesMalformedToken(t *testing.T) {
	var captured string
	handler := CartToken(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = CartTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(cartTokenHeader, "../../etc/passwd")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if _, err := uuid.Parse(captured); err != nil {
		t.Fatalf("expected replacement uuid token, got %q", captured)
	}
}
