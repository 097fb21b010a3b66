package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// testToken builds a compact token with the given subject. The signature is
// garbage on purpose: the client never verifies it.
func testToken(t *testing.T, sub string) string {
	t.Helper()
	enc := func(v any) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := enc(map[string]string{"alg": "HS256", "typ": "JWT"})
	claims := enc(map[string]string{"sub": sub})
	return header + "." + claims + ".bm90LWEtc2lnbmF0dXJl"
}

func TestDecodeSubject(t *testing.T) {
	sub, err := DecodeSubject(testToken(t, "auth0|abc123"))
	if err != nil {
		t.Fatalf("DecodeSubject: %v", err)
	}
	if sub != "auth0|abc123" {
		t.Errorf("subject = %q", sub)
	}
}

func TestDecodeSubjectGarbage(t *testing.T) {
	if _, err := DecodeSubject("not-a-token"); err == nil {
		t.Error("expected error for undecodable token")
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "token"))

	s, err := NewSession(store)
	if err != nil {
		t.Fatal(err)
	}
	if s.Authenticated() {
		t.Error("fresh session should be unauthenticated")
	}

	token := testToken(t, "auth0|jane")
	if err := s.Login(token); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.Authenticated() || s.Subject() != "auth0|jane" {
		t.Errorf("subject = %q", s.Subject())
	}

	// A new session picks up the persisted token.
	s2, err := NewSession(store)
	if err != nil {
		t.Fatal(err)
	}
	if s2.Subject() != "auth0|jane" {
		t.Errorf("restored subject = %q", s2.Subject())
	}

	if err := s2.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	s3, err := NewSession(store)
	if err != nil {
		t.Fatal(err)
	}
	if s3.Authenticated() {
		t.Error("session survived logout")
	}
}

func TestSessionClearsUndecodableToken(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "token"))
	if err := store.Save("garbage"); err != nil {
		t.Fatal(err)
	}

	s, err := NewSession(store)
	if err != nil {
		t.Fatal(err)
	}
	if s.Authenticated() {
		t.Error("session authenticated from garbage token")
	}
	if tok, _ := store.Load(); tok != "" {
		t.Errorf("stored token = %q, want cleared", tok)
	}
}

func TestLogin(t *testing.T) {
	token := testToken(t, "auth0|jane")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth/token" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["grant_type"] != "password" || req["username"] != "jane@example.com" {
			t.Errorf("request = %v", req)
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": token})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "cid", "secret", "aud", "")
	got, err := c.Login(context.Background(), "jane@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got != token {
		t.Errorf("token = %q", got)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "cid", "secret", "aud", "")
	_, err := c.Login(context.Background(), "jane@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignupEmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dbconnections/signup" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "cid", "secret", "aud", "")
	err := c.Signup(context.Background(), "jane@example.com", "password123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}
