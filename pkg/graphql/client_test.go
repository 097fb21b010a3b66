package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth, gotSecret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotSecret = r.Header.Get("x-hasura-admin-secret")

		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Query == "" {
			t.Error("expected a query in the request body")
		}
		if req.Variables["id"] != "abc" {
			t.Errorf("variables = %v, want id=abc", req.Variables)
		}
		w.Write([]byte(`{"data":{"value":42}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	var out struct {
		Value int `json:"value"`
	}
	err := c.Do(context.Background(), "query { value }", map[string]any{"id": "abc"}, &out)
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if out.Value != 42 {
		t.Errorf("value = %d, want 42", out.Value)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotSecret != "" {
		t.Errorf("admin secret header set unexpectedly: %q", gotSecret)
	}
}

func TestDoSendsAdminSecret(t *testing.T) {
	var gotAuth, gotSecret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotSecret = r.Header.Get("x-hasura-admin-secret")
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	c := NewAdminClient(srv.URL, "shh")
	if err := c.Do(context.Background(), "query { ok }", nil, nil); err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if gotSecret != "shh" {
		t.Errorf("x-hasura-admin-secret = %q, want shh", gotSecret)
	}
	if gotAuth != "" {
		t.Errorf("Authorization set unexpectedly: %q", gotAuth)
	}
}

func TestDoGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors":[{"message":"field not found","extensions":{"code":"validation-failed"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	err := c.Do(context.Background(), "query { nope }", nil, nil)
	if err == nil {
		t.Fatal("expected an error for a GraphQL error array")
	}
	var gqlErrs Errors
	if !errors.As(err, &gqlErrs) {
		t.Fatalf("error type = %T, want Errors", err)
	}
	if len(gqlErrs) != 1 || gqlErrs[0].Message != "field not found" {
		t.Errorf("errors = %+v", gqlErrs)
	}
	if IsAuthError(err) {
		t.Error("validation-failed should not read as an auth error")
	}
}

func TestDoUnauthorizedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "stale")
	err := c.Do(context.Background(), "query { me }", nil, nil)
	if err == nil {
		t.Fatal("expected an error for 401")
	}
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error type = %T, want *AuthError", err)
	}
	if authErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", authErr.Status)
	}
	if !IsAuthError(err) {
		t.Error("IsAuthError should be true for a 401")
	}
}

func TestIsAuthErrorHasuraCodes(t *testing.T) {
	errs := Errors{{Message: "Could not verify JWT"}}
	errs[0].Extensions.Code = "invalid-jwt"
	if !IsAuthError(errs) {
		t.Error("invalid-jwt should read as an auth error")
	}

	other := Errors{{Message: "constraint violation"}}
	other[0].Extensions.Code = "constraint-violation"
	if IsAuthError(other) {
		t.Error("constraint-violation should not read as an auth error")
	}
	if IsAuthError(errors.New("plain error")) {
		t.Error("plain errors are not auth errors")
	}
}

func TestGetPublicProfileNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"users_by_pk":null}}`))
	}))
	defer srv.Close()

	c := NewAdminClient(srv.URL, "shh")
	_, err := c.GetPublicProfile(context.Background(), "missing-user")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestGetUserProfileFirstRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"users":[{
			"id":"u1","email":"alex@email.com","first_name":"Alex","last_name":"Doe","image":"",
			"links":[{"id":"l1","platform":"github","url":"https://github.com/alex"}]
		}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	profile, links, err := c.GetUserProfile(context.Background())
	if err != nil {
		t.Fatalf("GetUserProfile() error: %v", err)
	}
	if profile.ID == nil || *profile.ID != "u1" {
		t.Errorf("profile.ID = %v, want u1", profile.ID)
	}
	if profile.FirstName != "Alex" || profile.LastName != "Doe" {
		t.Errorf("profile name = %s %s", profile.FirstName, profile.LastName)
	}
	if len(links) != 1 || links[0].Platform != "github" {
		t.Errorf("links = %+v", links)
	}
	if links[0].IsNew {
		t.Error("fetched links must not be flagged as new")
	}
}
