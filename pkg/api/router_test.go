package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"devlinks-go/pkg/graphql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	gql := graphql.NewAdminClient(srv.URL, "test-secret")
	return NewRouter(gql, zap.NewNop())
}

func TestGetPublicProfile(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-hasura-admin-secret"); got != "test-secret" {
			t.Errorf("admin secret header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"users_by_pk":{
			"id":"user-1","first_name":"Jane","last_name":"Doe",
			"email":"jane@example.com","image":"",
			"links":[
				{"id":"l1","platform":"github","url":"https://github.com/jane"},
				{"id":"l2","platform":"twitch","url":"https://twitch.tv/jane"}
			]}}}`))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/u/user-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		FirstName string `json:"first_name"`
		Links     []struct {
			Platform     string `json:"platform"`
			PlatformName string `json:"platform_name"`
			Color        string `json:"color"`
		} `json:"links"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.FirstName != "Jane" {
		t.Errorf("first_name = %q", resp.FirstName)
	}
	if len(resp.Links) != 2 {
		t.Fatalf("links = %d, want 2 in order", len(resp.Links))
	}
	if resp.Links[0].PlatformName != "GitHub" || resp.Links[0].Color != "#1A1A1A" {
		t.Errorf("platform presentation = %+v", resp.Links[0])
	}
}

func TestGetPublicProfileNotFound(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"users_by_pk":null}}`))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/u/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetPublicProfileUpstreamFailure(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/u/user-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
