package uploader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestUpload(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "avatar.png")
	if err := os.WriteFile(imgPath, []byte("png-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1_1/demo/image/upload" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "ml_default" {
			t.Errorf("upload_preset = %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("file part: %v", err)
		}
		w.Write([]byte(`{"url":"http://res.example.com/a.png","secure_url":"https://res.example.com/a.png"}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "demo", "ml_default")
	url, err := c.Upload(context.Background(), imgPath)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://res.example.com/a.png" {
		t.Errorf("url = %q", url)
	}
}

func TestUploadServerError(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "avatar.png")
	if err := os.WriteFile(imgPath, []byte("png-bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"preset not allowed"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "demo", "ml_default")
	if _, err := c.Upload(context.Background(), imgPath); err == nil {
		t.Error("expected error from failed upload")
	}
}

func TestUploadMissingFile(t *testing.T) {
	c := NewClient("demo", "ml_default")
	if _, err := c.Upload(context.Background(), "/does/not/exist.png"); err == nil {
		t.Error("expected error for missing file")
	}
}
