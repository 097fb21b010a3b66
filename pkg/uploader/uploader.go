// Package uploader pushes avatar images to Cloudinary and hands back the
// hosted URL, which is stored verbatim as the profile image field. No
// client-side resizing or format validation is enforced beyond the
// advisory text shown in the editing UI.
package uploader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Client uploads to one Cloudinary cloud with a fixed unsigned preset.
type Client struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	httpClient   *http.Client
}

// NewClient creates an uploader for the given cloud.
func NewClient(cloudName, uploadPreset string) *Client {
	return &Client{
		baseURL:      "https://api.cloudinary.com",
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake endpoint.
func NewClientWithBaseURL(baseURL, cloudName, uploadPreset string) *Client {
	c := NewClient(cloudName, uploadPreset)
	c.baseURL = baseURL
	return c
}

// Upload sends the file as a multipart form and returns the hosted URL.
func (c *Client) Upload(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		part, err := form.CreateFormFile("file", filepath.Base(path))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := form.WriteField("upload_preset", c.uploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	url := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed (%d): %s", resp.StatusCode, raw)
	}

	var out struct {
		URL       string `json:"url"`
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	if out.SecureURL != "" {
		return out.SecureURL, nil
	}
	if out.URL == "" {
		return "", fmt.Errorf("upload response carried no URL")
	}
	return out.URL, nil
}
