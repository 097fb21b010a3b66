// Package auth delegates identity to Auth0: password-grant login, database
// signup, and a locally persisted access token whose subject claim is the
// durable user identifier. Tokens are decoded, never verified, on the
// client; verification is the data endpoint's job.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrInvalidCredentials is returned when the token endpoint rejects the
// email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when signup fails because the address is
// already registered.
var ErrEmailTaken = errors.New("this email address is already used")

// Client talks to an Auth0 tenant.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	audience     string
	connection   string
	httpClient   *http.Client
}

// NewClient builds a client for the given tenant domain. The domain may be
// bare ("tenant.auth0.com") or a full URL; test servers pass http URLs.
func NewClient(domain, clientID, clientSecret, audience, connection string) *Client {
	baseURL := domain
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}
	if connection == "" {
		connection = "Username-Password-Authentication"
	}
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		audience:     audience,
		connection:   connection,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login exchanges credentials for an access token via the password grant.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{
		"username":      email,
		"password":      password,
		"grant_type":    "password",
		"audience":      c.audience,
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	status, err := c.postJSON(ctx, "/oauth/token", payload, &out)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if status == http.StatusForbidden || status == http.StatusUnauthorized {
		return "", ErrInvalidCredentials
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("login: token endpoint returned %d", status)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login: token endpoint returned no access token")
	}
	return out.AccessToken, nil
}

// Signup registers a new database-connection user.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	payload := map[string]string{
		"client_id":  c.clientID,
		"email":      email,
		"password":   password,
		"connection": c.connection,
	}

	status, err := c.postJSON(ctx, "/dbconnections/signup", payload, nil)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	if status == http.StatusBadRequest {
		return ErrEmailTaken
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("signup: endpoint returned %d", status)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to parse response: %w", err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode, nil
}
