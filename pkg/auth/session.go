package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the decoded identity subject of the persisted token.
// An undecodable token is treated exactly like an absent one: the stored
// value is cleared and the session is unauthenticated.
type Session struct {
	store   *TokenStore
	token   string
	subject string
}

// NewSession initializes a session from the token store.
func NewSession(store *TokenStore) (*Session, error) {
	s := &Session{store: store}

	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return s, nil
	}

	subject, err := DecodeSubject(token)
	if err != nil {
		// Decode failure == absence.
		if clearErr := store.Clear(); clearErr != nil {
			return nil, clearErr
		}
		return s, nil
	}

	s.token = token
	s.subject = subject
	return s, nil
}

// Login persists the token and sets the decoded subject.
func (s *Session) Login(token string) error {
	subject, err := DecodeSubject(token)
	if err != nil {
		return err
	}
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	s.subject = subject
	return nil
}

// Logout clears the persisted token and the in-memory identity.
func (s *Session) Logout() error {
	s.token = ""
	s.subject = ""
	return s.store.Clear()
}

// Authenticated reports whether a subject has been decoded.
func (s *Session) Authenticated() bool {
	return s.subject != ""
}

// Subject returns the decoded subject claim, "" when unauthenticated.
func (s *Session) Subject() string {
	return s.subject
}

// Token returns the raw access token for the data layer to attach.
func (s *Session) Token() string {
	return s.token
}

// DecodeSubject extracts the subject claim from a compact token without
// verifying the signature. Verification happens server-side at the data
// endpoint; the client only needs the identity string.
func DecodeSubject(token string) (string, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("decode token: missing subject claim")
	}
	return subject, nil
}
