package graphql

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a primary-key lookup resolves to null.
var ErrNotFound = errors.New("not found")

// Error is one entry of a GraphQL error array.
type Error struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// Errors is the error array of a GraphQL response.
type Errors []Error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Message
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// AuthError reports that the endpoint rejected the caller's credentials at
// the transport level.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("graphql authorization failed (%d): %s", e.Status, e.Body)
}

// Hasura error codes that mean the session's token is no longer accepted.
var authCodes = map[string]bool{
	"invalid-jwt":     true,
	"invalid-headers": true,
	"access-denied":   true,
}

// IsAuthError reports whether err means the caller's credentials were
// rejected, as opposed to any other remote failure. The authenticated
// profile fetch uses this to decide whether to clear the session.
func IsAuthError(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}
	var gqlErrs Errors
	if errors.As(err, &gqlErrs) {
		for _, e := range gqlErrs {
			if authCodes[e.Extensions.Code] {
				return true
			}
		}
	}
	return false
}
