package models

// Profile is the editable identity record owned by an authenticated user.
// ID is nil until the remote profile has been fetched at least once.
type Profile struct {
	ID        *string `json:"id"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email"`
	Image     string  `json:"image"`
}

// PublicProfile is the read-only projection served to anonymous visitors.
type PublicProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Image     string `json:"image"`
	Links     []Link `json:"links"`
}
