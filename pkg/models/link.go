package models

// Link is one (platform, URL) entry on a profile. The ID is either the
// remote-assigned identifier, or a locally generated placeholder for a link
// that has not been saved yet (IsNew).
type Link struct {
	ID       string `json:"id"`
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	IsNew    bool   `json:"-"`
}

// LinkInsert represents the payload for inserting a new link remotely.
type LinkInsert struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	UserID   string `json:"user_id"`
}
