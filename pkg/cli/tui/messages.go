package tui

import (
	"devlinks-go/pkg/models"
	"devlinks-go/pkg/services"
)

// Messages delivered by async commands back into the update loop.

type loginResultMsg struct {
	token string
	err   error
}

type signupResultMsg struct {
	err error
}

type profileFetchedMsg struct {
	profile models.Profile
	links   []models.Link
	err     error
}

type linksSavedMsg struct {
	result services.SaveResult
	err    error
}

type profileSavedMsg struct {
	err error
}

type imageUploadedMsg struct {
	url string
	err error
}

// switchToSignupMsg asks the root model to show the signup form.
type switchToSignupMsg struct{}

// switchToLoginMsg asks the root model to show the login form, optionally
// with a notice line (e.g. after a successful signup).
type switchToLoginMsg struct {
	notice string
}
