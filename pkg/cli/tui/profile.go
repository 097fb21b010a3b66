package tui

import (
	"context"
	"errors"

	"devlinks-go/pkg/cli/logger"
	"devlinks-go/pkg/editor"
	"devlinks-go/pkg/services"
	"devlinks-go/pkg/uploader"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// profileField describes one editable row on the profile tab.
type profileField struct {
	key      string
	label    string
	required bool
}

var profileFields = []profileField{
	{key: "first_name", label: "First name*", required: true},
	{key: "last_name", label: "Last name*", required: true},
	{key: "email", label: "Email", required: false},
	{key: "image", label: "Profile picture (path to PNG/JPG)", required: false},
}

// profileModel is the "Profile Details" tab. The image field takes a local
// file path and uploads it on commit; the stored value is the hosted URL.
type profileModel struct {
	ed       *editor.Editor
	saver    *services.Saver
	uploader *uploader.Client
	userID   string

	selected int
	editing  bool
	input    textinput.Model

	saving    bool
	uploading bool
	verrs     services.ValidationErrors
	notice    string
	failure   bool
}

func newProfileModel(ed *editor.Editor, saver *services.Saver, up *uploader.Client, userID string) profileModel {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = 50

	return profileModel{
		ed:       ed,
		saver:    saver,
		uploader: up,
		userID:   userID,
		input:    input,
	}
}

func (m profileModel) capturing() bool {
	return m.editing
}

func (m profileModel) fieldValue(key string) string {
	p := m.ed.Profile()
	switch key {
	case "first_name":
		return p.FirstName
	case "last_name":
		return p.LastName
	case "email":
		return p.Email
	case "image":
		return p.Image
	}
	return ""
}

func (m profileModel) save() (profileModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.saving = true
	m.verrs = nil
	m.notice = ""
	m.failure = false

	saver, userID := m.saver, m.userID
	profile := m.ed.Profile()
	return m, func() tea.Msg {
		return profileSavedMsg{err: saver.SaveProfile(context.Background(), profile, userID)}
	}
}

func (m profileModel) upload(path string) (profileModel, tea.Cmd) {
	m.uploading = true
	m.notice = ""
	m.failure = false

	up := m.uploader
	return m, func() tea.Msg {
		url, err := up.Upload(context.Background(), path)
		return imageUploadedMsg{url: url, err: err}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			var verrs services.ValidationErrors
			if errors.As(msg.err, &verrs) {
				m.verrs = verrs
				return m, nil
			}
			logger.LogError(msg.err, "saving profile")
			m.notice = "An error occurred while saving your changes."
			m.failure = true
			return m, nil
		}
		m.notice = "Your changes have been successfully saved!"
		return m, nil

	case imageUploadedMsg:
		m.uploading = false
		if msg.err != nil {
			logger.LogError(msg.err, "uploading profile picture")
			m.notice = "Could not upload the image. Check the file path and try again."
			m.failure = true
			return m, nil
		}
		m.ed.UpdateProfileField("image", msg.url)
		m.notice = "Image uploaded. Press 's' to save your profile."
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

func (m profileModel) updateEditing(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		field := profileFields[m.selected]
		value := m.input.Value()
		m.editing = false
		m.input.Blur()
		if field.key == "image" {
			if value == "" {
				return m, nil
			}
			return m.upload(value)
		}
		m.ed.UpdateProfileField(field.key, value)
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m profileModel) updateNavigation(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(profileFields)-1 {
			m.selected++
		}
		return m, nil
	case "enter", "e":
		field := profileFields[m.selected]
		m.editing = true
		if field.key == "image" {
			// Edit a fresh path rather than the hosted URL.
			m.input.SetValue("")
			m.input.Placeholder = "e.g. ~/Pictures/avatar.png"
		} else {
			m.input.SetValue(m.fieldValue(field.key))
			m.input.Placeholder = ""
		}
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	case "s":
		return m.save()
	}
	return m, nil
}

func (m profileModel) View() string {
	out := renderTitle("Profile Details")
	out += mutedStyle.Render("Add your details to create a personal touch to your profile.") + "\n\n"

	for i, field := range profileFields {
		marker := "  "
		labelStyle := fieldLabelStyle
		if i == m.selected {
			marker = selectedStyle.Render("→ ")
			labelStyle = selectedStyle
		}
		out += marker + labelStyle.Render(field.label) + "\n"

		if i == m.selected && m.editing {
			out += "    " + m.input.View() + "\n"
		} else if v := m.fieldValue(field.key); v != "" {
			out += "    " + boldStyle.Render(v) + "\n"
		} else {
			out += "    " + mutedStyle.Render("(empty)") + "\n"
		}

		if msg, ok := m.verrs.Lookup(0, field.key); ok {
			out += "    " + fieldErrorStyle.Render(msg) + "\n"
		}
		out += "\n"
	}

	out += mutedStyle.Render("Image must be below 1024x1024px. Use PNG or JPG format.") + "\n\n"

	switch {
	case m.uploading:
		out += infoStyle.Render("Uploading image") + "\n"
	case m.saving:
		out += infoStyle.Render("Saving") + "\n"
	case m.failure:
		out += renderError(m.notice) + "\n"
	case m.notice != "":
		out += renderSuccess(m.notice) + "\n"
	}

	if m.editing {
		out += "\n" + helpStyle.Render("enter to confirm · esc to cancel") + "\n"
	} else {
		out += "\n" + helpStyle.Render("↑/↓ select · enter edit · s save · q quit") + "\n"
	}
	return out
}
