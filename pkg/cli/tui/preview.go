package tui

import (
	"strings"

	"devlinks-go/pkg/editor"
	"devlinks-go/pkg/models"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// previewModel renders the phone-mockup view of the current editor state
// and exposes the public share link.
type previewModel struct {
	ed       *editor.Editor
	baseLink string

	notice  string
	failure bool
}

func newPreviewModel(ed *editor.Editor, baseLink string) previewModel {
	return previewModel{ed: ed, baseLink: baseLink}
}

func (m previewModel) shareLink() string {
	p := m.ed.Profile()
	if p.ID == nil {
		return ""
	}
	return m.baseLink + *p.ID
}

func (m previewModel) Update(msg tea.Msg) (previewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "c" {
		link := m.shareLink()
		if link == "" {
			m.notice = "Save your profile first to get a share link."
			m.failure = true
			return m, nil
		}
		if err := clipboard.WriteAll(link); err != nil {
			m.notice = "Could not copy to clipboard."
			m.failure = true
			return m, nil
		}
		m.notice = "The link has been copied to your clipboard!"
		m.failure = false
	}
	return m, nil
}

func (m previewModel) View() string {
	out := renderTitle("Preview")

	profile := m.ed.Profile()
	links := m.ed.Links()

	var card strings.Builder
	if profile.Image != "" {
		card.WriteString(mutedStyle.Render("◯ "+profile.Image) + "\n\n")
	} else {
		card.WriteString(mutedStyle.Render("◯") + "\n\n")
	}

	name := strings.TrimSpace(profile.FirstName + " " + profile.LastName)
	if name == "" {
		name = mutedStyle.Render("Your Name")
	} else {
		name = boldStyle.Render(name)
	}
	card.WriteString(name + "\n")
	if profile.Email != "" {
		card.WriteString(mutedStyle.Render(profile.Email) + "\n")
	}
	card.WriteString("\n")

	if len(links) == 0 {
		card.WriteString(mutedStyle.Render("No links yet") + "\n")
	}
	for _, link := range links {
		card.WriteString(renderPlatformBadge(models.PlatformByKey(link.Platform), 30) + "\n")
	}

	out += cardStyle.Render(card.String()) + "\n\n"

	if link := m.shareLink(); link != "" {
		out += fieldLabelStyle.Render("Share link") + "\n"
		out += urlStyle.Render(link) + "\n\n"
	}

	switch {
	case m.failure:
		out += renderError(m.notice) + "\n\n"
	case m.notice != "":
		out += renderSuccess(m.notice) + "\n\n"
	}

	out += helpStyle.Render("c copy share link · 1/2 back to editing · q quit") + "\n"
	return out
}
