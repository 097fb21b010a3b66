package tui

import (
	"context"
	"errors"
	"fmt"

	"devlinks-go/pkg/cli/logger"
	"devlinks-go/pkg/editor"
	"devlinks-go/pkg/models"
	"devlinks-go/pkg/services"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// linksModel is the "Customize your links" tab: an ordered, reorderable
// list of platform/URL rows edited in place and saved through the
// reconciliation workflow.
type linksModel struct {
	ed     *editor.Editor
	saver  *services.Saver
	userID string

	selected int
	grabbed  bool // selected row moves with the cursor

	editingURL bool
	urlInput   textinput.Model

	saving  bool
	verrs   services.ValidationErrors
	notice  string
	failure bool
}

func newLinksModel(ed *editor.Editor, saver *services.Saver, userID string) linksModel {
	urlInput := textinput.New()
	urlInput.CharLimit = 256
	urlInput.Width = 50

	return linksModel{
		ed:       ed,
		saver:    saver,
		userID:   userID,
		urlInput: urlInput,
	}
}

func (m linksModel) capturing() bool {
	return m.editingURL
}

func (m linksModel) save() (linksModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.saving = true
	m.verrs = nil
	m.notice = ""
	m.failure = false

	// Snapshot here, on the event loop. The command goroutine works only
	// on the copies; the editor is committed when the result arrives.
	links := m.ed.Links()
	removed := m.ed.Removed()
	saver, userID := m.saver, m.userID
	return m, func() tea.Msg {
		res, err := saver.SaveLinks(context.Background(), links, removed, userID)
		return linksSavedMsg{result: res, err: err}
	}
}

func (m linksModel) Update(msg tea.Msg) (linksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case linksSavedMsg:
		m.saving = false
		m.ed.CommitRemovals(msg.result.Deleted)
		m.ed.MarkSaved(msg.result.Saved)
		if msg.err != nil {
			var verrs services.ValidationErrors
			if errors.As(msg.err, &verrs) {
				m.verrs = verrs
				return m, nil
			}
			logger.LogError(msg.err, "saving links")
			m.notice = "An error occurred while saving your changes."
			m.failure = true
			return m, nil
		}
		m.notice = "Your changes have been successfully saved!"
		return m, nil

	case tea.KeyMsg:
		if m.editingURL {
			return m.updateURLEditing(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

func (m linksModel) updateURLEditing(msg tea.KeyMsg) (linksModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		links := m.ed.Links()
		if m.selected < len(links) {
			url := m.urlInput.Value()
			m.ed.UpdateLink(links[m.selected].ID, editor.LinkUpdate{URL: &url})
		}
		m.editingURL = false
		m.urlInput.Blur()
		return m, nil
	case "esc":
		m.editingURL = false
		m.urlInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m linksModel) updateNavigation(msg tea.KeyMsg) (linksModel, tea.Cmd) {
	links := m.ed.Links()
	switch msg.String() {
	case "up", "k":
		if m.grabbed {
			// Grab-and-move stands in for the pointer drag: the row follows
			// the cursor one step at a time.
			m.ed.Reorder(m.selected, m.selected-1)
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		}
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.grabbed {
			m.ed.Reorder(m.selected, m.selected+1)
			if m.selected < len(links)-1 {
				m.selected++
			}
			return m, nil
		}
		if m.selected < len(links)-1 {
			m.selected++
		}
		return m, nil

	case " ", "g":
		if len(links) > 0 {
			m.grabbed = !m.grabbed
		}
		return m, nil

	case "a":
		m.ed.AddLink()
		m.selected = len(links) // select the appended row
		m.grabbed = false
		m.notice = ""
		return m, nil

	case "x", "backspace":
		if m.selected < len(links) {
			m.ed.RemoveLink(links[m.selected].ID)
			if m.selected > 0 && m.selected >= len(links)-1 {
				m.selected--
			}
			m.grabbed = false
			m.verrs = nil
		}
		return m, nil

	case "left", "h":
		m.cyclePlatform(-1)
		return m, nil

	case "right", "l":
		m.cyclePlatform(1)
		return m, nil

	case "enter", "e":
		if m.selected < len(links) {
			m.editingURL = true
			m.urlInput.SetValue(links[m.selected].URL)
			m.urlInput.CursorEnd()
			m.urlInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case "s":
		return m.save()
	}
	return m, nil
}

// cyclePlatform steps the selected link through the platform enumeration.
func (m *linksModel) cyclePlatform(step int) {
	links := m.ed.Links()
	if m.selected >= len(links) {
		return
	}
	all := models.Platforms()
	idx := 0
	for i, p := range all {
		if p.Key == links[m.selected].Platform {
			idx = i
			break
		}
	}
	idx = (idx + step + len(all)) % len(all)
	key := all[idx].Key
	m.ed.UpdateLink(links[m.selected].ID, editor.LinkUpdate{Platform: &key})
}

func (m linksModel) View() string {
	out := renderTitle("Customize your links")
	out += mutedStyle.Render("Add/edit/remove links below and then share all your profiles with the world!") + "\n\n"

	links := m.ed.Links()
	if len(links) == 0 {
		out += boldStyle.Render("Let's get you started") + "\n"
		out += mutedStyle.Render("Press 'a' to add your first link. Once you have more than\none link, you can reorder and edit them.") + "\n"
	}

	for i, link := range links {
		marker := "  "
		rowStyle := boldStyle
		if i == m.selected {
			marker = selectedStyle.Render("→ ")
			rowStyle = selectedStyle
			if m.grabbed {
				marker = grabbedStyle.Render("⇅ ")
				rowStyle = grabbedStyle
			}
		}

		platform := models.PlatformByKey(link.Platform)
		label := fmt.Sprintf("Link #%d", i+1)
		if link.IsNew {
			label += " (unsaved)"
		}
		out += fmt.Sprintf("%s%s  %s\n", marker, rowStyle.Render(label), renderPlatformBadge(platform, 18))

		if i == m.selected && m.editingURL {
			out += "    " + m.urlInput.View() + "\n"
		} else if link.URL == "" {
			out += "    " + mutedStyle.Render(fmt.Sprintf("e.g. https://%s.com/username", link.Platform)) + "\n"
		} else {
			out += "    " + urlStyle.Render(link.URL) + "\n"
		}

		if msg, ok := m.verrs.Lookup(i, "platform"); ok {
			out += "    " + fieldErrorStyle.Render("Platform: "+msg) + "\n"
		}
		if msg, ok := m.verrs.Lookup(i, "url"); ok {
			out += "    " + fieldErrorStyle.Render("Link: "+msg) + "\n"
		}
	}

	out += "\n"
	switch {
	case m.saving:
		out += infoStyle.Render("Saving") + "\n"
	case m.failure:
		out += renderError(m.notice) + "\n"
	case m.notice != "":
		out += renderSuccess(m.notice) + "\n"
	}

	if m.editingURL {
		out += "\n" + helpStyle.Render("enter to keep the URL · esc to cancel") + "\n"
	} else {
		out += "\n" + helpStyle.Render("a add · x remove · space grab/drop · ←/→ platform · enter edit URL · s save · q quit") + "\n"
	}
	return out
}
