package tui

import (
	"context"

	"devlinks-go/pkg/auth"
	"devlinks-go/pkg/cli/logger"
	"devlinks-go/pkg/config"
	"devlinks-go/pkg/editor"
	"devlinks-go/pkg/graphql"
	"devlinks-go/pkg/services"
	"devlinks-go/pkg/uploader"

	tea "github.com/charmbracelet/bubbletea"
)

// Deps carries the shared collaborators into the TUI. Everything is passed
// explicitly so flows (and tests) can construct isolated instances.
type Deps struct {
	Cfg      *config.Config
	Session  *auth.Session
	Auth     *auth.Client
	Uploader *uploader.Client
	Start    StartView
}

// StartView selects the first screen of the dashboard.
type StartView int

const (
	// StartAuto picks the loading screen for an authenticated session and
	// the login form otherwise.
	StartAuto StartView = iota
	StartLogin
	StartSignup
)

// Root views.
const (
	viewLogin = iota
	viewSignup
	viewLoading
	viewDashboard
	viewError
)

// Dashboard tabs.
const (
	tabLinks = iota
	tabProfile
	tabPreview
)

// rootModel is the app shell: it owns the session flow (login, signup,
// initial fetch) and hands control to the dashboard tabs once the remote
// profile has been loaded into the editor.
type rootModel struct {
	deps Deps

	view int
	tab  int

	login  loginModel
	signup signupModel

	ed      *editor.Editor
	saver   *services.Saver
	links   linksModel
	profile profileModel
	preview previewModel

	err error
}

// NewRootModel constructs the app shell.
func NewRootModel(deps Deps) tea.Model {
	m := &rootModel{
		deps:   deps,
		login:  newLoginModel(deps.Auth),
		signup: newSignupModel(deps.Auth),
		ed:     editor.New(),
	}
	switch {
	case deps.Start == StartSignup:
		m.view = viewSignup
	case deps.Start == StartLogin || !deps.Session.Authenticated():
		m.view = viewLogin
	default:
		m.view = viewLoading
	}
	return m
}

func (m *rootModel) Init() tea.Cmd {
	switch m.view {
	case viewLoading:
		return m.fetchProfile()
	case viewSignup:
		return m.signup.Init()
	}
	return m.login.Init()
}

// fetchProfile loads the remote profile and links with the session token.
func (m *rootModel) fetchProfile() tea.Cmd {
	token := m.deps.Session.Token()
	url := m.deps.Cfg.Hasura.URL
	return func() tea.Msg {
		gql := graphql.NewClient(url, token)
		profile, links, err := gql.GetUserProfile(context.Background())
		return profileFetchedMsg{profile: profile, links: links, err: err}
	}
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			return m.delegate(msg)
		}
		if err := m.deps.Session.Login(msg.token); err != nil {
			logger.LogError(err, "persisting session after login")
			return m.delegate(loginResultMsg{err: err})
		}
		m.view = viewLoading
		return m, m.fetchProfile()

	case profileFetchedMsg:
		if msg.err != nil {
			logger.LogError(msg.err, "initial profile fetch")
			if graphql.IsAuthError(msg.err) {
				// Session is no longer valid: clear it and route to login.
				m.deps.Session.Logout()
				m.login = newLoginModel(m.deps.Auth)
				m.login.notice = "Your session is no longer valid. Please log in again."
				m.view = viewLogin
				return m, m.login.Init()
			}
			m.err = msg.err
			m.view = viewError
			return m, nil
		}
		m.ed.SetRemote(msg.profile, msg.links)
		gql := graphql.NewClient(m.deps.Cfg.Hasura.URL, m.deps.Session.Token())
		m.saver = services.NewSaver(gql)
		userID := m.deps.Session.Subject()
		m.links = newLinksModel(m.ed, m.saver, userID)
		m.profile = newProfileModel(m.ed, m.saver, m.deps.Uploader, userID)
		m.preview = newPreviewModel(m.ed, m.deps.Cfg.CLI.BaseLink)
		m.view = viewDashboard
		m.tab = tabLinks
		return m, nil

	case switchToSignupMsg:
		m.view = viewSignup
		m.signup = newSignupModel(m.deps.Auth)
		return m, m.signup.Init()

	case switchToLoginMsg:
		m.view = viewLogin
		m.login = newLoginModel(m.deps.Auth)
		m.login.notice = msg.notice
		return m, m.login.Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.view == viewDashboard && !m.capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.tab = tabLinks
				return m, nil
			case "2":
				m.tab = tabProfile
				return m, nil
			case "3":
				m.tab = tabPreview
				return m, nil
			}
		}
		if m.view == viewError {
			switch msg.String() {
			case "r":
				m.view = viewLoading
				return m, m.fetchProfile()
			case "q", "esc":
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m.delegate(msg)
}

// capturing reports whether the active tab is consuming raw key input.
func (m *rootModel) capturing() bool {
	switch m.tab {
	case tabLinks:
		return m.links.capturing()
	case tabProfile:
		return m.profile.capturing()
	}
	return false
}

// delegate routes a message to the active flow model.
func (m *rootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewLogin:
		m.login, cmd = m.login.Update(msg)
	case viewSignup:
		m.signup, cmd = m.signup.Update(msg)
	case viewDashboard:
		switch m.tab {
		case tabLinks:
			m.links, cmd = m.links.Update(msg)
		case tabProfile:
			m.profile, cmd = m.profile.Update(msg)
		case tabPreview:
			m.preview, cmd = m.preview.Update(msg)
		}
	}
	return m, cmd
}

func (m *rootModel) View() string {
	switch m.view {
	case viewLogin:
		return m.login.View()
	case viewSignup:
		return m.signup.View()
	case viewLoading:
		return "\n" + infoStyle.Render("Loading your profile...") + "\n"
	case viewError:
		return "\n" + renderError("Could not load your profile: "+m.err.Error()) + "\n\n" +
			helpStyle.Render("Press 'r' to retry, 'q' to quit.") + "\n"
	}

	header := m.renderTabs()
	var body string
	switch m.tab {
	case tabLinks:
		body = m.links.View()
	case tabProfile:
		body = m.profile.View()
	case tabPreview:
		body = m.preview.View()
	}
	return header + body
}

func (m *rootModel) renderTabs() string {
	tabs := []string{"[1] Links", "[2] Profile", "[3] Preview"}
	out := "\n  "
	for i, t := range tabs {
		if i == m.tab {
			out += activeTabStyle.Render(t)
		} else {
			out += inactiveTabStyle.Render(t)
		}
		out += "   "
	}
	return out + "\n  " + renderDivider(50) + "\n"
}
