package tui

import (
	"context"

	"devlinks-go/pkg/auth"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel is the email/password form backed by the Auth0 password grant.
type loginModel struct {
	authClient *auth.Client

	email    textinput.Model
	password textinput.Model
	focus    int // 0=email, 1=password

	submitting bool
	notice     string
	errMsg     string
	fieldErrs  map[string]string
}

func newLoginModel(authClient *auth.Client) loginModel {
	email := textinput.New()
	email.Placeholder = "e.g. alex@email.com"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 40

	return loginModel{
		authClient: authClient,
		email:      email,
		password:   password,
		fieldErrs:  map[string]string{},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	m.fieldErrs = map[string]string{}
	if m.email.Value() == "" {
		m.fieldErrs["email"] = "Can't be empty"
	}
	if m.password.Value() == "" {
		m.fieldErrs["password"] = "Please check again"
	}
	if len(m.fieldErrs) > 0 {
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	email, password := m.email.Value(), m.password.Value()
	client := m.authClient
	return m, func() tea.Msg {
		token, err := client.Login(context.Background(), email, password)
		return loginResultMsg{token: token, err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			if msg.err == auth.ErrInvalidCredentials {
				m.errMsg = "Invalid email or password"
			} else {
				m.errMsg = "An error occurred. Please try again later."
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.password.Focus()
				m.email.Blur()
			}
			return m, textinput.Blink
		case "enter":
			if m.focus == 0 {
				m.focus = 1
				m.password.Focus()
				m.email.Blur()
				return m, textinput.Blink
			}
			return m.submit()
		case "ctrl+s":
			return m, func() tea.Msg { return switchToSignupMsg{} }
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) View() string {
	out := renderTitle("Login")
	out += mutedStyle.Render("Add your details below to get back into the app") + "\n\n"
	if m.notice != "" {
		out += infoStyle.Render(m.notice) + "\n\n"
	}

	out += fieldLabelStyle.Render("Email address") + "\n"
	out += m.email.View() + "\n"
	if msg, ok := m.fieldErrs["email"]; ok {
		out += fieldErrorStyle.Render(msg) + "\n"
	}
	out += "\n" + fieldLabelStyle.Render("Password") + "\n"
	out += m.password.View() + "\n"
	if msg, ok := m.fieldErrs["password"]; ok {
		out += fieldErrorStyle.Render(msg) + "\n"
	}

	out += "\n"
	if m.submitting {
		out += infoStyle.Render("Logging in...") + "\n"
	} else if m.errMsg != "" {
		out += renderError(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("enter to log in · ctrl+s to create an account · ctrl+c to quit") + "\n"
	return out
}
