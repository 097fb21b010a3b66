package tui

import (
	"context"

	"devlinks-go/pkg/auth"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// signupModel registers a new account against the Auth0 database
// connection, then routes back to login.
type signupModel struct {
	authClient *auth.Client

	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	focus    int

	submitting bool
	errMsg     string
	fieldErrs  map[string]string
}

func newSignupModel(authClient *auth.Client) signupModel {
	email := textinput.New()
	email.Placeholder = "e.g. alex@email.com"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "At least 8 characters"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 40

	confirm := textinput.New()
	confirm.Placeholder = "At least 8 characters"
	confirm.EchoMode = textinput.EchoPassword
	confirm.CharLimit = 128
	confirm.Width = 40

	return signupModel{
		authClient: authClient,
		email:      email,
		password:   password,
		confirm:    confirm,
		fieldErrs:  map[string]string{},
	}
}

func (m signupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *signupModel) inputs() []*textinput.Model {
	return []*textinput.Model{&m.email, &m.password, &m.confirm}
}

func (m signupModel) setFocus(i int) signupModel {
	m.focus = i
	for j, in := range m.inputs() {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	return m
}

func (m signupModel) submit() (signupModel, tea.Cmd) {
	m.fieldErrs = map[string]string{}
	if m.email.Value() == "" {
		m.fieldErrs["email"] = "Can't be empty"
	}
	if len(m.password.Value()) < 8 {
		m.fieldErrs["password"] = "Must be at least 8 characters"
	}
	if m.confirm.Value() != m.password.Value() {
		m.fieldErrs["confirm"] = "Passwords don't match"
	}
	if len(m.fieldErrs) > 0 {
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	email, password := m.email.Value(), m.password.Value()
	client := m.authClient
	return m, func() tea.Msg {
		return signupResultMsg{err: client.Signup(context.Background(), email, password)}
	}
}

func (m signupModel) Update(msg tea.Msg) (signupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signupResultMsg:
		m.submitting = false
		if msg.err != nil {
			if msg.err == auth.ErrEmailTaken {
				m.errMsg = "This email address is already used"
			} else {
				m.errMsg = "An error occurred. Please try again later."
			}
			return m, nil
		}
		return m, func() tea.Msg {
			return switchToLoginMsg{notice: "Account created. Log in to get started."}
		}

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m.setFocus((m.focus + 1) % 3), textinput.Blink
		case "shift+tab", "up":
			return m.setFocus((m.focus + 2) % 3), textinput.Blink
		case "enter":
			if m.focus < 2 {
				return m.setFocus(m.focus + 1), textinput.Blink
			}
			return m.submit()
		case "esc":
			return m, func() tea.Msg { return switchToLoginMsg{} }
		}
	}

	var cmd tea.Cmd
	in := m.inputs()[m.focus]
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m signupModel) View() string {
	out := renderTitle("Create account")
	out += mutedStyle.Render("Let's get you started sharing your links!") + "\n\n"

	fields := []struct {
		label string
		input textinput.Model
		key   string
	}{
		{"Email address", m.email, "email"},
		{"Create password", m.password, "password"},
		{"Confirm password", m.confirm, "confirm"},
	}
	for _, f := range fields {
		out += fieldLabelStyle.Render(f.label) + "\n"
		out += f.input.View() + "\n"
		if msg, ok := m.fieldErrs[f.key]; ok {
			out += fieldErrorStyle.Render(msg) + "\n"
		}
		out += "\n"
	}
	out += mutedStyle.Render("Password must contain at least 8 characters") + "\n\n"

	if m.submitting {
		out += infoStyle.Render("Creating account...") + "\n"
	} else if m.errMsg != "" {
		out += renderError(m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render("enter to create account · esc back to login") + "\n"
	return out
}
