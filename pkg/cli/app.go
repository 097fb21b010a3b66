package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"devlinks-go/pkg/auth"
	"devlinks-go/pkg/cli/tui"
	"devlinks-go/pkg/config"
	"devlinks-go/pkg/graphql"
	"devlinks-go/pkg/models"
	"devlinks-go/pkg/uploader"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"
)

// App wires the CLI commands and the interactive dashboard together.
type App struct {
	cfg     *config.Config
	session *auth.Session
}

func NewApp(cfg *config.Config) (*App, error) {
	tokenPath, err := config.TokenPath()
	if err != nil {
		return nil, err
	}
	session, err := auth.NewSession(auth.NewTokenStore(tokenPath))
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, session: session}, nil
}

// Run starts the interactive dashboard. Unauthenticated users land on the
// login form first; the requested view is shown once a session exists.
func (a *App) Run() error {
	return a.run(tui.StartAuto)
}

// Login starts the dashboard on the login form. Already authenticated
// sessions skip it.
func (a *App) Login() error {
	if a.session.Authenticated() {
		fmt.Printf("Already logged in as %s\n", a.session.Subject())
		return nil
	}
	return a.run(tui.StartLogin)
}

// Signup starts the dashboard on the account creation form.
func (a *App) Signup() error {
	return a.run(tui.StartSignup)
}

func (a *App) run(start tui.StartView) error {
	deps := tui.Deps{
		Cfg:     a.cfg,
		Session: a.session,
		Auth: auth.NewClient(
			a.cfg.Auth0.Domain,
			a.cfg.Auth0.ClientID,
			a.cfg.Auth0.ClientSecret,
			a.cfg.Auth0.Audience,
			a.cfg.Auth0.Connection,
		),
		Uploader: uploader.NewClient(a.cfg.Cloudinary.CloudName, a.cfg.Cloudinary.UploadPreset),
		Start:    start,
	}

	p := tea.NewProgram(tui.NewRootModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ListLinks prints the authenticated user's links as a table.
func (a *App) ListLinks(ctx context.Context) error {
	if !a.session.Authenticated() {
		return fmt.Errorf("not logged in; run with -login first")
	}

	gql := graphql.NewClient(a.cfg.Hasura.URL, a.session.Token())
	_, links, err := gql.GetUserProfile(ctx)
	if err != nil {
		if graphql.IsAuthError(err) {
			a.session.Logout()
			return fmt.Errorf("session is no longer valid; please log in again")
		}
		return err
	}

	if len(links) == 0 {
		fmt.Println("No links yet. Use the dashboard to add some.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tPlatform\tURL")
	fmt.Fprintln(w, "───\t───\t───")
	for i, link := range links {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, models.PlatformByKey(link.Platform).Name, link.URL)
	}
	w.Flush()
	fmt.Printf("\nTotal: %d link(s)\n", len(links))
	return nil
}

// ShowProfile prints the authenticated user's profile details.
func (a *App) ShowProfile(ctx context.Context) error {
	if !a.session.Authenticated() {
		return fmt.Errorf("not logged in; run with -login first")
	}

	gql := graphql.NewClient(a.cfg.Hasura.URL, a.session.Token())
	profile, links, err := gql.GetUserProfile(ctx)
	if err != nil {
		if graphql.IsAuthError(err) {
			a.session.Logout()
			return fmt.Errorf("session is no longer valid; please log in again")
		}
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "First name:\t%s\n", profile.FirstName)
	fmt.Fprintf(w, "Last name:\t%s\n", profile.LastName)
	fmt.Fprintf(w, "Email:\t%s\n", profile.Email)
	fmt.Fprintf(w, "Image:\t%s\n", profile.Image)
	fmt.Fprintf(w, "Links:\t%d\n", len(links))
	if profile.ID != nil {
		fmt.Fprintf(w, "Share link:\t%s%s\n", a.cfg.CLI.BaseLink, *profile.ID)
	}
	w.Flush()
	return nil
}

// ShowPublicProfile prints a public profile card to stdout.
func (a *App) ShowPublicProfile(ctx context.Context, userID string) error {
	gql := graphql.NewAdminClient(a.cfg.Hasura.URL, a.cfg.Hasura.AdminSecret)
	profile, err := gql.GetPublicProfile(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s", profile.FirstName, profile.LastName)
	if profile.Email != "" {
		fmt.Printf("  <%s>", profile.Email)
	}
	fmt.Println()
	for _, link := range profile.Links {
		fmt.Printf("  %-16s %s\n", models.PlatformByKey(link.Platform).Name, link.URL)
	}
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout() error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// ShowConfig displays the current configuration.
func (a *App) ShowConfig() {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		fmt.Printf("Error marshaling config: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// SetConfig sets a configuration value.
// Format: section.key=value (e.g., "hasura.url=https://...").
func (a *App) SetConfig(setStr string) error {
	parts := strings.SplitN(setStr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	keyPath := strings.Split(parts[0], ".")
	value := parts[1]
	if len(keyPath) != 2 {
		return fmt.Errorf("invalid key format: expected 'section.key'")
	}

	section := keyPath[0]
	key := keyPath[1]

	switch section {
	case "auth0":
		switch key {
		case "domain":
			a.cfg.Auth0.Domain = value
		case "client_id":
			a.cfg.Auth0.ClientID = value
		case "client_secret":
			a.cfg.Auth0.ClientSecret = value
		case "audience":
			a.cfg.Auth0.Audience = value
		case "connection":
			a.cfg.Auth0.Connection = value
		default:
			return fmt.Errorf("unknown auth0 key: %s", key)
		}
	case "hasura":
		switch key {
		case "url":
			a.cfg.Hasura.URL = value
		case "admin_secret":
			a.cfg.Hasura.AdminSecret = value
		default:
			return fmt.Errorf("unknown hasura key: %s", key)
		}
	case "cloudinary":
		switch key {
		case "cloud_name":
			a.cfg.Cloudinary.CloudName = value
		case "upload_preset":
			a.cfg.Cloudinary.UploadPreset = value
		default:
			return fmt.Errorf("unknown cloudinary key: %s", key)
		}
	case "server":
		switch key {
		case "host":
			a.cfg.Server.Host = value
		case "port":
			var port int
			if _, err := fmt.Sscanf(value, "%d", &port); err != nil {
				return fmt.Errorf("invalid port value: %s", value)
			}
			a.cfg.Server.Port = port
		default:
			return fmt.Errorf("unknown server key: %s", key)
		}
	case "cli":
		switch key {
		case "base_link":
			a.cfg.CLI.BaseLink = value
		default:
			return fmt.Errorf("unknown cli key: %s", key)
		}
	default:
		return fmt.Errorf("unknown section: %s", section)
	}

	return config.Save(a.cfg)
}
