package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"devlinks-go/pkg/cli"
	"devlinks-go/pkg/cli/logger"
	"devlinks-go/pkg/config"
)

func main() {
	var (
		loginMode   = flag.Bool("login", false, "Open the login form")
		signupMode  = flag.Bool("signup", false, "Open the account creation form")
		listMode    = flag.Bool("list", false, "List your saved links")
		profileMode = flag.Bool("profile", false, "Show your profile details")
		publicUser  = flag.String("public", "", "Show the public profile for a user id")
		logoutMode  = flag.Bool("logout", false, "Clear the stored session")

		// Config commands
		configShow = flag.Bool("config-show", false, "Show current configuration")
		configSet  = flag.String("config-set", "", "Set a config value (format: section.key=value)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}

	// Handle config commands first (don't touch the network)
	if *configShow {
		app.ShowConfig()
		return
	}
	if *configSet != "" {
		if err := app.SetConfig(*configSet); err != nil {
			log.Fatalf("failed to set config: %v", err)
		}
		fmt.Println("Configuration updated successfully")
		return
	}
	if *logoutMode {
		if err := app.Logout(); err != nil {
			log.Fatalf("failed to log out: %v", err)
		}
		return
	}

	ctx := context.Background()
	if *listMode {
		if err := app.ListLinks(ctx); err != nil {
			log.Fatalf("failed to list links: %v", err)
		}
		return
	}
	if *profileMode {
		if err := app.ShowProfile(ctx); err != nil {
			log.Fatalf("failed to fetch profile: %v", err)
		}
		return
	}
	if *publicUser != "" {
		if err := app.ShowPublicProfile(ctx, *publicUser); err != nil {
			log.Fatalf("failed to fetch public profile: %v", err)
		}
		return
	}

	// Interactive dashboard
	defer logger.CloseLog()
	run := app.Run
	switch {
	case *loginMode:
		run = app.Login
	case *signupMode:
		run = app.Signup
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
