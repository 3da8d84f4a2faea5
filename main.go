package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"runpulse/internal/auth"
	"runpulse/internal/config"
	"runpulse/internal/report"
	"runpulse/internal/service"
	"runpulse/internal/store"
	"runpulse/internal/strava"
	"runpulse/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "runpulse: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	command := ""
	args := os.Args[1:]
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	flags := flag.NewFlagSet("runpulse", flag.ExitOnError)
	sportType := flags.String("sport", "", "activity category to analyze (default from config)")
	weeks := flags.Int("weeks", 0, "trailing window size in weeks (default from config)")
	outDir := flags.String("out", "", "output directory for export (default from config)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to add your Strava API credentials.")
		fmt.Println("Get them from: https://www.strava.com/settings/api")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	if *sportType == "" {
		*sportType = cfg.Analysis.SportType
	}
	if *weeks == 0 {
		*weeks = cfg.Analysis.WindowWeeks
	}
	if *outDir == "" {
		*outDir = cfg.Analysis.ExportDir
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	insightsSvc := service.NewInsightsService(db, log)

	// Commands over cached data don't need a Strava client.
	switch command {
	case "report":
		data, err := insightsSvc.Insights(*sportType, *weeks)
		if err != nil {
			return err
		}
		fmt.Print(report.Render(data))
		if !data.Empty() {
			fmt.Println("\nINDIVIDUAL RUN DETAILS:")
			fmt.Print(report.RunDetails(data))
		}
		return nil

	case "export":
		ds, err := insightsSvc.Dataset()
		if err != nil {
			return err
		}
		if len(ds) == 0 {
			fmt.Println("No cached activities to export. Run 'runpulse sync' first.")
			return nil
		}
		path, err := report.ExportCSV(*outDir, ds, time.Now())
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"file": path, "activities": len(ds)}).Info("exported activities")
		return nil
	}

	// Everything else talks to the API and needs auth.
	tokenSource, err := bootstrapAuth(ctx, db, cfg)
	if err != nil {
		return err
	}
	stravaClient := strava.NewClient(tokenSource)
	syncSvc := service.NewSyncService(stravaClient, db, log)

	switch command {
	case "sync":
		result, err := syncSvc.SyncAll(ctx, nil)
		if err != nil {
			return err
		}
		for _, e := range result.Errors {
			log.WithError(e).Warn("sync issue")
		}
		fmt.Printf("Synced %d activities (%d stored, %d skipped) in %s\n",
			result.Fetched, result.Stored, result.Skipped, result.Duration.Round(time.Millisecond))
		return nil

	case "":
		// TUI owns the terminal; keep log noise out of it.
		log.SetOutput(io.Discard)

		app := tui.NewApp(syncSvc, insightsSvc, *sportType, *weeks)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q (want sync, report, or export)", command)
	}
}

// bootstrapAuth returns a refreshing token source, running the OAuth
// flow first if no valid tokens are stored.
func bootstrapAuth(ctx context.Context, db *store.Store, cfg *config.Config) (*auth.TokenSource, error) {
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Strava.ClientID,
		ClientSecret: cfg.Strava.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", auth.CallbackPort),
	})

	storedAuth, err := db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) {
		fmt.Println("No authentication found. Starting OAuth flow...")
		if err := authenticate(ctx, db, oauthCfg); err != nil {
			return nil, fmt.Errorf("authentication: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return nil, fmt.Errorf("fetching auth after login: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking auth: %w", err)
	}

	token := &oauth2.Token{
		AccessToken:  storedAuth.AccessToken,
		RefreshToken: storedAuth.RefreshToken,
		Expiry:       storedAuth.ExpiresAt,
	}

	tokenSource := auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
		return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
	})

	// Force a refresh now so an expired grant surfaces before any sync.
	if _, err := tokenSource.Token(); err != nil {
		fmt.Println("Stored token is invalid or expired. Re-authenticating...")
		if err := authenticate(ctx, db, oauthCfg); err != nil {
			return nil, fmt.Errorf("re-authentication: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return nil, fmt.Errorf("fetching auth after re-login: %w", err)
		}
		token = &oauth2.Token{
			AccessToken:  storedAuth.AccessToken,
			RefreshToken: storedAuth.RefreshToken,
			Expiry:       storedAuth.ExpiresAt,
		}
		tokenSource = auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
			return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
		})
	}

	return tokenSource, nil
}

func authenticate(ctx context.Context, db *store.Store, oauthCfg *oauth2.Config) error {
	result, err := auth.Authenticate(ctx, oauthCfg)
	if err != nil {
		return err
	}

	storedAuth := &store.Auth{
		AthleteID:    result.AthleteID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	}
	if err := db.SaveAuth(storedAuth); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}

	fmt.Println()
	fmt.Printf("Successfully authenticated as athlete %d!\n", result.AthleteID)
	return nil
}
