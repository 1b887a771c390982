package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/config"
	"github.com/Rutvikrj26/cpd-events-cli/internal/credstore"
	"github.com/Rutvikrj26/cpd-events-cli/internal/telemetry"
)

var (
	// Global flags
	apiURL    string
	configDir string
	logLevel  string
	logFormat string

	tracingShutdown func(context.Context) error

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cpd",
		Short: "CPD Events platform client",
		Long: `cpd is the command-line client for the CPD Events platform.

It covers the day-to-day surface of the platform:
- Events: browse, create, publish, register, attendance
- Courses: browse, enroll, track CPD credit
- Certificates and badges
- Organization and team/seat management
- Billing via Stripe-hosted checkout and portal pages`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			shutdown, err := telemetry.InitTracing(cmd.Context(), cfg.Tracing, Version)
			if err != nil {
				return fmt.Errorf("init tracing: %w", err)
			}
			tracingShutdown = shutdown
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if tracingShutdown != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = tracingShutdown(ctx)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show the dashboard
			return dashboardCmd.RunE(cmd, args)
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", api.ErrorMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend API base URL (default: CPD_API_URL)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "credentials/config directory (default: CPD_CONFIG_DIR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: warn)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console) (default: console)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(certsCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(orgCmd)
	rootCmd.AddCommand(billingCmd)
	rootCmd.AddCommand(promoCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(versionCmd)
}

// app bundles everything a command needs to talk to the backend.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
	store  *credstore.Store
	client *api.Client
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if configDir != "" {
		cfg.ConfigDir = configDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, nil
}

// newApp wires config, credentials, logger, and the API client.
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := credstore.Open(cfg.ConfigDir)
	if err != nil {
		return nil, err
	}

	logger := config.NewLogger(cfg.Logging, store.Theme() == "plain")

	if store.Expired(time.Now()) {
		logger.Warn().Msg("stored session token has expired; run 'cpd login'")
	}

	client := api.NewClient(cfg.API.BaseURL, store,
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		api.WithRateLimit(cfg.API.RateLimit),
		api.WithCache(cfg.API.CacheTTL),
		api.WithLogger(logger),
	)

	return &app{cfg: cfg, logger: logger, store: store, client: client}, nil
}
