package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var (
	pingTimeout time.Duration

	pingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Probe the backend health endpoint",
		Long: `Calls the unauthenticated health endpoint and reports the backend's
status. Exits non-zero when the backend is unreachable or unhealthy,
so it works as a scriptable connectivity check.`,
		RunE: runPing,
	}
)

func init() {
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 5*time.Second, "probe timeout")
}

func runPing(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
	defer cancel()

	start := time.Now()
	status, err := app.client.Health(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		return fmt.Errorf("backend unreachable at %s: %w", app.cfg.API.BaseURL, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s (%s)\n", app.cfg.API.BaseURL, status.Status, elapsed)

	if len(status.Checks) > 0 {
		names := make([]string, 0, len(status.Checks))
		for name := range status.Checks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %-12s %s\n", name, status.Checks[name])
		}
	}

	if status.Status != "ok" && status.Status != "healthy" {
		return fmt.Errorf("backend reports status %q", status.Status)
	}
	return nil
}
