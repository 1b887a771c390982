package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
	"github.com/Rutvikrj26/cpd-events-cli/internal/sanitize"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Overview of your profile, upcoming events, and CPD progress",
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	if app.store.Token() == "" {
		return fmt.Errorf("not logged in: run 'cpd login' first")
	}

	// The sections load in parallel and fail independently; one broken
	// endpoint should not blank the whole dashboard.
	var (
		user        *platform.User
		userErr     error
		upcoming    api.Page[platform.Event]
		upcomingErr error
		summary     *platform.CPDSummary
		summaryErr  error
		enrollments api.Page[platform.Enrollment]
		enrollErr   error
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		user, userErr = app.client.Me(ctx)
		return nil
	})
	g.Go(func() error {
		upcoming, upcomingErr = app.client.ListEvents(ctx, api.EventListOptions{Upcoming: true})
		return nil
	})
	g.Go(func() error {
		summary, summaryErr = app.client.CPDSummary(ctx)
		return nil
	})
	g.Go(func() error {
		enrollments, enrollErr = app.client.MyEnrollments(ctx)
		return nil
	})
	_ = g.Wait()

	out := cmd.OutOrStdout()

	if userErr != nil {
		// A dead session makes every other section fail the same way.
		return userErr
	}
	fmt.Fprintf(out, "Welcome back, %s\n\n", user.FullName())

	fmt.Fprintln(out, "CPD progress")
	if summaryErr != nil {
		fmt.Fprintf(out, "  unavailable: %s\n", api.ErrorMessage(summaryErr))
	} else {
		fmt.Fprintf(out, "  %s of %s points this period (%s remaining), %s lifetime\n",
			formatPoints(summary.PeriodPoints),
			formatPoints(summary.RequiredPoints),
			formatPoints(summary.Remaining()),
			formatPoints(summary.TotalPoints))
	}

	fmt.Fprintln(out, "\nUpcoming events")
	switch {
	case upcomingErr != nil:
		fmt.Fprintf(out, "  unavailable: %s\n", api.ErrorMessage(upcomingErr))
	case len(upcoming.Results) == 0:
		fmt.Fprintln(out, "  none")
	default:
		rows := make([][]string, 0, len(upcoming.Results))
		for _, event := range upcoming.Results {
			rows = append(rows, []string{
				"  " + event.ID.String(),
				formatTime(event.StartTime),
				truncate(sanitize.Text(event.Title), 40),
				formatPoints(event.CPDPoints),
			})
		}
		table(out, []string{"  UUID", "STARTS", "TITLE", "CPD"}, rows)
	}

	fmt.Fprintln(out, "\nCourses in progress")
	switch {
	case enrollErr != nil:
		fmt.Fprintf(out, "  unavailable: %s\n", api.ErrorMessage(enrollErr))
	default:
		active := enrollments.Results[:0:0]
		for _, e := range enrollments.Results {
			if e.Status != platform.EnrollmentStatusCompleted {
				active = append(active, e)
			}
		}
		if len(active) == 0 {
			fmt.Fprintln(out, "  none")
			break
		}
		rows := make([][]string, 0, len(active))
		for _, e := range active {
			rows = append(rows, []string{
				"  " + e.ID.String(),
				truncate(sanitize.Text(e.Course.Title), 40),
				fmt.Sprintf("%.0f%%", e.Progress),
			})
		}
		table(out, []string{"  UUID", "COURSE", "PROGRESS"}, rows)
	}

	return nil
}
