package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/feedback"
	"github.com/Rutvikrj26/cpd-events-cli/internal/forms"
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Submit and summarize event feedback",
}

var (
	feedbackRating   int
	feedbackContent  int
	feedbackDelivery int
	feedbackVenue    int
	feedbackComment  string

	feedbackSubmitCmd = &cobra.Command{
		Use:   "submit <event-uuid>",
		Short: "Submit feedback for an event you attended",
		Args:  cobra.ExactArgs(1),
		RunE:  runFeedbackSubmit,
	}
)

var feedbackSummaryCmd = &cobra.Command{
	Use:   "summary <event-uuid>",
	Short: "Aggregate an event's feedback (organizer view)",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedbackSummary,
}

func init() {
	feedbackSubmitCmd.Flags().IntVar(&feedbackRating, "rating", 0, "overall rating 1-5 (required)")
	feedbackSubmitCmd.Flags().IntVar(&feedbackContent, "content", 0, "content rating 1-5")
	feedbackSubmitCmd.Flags().IntVar(&feedbackDelivery, "delivery", 0, "delivery rating 1-5")
	feedbackSubmitCmd.Flags().IntVar(&feedbackVenue, "venue", 0, "venue rating 1-5")
	feedbackSubmitCmd.Flags().StringVar(&feedbackComment, "comment", "", "free-text comment")

	feedbackCmd.AddCommand(feedbackSubmitCmd)
	feedbackCmd.AddCommand(feedbackSummaryCmd)
}

func runFeedbackSubmit(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	submit := platform.FeedbackSubmit{
		Rating:         feedbackRating,
		ContentRating:  feedbackContent,
		DeliveryRating: feedbackDelivery,
		VenueRating:    feedbackVenue,
		Comment:        feedbackComment,
	}
	if err := forms.Validate(submit); err != nil {
		return err
	}

	if _, err := app.client.SubmitFeedback(cmd.Context(), eventID, submit); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Thanks, feedback recorded.")
	return nil
}

func runFeedbackSummary(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	page, err := app.client.EventFeedback(cmd.Context(), eventID)
	if err != nil {
		return err
	}
	entries, err := api.All(cmd.Context(), app.client, page)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	summary := feedback.Summarize(entries)
	if summary.Responses == 0 {
		fmt.Fprintln(out, "No feedback yet.")
		return nil
	}

	fmt.Fprintf(out, "Responses: %d (%d with comments)\n", summary.Responses, summary.Comments)
	fmt.Fprintf(out, "Overall:   %.1f / 5\n", summary.Average)
	if summary.ContentAvg > 0 {
		fmt.Fprintf(out, "Content:   %.1f / 5\n", summary.ContentAvg)
	}
	if summary.DeliveryAvg > 0 {
		fmt.Fprintf(out, "Delivery:  %.1f / 5\n", summary.DeliveryAvg)
	}
	if summary.VenueAvg > 0 {
		fmt.Fprintf(out, "Venue:     %.1f / 5\n", summary.VenueAvg)
	}

	fmt.Fprintln(out)
	for i := 4; i >= 0; i-- {
		count := summary.Histogram[i]
		fmt.Fprintf(out, "%d star %-20s %d\n", i+1, ratingBar(count, summary.Responses), count)
	}
	return nil
}
