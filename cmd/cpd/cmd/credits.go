package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/sanitize"
)

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Your CPD credit history and progress",
}

var (
	creditsListSource string

	creditsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List earned CPD credits",
		RunE:  runCreditsList,
	}
)

var creditsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Progress against your current reporting period",
	RunE:  runCreditsSummary,
}

func init() {
	creditsListCmd.Flags().StringVar(&creditsListSource, "source", "", "filter by source (event, course, external)")

	creditsCmd.AddCommand(creditsListCmd)
	creditsCmd.AddCommand(creditsSummaryCmd)
}

func runCreditsList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	page, err := app.client.CPDRecords(cmd.Context(), api.CPDRecordOptions{Source: creditsListSource})
	if err != nil {
		return err
	}
	records, err := api.All(cmd.Context(), app.client, page)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No CPD credits recorded.")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			formatDate(record.EarnedAt),
			record.Source,
			truncate(sanitize.Text(record.Title), 44),
			formatPoints(record.Points),
		})
	}
	table(cmd.OutOrStdout(), []string{"EARNED", "SOURCE", "ACTIVITY", "POINTS"}, rows)
	return nil
}

func runCreditsSummary(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	summary, err := app.client.CPDSummary(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Reporting period: %s to %s\n", formatDate(summary.PeriodStart), formatDate(summary.PeriodEnd))
	fmt.Fprintf(out, "Earned:    %s of %s points\n", formatPoints(summary.PeriodPoints), formatPoints(summary.RequiredPoints))
	fmt.Fprintf(out, "Remaining: %s points\n", formatPoints(summary.Remaining()))
	fmt.Fprintf(out, "Lifetime:  %s points\n", formatPoints(summary.TotalPoints))

	if len(summary.ByCategory) > 0 {
		fmt.Fprintln(out, "\nBy category:")
		categories := make([]string, 0, len(summary.ByCategory))
		for category := range summary.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Fprintf(out, "  %-20s %s\n", category, formatPoints(summary.ByCategory[category]))
		}
	}
	return nil
}
