package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/sanitize"
)

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "List, download, and verify certificates",
}

var certsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your certificates",
	RunE:  runCertsList,
}

var certsShowCmd = &cobra.Command{
	Use:   "show <certificate-uuid>",
	Short: "Show one certificate",
	Args:  cobra.ExactArgs(1),
	RunE:  runCertsShow,
}

var (
	certsDownloadOut string

	certsDownloadCmd = &cobra.Command{
		Use:   "download <certificate-uuid>",
		Short: "Download a certificate PDF",
		Args:  cobra.ExactArgs(1),
		RunE:  runCertsDownload,
	}
)

var certsVerifyCmd = &cobra.Command{
	Use:   "verify <code>",
	Short: "Verify a certificate code",
	Long: `Checks a certificate code against the public verification endpoint.
Works without being logged in.`,
	Args: cobra.ExactArgs(1),
	RunE: runCertsVerify,
}

func init() {
	certsDownloadCmd.Flags().StringVar(&certsDownloadOut, "out", "", "output file (default: <code>.pdf)")

	certsCmd.AddCommand(certsListCmd)
	certsCmd.AddCommand(certsShowCmd)
	certsCmd.AddCommand(certsDownloadCmd)
	certsCmd.AddCommand(certsVerifyCmd)
}

func runCertsList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	page, err := app.client.ListCertificates(cmd.Context())
	if err != nil {
		return err
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No certificates.")
		return nil
	}

	rows := make([][]string, 0, len(page.Results))
	for _, cert := range page.Results {
		rows = append(rows, []string{
			cert.ID.String(),
			cert.Code,
			truncate(sanitize.Text(cert.Title), 40),
			formatPoints(cert.CPDPoints),
			formatDate(cert.IssuedAt),
		})
	}
	table(cmd.OutOrStdout(), []string{"UUID", "CODE", "TITLE", "CPD", "ISSUED"}, rows)
	return nil
}

func runCertsShow(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid certificate UUID %q", args[0])
	}

	cert, err := app.client.Certificate(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", sanitize.Text(cert.Title))
	fmt.Fprintf(out, "Code:      %s\n", cert.Code)
	fmt.Fprintf(out, "Issued to: %s\n", cert.RecipientName)
	fmt.Fprintf(out, "CPD:       %s points\n", formatPoints(cert.CPDPoints))
	fmt.Fprintf(out, "Issued:    %s\n", formatDate(cert.IssuedAt))
	return nil
}

func runCertsDownload(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid certificate UUID %q", args[0])
	}

	cert, err := app.client.Certificate(cmd.Context(), id)
	if err != nil {
		return err
	}
	pdf, err := app.client.DownloadCertificate(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := certsDownloadOut
	if out == "" {
		out = cert.Code + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", out, len(pdf))
	return nil
}

func runCertsVerify(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	verification, err := app.client.VerifyCertificate(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !verification.Valid {
		reason := verification.Reason
		if reason == "" {
			reason = "code not recognized"
		}
		fmt.Fprintf(out, "INVALID: %s\n", reason)
		return nil
	}

	fmt.Fprintln(out, "VALID")
	if cert := verification.Certificate; cert != nil {
		fmt.Fprintf(out, "Issued to: %s\n", cert.RecipientName)
		fmt.Fprintf(out, "For:       %s\n", sanitize.Text(cert.Title))
		fmt.Fprintf(out, "CPD:       %s points\n", formatPoints(cert.CPDPoints))
		fmt.Fprintf(out, "Issued:    %s\n", formatDate(cert.IssuedAt))
	}
	return nil
}
