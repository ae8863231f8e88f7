package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/ewaste-impact/internal/cli"
	"github.com/Veraticus/ewaste-impact/internal/common"
	"github.com/Veraticus/ewaste-impact/internal/config"
	"github.com/Veraticus/ewaste-impact/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Publish a donor's impact report to Google Sheets",
		Long: `Publish a donor's lifetime totals, material breakdown and every horizon's
history to a Google Sheets spreadsheet.

Authenticate first with 'impact auth sheets' or configure a service account
under sheets.service_account_path.`,
		RunE: runExport,
	}

	cmd.Flags().String("donor", "", "donor ID (required)")
	cmd.Flags().String("spreadsheet-id", "", "write to this spreadsheet instead of creating one")
	_ = cmd.MarkFlagRequired("donor")

	_ = viper.BindPFlag("sheets.spreadsheet_id", cmd.Flags().Lookup("spreadsheet-id"))

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	donorID, _ := cmd.Flags().GetString("donor")

	sheetsConfig, err := config.LoadSheetsConfig()
	if err != nil {
		return common.NewUserError("Google Sheets is not configured. Run 'impact auth sheets' first.", err)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	calc, err := loadCalculator()
	if err != nil {
		return err
	}
	now, err := nowIn()
	if err != nil {
		return err
	}

	report, err := buildReport(ctx, store, calc, donorID, now)
	if err != nil {
		return err
	}

	writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create sheets writer: %w", err)
	}
	if err := writer.Write(ctx, report); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported impact report for %s", report.Donor.Name)))
	return err
}
