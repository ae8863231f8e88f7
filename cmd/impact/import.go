package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/cli"
	"github.com/Veraticus/ewaste-impact/internal/ingest"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE.csv",
		Short: "Import a donor's past donations from CSV",
		Long: `Import a donation history from a CSV file with the header

  date_donated,device_type,manufacturer,condition,weight[,model,serial_number]

Rows are validated before anything is saved; the first bad row aborts the
import with its line number. Rows are then saved in batches.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("donor", "", "donor ID (required)")
	cmd.Flags().Int("batch-size", 100, "rows saved per transaction")
	cmd.Flags().Bool("dry-run", false, "validate and total the file without saving")
	_ = cmd.MarkFlagRequired("donor")

	_ = viper.BindPFlag("import.batch_size", cmd.Flags().Lookup("batch-size"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	donorID, _ := cmd.Flags().GetString("donor")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	loc, err := location()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0]) //nolint:gosec // path comes from the operator
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	devices, err := ingest.ReadCSV(f, loc)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if len(devices) == 0 {
		_, err = fmt.Fprintln(out, cli.FormatWarning("No rows to import"))
		return err
	}

	calc, err := loadCalculator()
	if err != nil {
		return err
	}
	total, err := calc.Totalize(devices)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, cli.RenderBox(fmt.Sprintf("%s: %d rows", args[0], len(devices)), cli.RenderComposition(total))); err != nil {
		return err
	}
	if dryRun {
		_, err = fmt.Fprintln(out, cli.FormatWarning("Dry run mode - not saving to database"))
		return err
	}

	handler := cli.NewInterruptHandler(out, "Import")
	ctx, stop := handler.HandleInterrupts(cmd.Context(), true)
	defer stop()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := newProgressBar(out, len(devices))
	saved, err := importDonations(ctx, store, calc, donorID, devices, time.Now().In(loc), viper.GetInt("import.batch_size"), func(n int) {
		if err := bar.Add(n); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	})
	if err != nil {
		if handler.WasInterrupted() || errors.Is(err, context.Canceled) {
			return fmt.Errorf("import stopped after %d of %d rows: %w", saved, len(devices), err)
		}
		return err
	}

	_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d donations", saved)))
	return err
}

func newProgressBar(out io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetVisibility(isTerminal(out)),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[green][bold]Importing donations...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(out); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
