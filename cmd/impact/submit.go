package main

import (
	"fmt"
	"io"

	"github.com/Veraticus/ewaste-impact/internal/cli"
	"github.com/Veraticus/ewaste-impact/internal/ingest"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/spf13/cobra"
)

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [device spec...]",
		Short: "Record a batch of donated devices",
		Long: `Record donated devices, show their combined impact and award any
badges the donor has earned.

Devices are given as specs or read from a YAML file:

  impact submit --donor ID "type=Laptop,condition=Working,weight=5,manufacturer=Dell"
  impact submit --file dropoff.yaml

Devices without a date are donated now.`,
		RunE: runSubmit,
	}

	cmd.Flags().String("donor", "", "donor ID (overrides the file's donor)")
	cmd.Flags().StringP("file", "f", "", "YAML submission file")
	cmd.Flags().Bool("dry-run", false, "show the impact without saving")
	cmd.Flags().BoolP("yes", "y", false, "save without asking for confirmation")

	return cmd
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	donorID, _ := cmd.Flags().GetString("donor")
	file, _ := cmd.Flags().GetString("file")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")

	loc, err := location()
	if err != nil {
		return err
	}

	var devices []model.Device
	if file != "" {
		sub, err := ingest.ReadSubmissionFile(file, loc)
		if err != nil {
			return err
		}
		devices = sub.Devices
		if donorID == "" {
			donorID = sub.DonorID
		}
	}
	for _, spec := range args {
		device, err := ingest.ParseDeviceSpec(spec, loc)
		if err != nil {
			return err
		}
		devices = append(devices, device)
	}

	if donorID == "" {
		return fmt.Errorf("a donor is required: pass --donor or set donor in the file")
	}
	if len(devices) == 0 {
		return fmt.Errorf("no devices given: pass device specs or --file")
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

	out := cmd.OutOrStdout()

	// Preview first so the operator confirms what will be saved.
	preview, err := submitDevices(ctx, store, calc, donorID, devices, now, true)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, cli.RenderBox("Submission", cli.RenderComposition(preview.Total))); err != nil {
		return err
	}

	if dryRun {
		_, err = fmt.Fprintln(out, cli.FormatWarning("Dry run mode - not saving to database"))
		return err
	}

	if !yes {
		ok, err := cli.Confirm(ctx, cli.NewLineReader(cmd.InOrStdin()), out, "Save this donation?", true)
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintln(out, cli.FormatInfo("Nothing saved."))
			return err
		}
	}

	result, err := submitDevices(ctx, store, calc, donorID, devices, now, false)
	if err != nil {
		return err
	}
	return printSubmission(out, result)
}

func printSubmission(out io.Writer, result *submission) error {
	if _, err := fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Saved %d devices", len(result.Donations)))); err != nil {
		return err
	}
	for _, award := range result.Awards {
		if _, err := fmt.Fprintln(out, cli.FormatBadge(award.Message)); err != nil {
			return err
		}
	}
	return nil
}
