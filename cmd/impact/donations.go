package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/ewaste-impact/internal/cli"
	"github.com/Veraticus/ewaste-impact/internal/common"
	"github.com/Veraticus/ewaste-impact/internal/ingest"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/service"
	"github.com/spf13/cobra"
)

func donationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donations",
		Short: "List stored donations",
		Long: `List stored donations across donors, oldest first.

Filters combine: --donor, --type, --since/--until (dates as YYYY-MM-DD,
until is exclusive) and --unverified. Use --limit and --offset to page.`,
		RunE: runDonations,
	}

	cmd.Flags().String("donor", "", "only this donor's donations")
	cmd.Flags().String("type", "", "only this device type")
	cmd.Flags().String("since", "", "donated on or after this date")
	cmd.Flags().String("until", "", "donated before this date")
	cmd.Flags().Bool("unverified", false, "only donations not yet verified")
	cmd.Flags().Int("limit", 0, "maximum rows (0 for all)")
	cmd.Flags().Int("offset", 0, "rows to skip when --limit is set")

	return cmd
}

func runDonations(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter, err := donationFilter(cmd)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	donations, err := store.GetDonations(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list donations: %w", err)
	}

	title := fmt.Sprintf("%d donations", len(donations))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(title, cli.RenderDonations(donations)))
	return err
}

func donationFilter(cmd *cobra.Command) (service.DonationFilter, error) {
	var filter service.DonationFilter
	flags := cmd.Flags()

	filter.DonorID, _ = flags.GetString("donor")
	filter.Limit, _ = flags.GetInt("limit")
	filter.Offset, _ = flags.GetInt("offset")

	if name, _ := flags.GetString("type"); name != "" {
		dt, err := model.ParseDeviceType(name)
		if err != nil {
			return filter, err
		}
		filter.Type = dt
	}

	if unverified, _ := flags.GetBool("unverified"); unverified {
		verified := false
		filter.Verified = &verified
	}

	loc, err := location()
	if err != nil {
		return filter, err
	}
	if s, _ := flags.GetString("since"); s != "" {
		t, err := ingest.ParseDate(s, loc)
		if err != nil {
			return filter, fmt.Errorf("invalid --since: %w", err)
		}
		filter.StartDate = &t
	}
	if s, _ := flags.GetString("until"); s != "" {
		t, err := ingest.ParseDate(s, loc)
		if err != nil {
			return filter, fmt.Errorf("invalid --until: %w", err)
		}
		filter.EndDate = &t
	}

	return filter, nil
}

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify DEVICE_ID...",
		Short: "Mark donated devices as verified",
		Long: `Mark donated devices as checked by staff. Device IDs are shown by
the donations command. Pass --undo to clear the mark.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runVerify,
	}
	cmd.Flags().Bool("undo", false, "clear the verified mark instead")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	undo, _ := cmd.Flags().GetBool("undo")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	for _, id := range args {
		if err := store.SetVerified(ctx, id, !undo); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("No donated device with ID %s", id), err)
			}
			return fmt.Errorf("failed to update %s: %w", id, err)
		}

		msg := fmt.Sprintf("Verified %s", id)
		if undo {
			msg = fmt.Sprintf("Cleared verification for %s", id)
		}
		if _, err := fmt.Fprintln(out, cli.FormatSuccess(msg)); err != nil {
			return err
		}
	}
	return nil
}
