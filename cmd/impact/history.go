package main

import (
	"fmt"

	"github.com/Veraticus/ewaste-impact/internal/cli"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show a donor's donations bucketed over a horizon",
		Long: `Show a donor's donation history grouped into periods.

Horizons: quarter (Q1-Q4 of this year), 1y (the last twelve months),
5y (the last five years) and all (one row per year with donations).`,
		RunE: runHistory,
	}

	cmd.Flags().String("donor", "", "donor ID (required)")
	cmd.Flags().String("horizon", "quarter", "quarter, 1y, 5y or all")
	_ = cmd.MarkFlagRequired("donor")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	donorID, _ := cmd.Flags().GetString("donor")
	horizonName, _ := cmd.Flags().GetString("horizon")

	horizon, err := model.ParseHorizon(horizonName)
	if err != nil {
		return err
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

	donor, err := store.GetDonor(ctx, donorID)
	if err != nil {
		return fmt.Errorf("failed to load donor %s: %w", donorID, err)
	}
	history, err := store.GetDonationHistory(ctx, donorID)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	buckets, err := calc.Aggregate(history, horizon, now)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s: %s", donor.Name, horizon)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(title, cli.RenderBuckets(buckets)))
	return err
}
