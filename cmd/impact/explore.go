package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/common"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/tui"
	"github.com/spf13/cobra"
)

func exploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse a donor's history interactively",
		Long: `Open an interactive view of a donor's history. Tab or → switches
between the quarter, one year, five year and all time views; q quits.`,
		RunE: runExplore,
	}

	cmd.Flags().String("donor", "", "donor ID (required)")
	cmd.Flags().String("horizon", "quarter", "starting horizon")
	_ = cmd.MarkFlagRequired("donor")

	return cmd
}

func runExplore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	donorID, _ := cmd.Flags().GetString("donor")
	horizonName, _ := cmd.Flags().GetString("horizon")

	if !isTerminal(cmd.OutOrStdout()) {
		return common.NewUserError("explore needs an interactive terminal; use history instead", nil)
	}

	horizon, err := model.ParseHorizon(horizonName)
	if err != nil {
		return err
	}
	loc, err := location()
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

	donor, err := store.GetDonor(ctx, donorID)
	if err != nil {
		return fmt.Errorf("failed to load donor %s: %w", donorID, err)
	}
	// The full history is fetched before the explorer starts; switching
	// horizons never goes back to the database.
	history, err := store.GetDonationHistory(ctx, donorID)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	return tui.Run(ctx, calc, *donor, history,
		tui.WithHorizon(horizon),
		tui.WithClock(func() time.Time { return time.Now().In(loc) }))
}
