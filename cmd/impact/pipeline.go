package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/ewaste-impact/internal/badges"
	"github.com/Veraticus/ewaste-impact/internal/common"
	"github.com/Veraticus/ewaste-impact/internal/greenops"
	"github.com/Veraticus/ewaste-impact/internal/impact"
	"github.com/Veraticus/ewaste-impact/internal/model"
	"github.com/Veraticus/ewaste-impact/internal/service"
	"golang.org/x/sync/errgroup"
)

// submission is the outcome of submitting a batch of devices.
type submission struct {
	Donations []model.Donation
	Awards    []badges.Award
	Total     model.SubmissionTotal
	Saved     bool
}

// submitDevices totals devices, stamps undated ones with now, and unless
// dryRun saves them and awards any badges the donor has newly earned.
func submitDevices(ctx context.Context, store service.Storage, calc *impact.Calculator, donorID string, devices []model.Device, now time.Time, dryRun bool) (*submission, error) {
	donor, err := store.GetDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load donor %s: %w", donorID, err)
	}

	total, err := calc.Totalize(devices)
	if err != nil {
		return nil, err
	}

	donations, err := assess(calc, devices, now)
	if err != nil {
		return nil, err
	}
	result := &submission{Donations: donations, Total: total}

	history, err := store.GetDonationHistory(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	awarded, err := store.GetAwardedBadges(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	for _, d := range donations {
		history = append(history, d.Device)
	}
	result.Awards = badges.Evaluate(*donor, history, awarded, now)

	if dryRun {
		return result, nil
	}

	if err := store.SaveDonations(ctx, donorID, result.Donations); err != nil {
		return nil, fmt.Errorf("failed to save donations: %w", err)
	}
	result.Saved = true

	for _, award := range result.Awards {
		err := store.AwardBadge(ctx, model.AwardedBadge{DonorID: donorID, BadgeID: award.Badge.ID, AwardedAt: now})
		if err != nil && !errors.Is(err, common.ErrDuplicateEntry) {
			return nil, fmt.Errorf("failed to award badge %q: %w", award.Badge.Name, err)
		}
	}

	common.LogInfo("submission saved", common.Fields{
		"donor":   donorID,
		"devices": len(result.Donations),
		"badges":  len(result.Awards),
	})
	return result, nil
}

// assess pairs each device with its impact. Undated devices are donated now.
func assess(calc *impact.Calculator, devices []model.Device, now time.Time) ([]model.Donation, error) {
	donations := make([]model.Donation, 0, len(devices))
	for i, d := range devices {
		if !d.Donated() {
			d.DateDonated = now
		}
		imp, err := calc.Assess(d)
		if err != nil {
			return nil, fmt.Errorf("device %d: %w", i+1, err)
		}
		donations = append(donations, model.Donation{Device: d, Impact: imp})
	}
	return donations, nil
}

// importDonations saves devices in batches of batchSize, calling progress
// after each batch. Undated devices are donated now. It stops between
// batches when ctx is canceled; batches already saved stay saved.
func importDonations(ctx context.Context, store service.Storage, calc *impact.Calculator, donorID string, devices []model.Device, now time.Time, batchSize int, progress func(saved int)) (int, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("%w: batch size must be positive", common.ErrInvalidConfig)
	}
	if _, err := store.GetDonor(ctx, donorID); err != nil {
		return 0, fmt.Errorf("failed to load donor %s: %w", donorID, err)
	}

	donations, err := assess(calc, devices, now)
	if err != nil {
		return 0, err
	}

	saved := 0
	for start := 0; start < len(donations); start += batchSize {
		if err := ctx.Err(); err != nil {
			return saved, err
		}
		end := min(start+batchSize, len(donations))
		if err := store.SaveDonations(ctx, donorID, donations[start:end]); err != nil {
			return saved, fmt.Errorf("failed to save rows %d-%d: %w", start+1, end, err)
		}
		saved = end
		if progress != nil {
			progress(end - start)
		}
		slog.Debug("saved import batch", "donor", donorID, "saved", saved, "total", len(donations))
	}
	return saved, nil
}

// buildReport assembles a donor's lifetime totals and every horizon's
// series from the full history.
func buildReport(ctx context.Context, store service.Storage, calc *impact.Calculator, donorID string, now time.Time) (*service.ImpactReport, error) {
	donor, err := store.GetDonor(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load donor %s: %w", donorID, err)
	}
	history, err := store.GetDonationHistory(ctx, donorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	lifetime, err := calc.Totalize(history)
	if err != nil {
		return nil, err
	}

	report := &service.ImpactReport{
		GeneratedAt:   now,
		Donor:         *donor,
		PolicyVersion: calc.Policy().Version,
		Lifetime:      lifetime,
	}
	if eq, err := greenops.Calculate(lifetime.CO2); err == nil && !eq.IsEmpty {
		report.Equivalency = eq.DisplayText
	}

	// Each horizon recomputes from the same read-only history.
	report.Series = make([]service.HorizonSeries, len(model.Horizons))
	var g errgroup.Group
	for i, h := range model.Horizons {
		g.Go(func() error {
			buckets, err := calc.Aggregate(history, h, now)
			if err != nil {
				return fmt.Errorf("%s: %w", h, err)
			}
			report.Series[i] = service.HorizonSeries{Horizon: h, Buckets: buckets}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
