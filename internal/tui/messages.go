package tui

import "github.com/Veraticus/ewaste-impact/internal/model"

// aggregatedMsg carries the result of aggregating the history for horizon.
type aggregatedMsg struct {
	err     error
	buckets []model.Bucket
	horizon model.Horizon
}
