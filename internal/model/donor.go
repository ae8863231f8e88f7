package model

import "time"

// Donor is a person or organization that donates devices.
type Donor struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Email     string
}

// Badge is an achievement a donor can earn.
type Badge struct {
	Name        string
	Description string
	ID          int
}

// AwardedBadge records when a donor earned a badge.
type AwardedBadge struct {
	AwardedAt time.Time
	DonorID   string
	BadgeID   int
}
