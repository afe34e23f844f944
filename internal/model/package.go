package model

import "time"

// Package is a bookable offer published by a companion
type Package struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Price           int64     `json:"price"` // smallest currency unit
	DurationMinutes int       `json:"duration_minutes"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"created_at"`
}

// PackageRequest is used both for creating and replacing a package.
// Available is a pointer so that an explicit false passes the required check.
type PackageRequest struct {
	Price           int64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int   `json:"duration_minutes" binding:"required,gt=0"`
	Available       *bool `json:"available" binding:"required"`
}
