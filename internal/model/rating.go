package model

import "time"

// Rating is a review left by a user for a companion
type Rating struct {
	ID          string    `json:"id"`
	CompanionID string    `json:"companion_id"`
	UserID      string    `json:"user_id"`
	Rate        int       `json:"rate"`
	Review      string    `json:"review"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateRatingRequest struct {
	CompanionID string `json:"companion_id" binding:"required"`
	Rate        int    `json:"rate" binding:"required,min=1,max=5"`
	Review      string `json:"review" binding:"required"`
}

type UpdateRatingRequest struct {
	Rate   int    `json:"rate" binding:"required,min=1,max=5"`
	Review string `json:"review" binding:"required"`
}

// RatingSummary aggregates every rating of one companion
type RatingSummary struct {
	CompanionID string  `json:"companion_id"`
	TotalRate   int64   `json:"total_rate"`
	TotalCount  int64   `json:"total_count"`
	AverageRate float64 `json:"average_rate"`
}
