package model

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order represents a purchase of a package
type Order struct {
	ID         string    `json:"id"`
	PackageID  string    `json:"package_id"`
	UserID     string    `json:"user_id"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderRequest struct {
	PackageID  string `json:"package_id" binding:"required"`
	TotalPrice int64  `json:"total_price" binding:"required,gt=0"`
	Status     string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}
