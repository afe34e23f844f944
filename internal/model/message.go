package model

import "time"

// Message is a direct message between two users
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required"`
	Body        string `json:"message" binding:"required,max=2000"`
}
