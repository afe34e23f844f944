package repository

import (
	"context"
	"fmt"

	"companion_rental/internal/model"
)

// MessageRepository defines operations for direct messages
type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	FindConversation(ctx context.Context, userID, otherID string) ([]model.Message, error)
	DeleteOwned(ctx context.Context, id, senderID string) error
}

type messageRepository struct {
	db DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *model.Message) error {
	sql := `INSERT INTO messages (id, sender_id, recipient_id, message, is_read)
            VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, m.ID, m.SenderID, m.RecipientID, m.Body, m.IsRead).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// FindConversation returns messages exchanged in either direction, oldest first
func (r *messageRepository) FindConversation(ctx context.Context, userID, otherID string) ([]model.Message, error) {
	sql := `SELECT id, sender_id, recipient_id, message, is_read, created_at FROM messages
            WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
            ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, sql, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}

// DeleteOwned removes a message only if senderID sent it
func (r *messageRepository) DeleteOwned(ctx context.Context, id, senderID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1 AND sender_id = $2`, id, senderID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
