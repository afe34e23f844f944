package service

import (
	"context"
	"errors"
	"fmt"

	"companion_rental/internal/model"
	"companion_rental/internal/repository"

	"github.com/google/uuid"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageService defines direct messaging between users
type MessageService interface {
	Send(ctx context.Context, senderID string, req model.SendMessageRequest) (*model.Message, error)
	Conversation(ctx context.Context, userID, otherID string) ([]model.Message, error)
	Delete(ctx context.Context, id, senderID string) error
}

type messageService struct {
	repo     repository.MessageRepository
	userRepo repository.UserRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(repo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{repo: repo, userRepo: userRepo}
}

func (s *messageService) Send(ctx context.Context, senderID string, req model.SendMessageRequest) (*model.Message, error) {
	recipient, err := s.userRepo.FindByID(ctx, req.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}
	if recipient == nil {
		return nil, ErrUserNotFound
	}

	msg := &model.Message{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message in repo: %w", err)
	}
	return msg, nil
}

// Conversation returns the messages between the two users in both directions, oldest first
func (s *messageService) Conversation(ctx context.Context, userID, otherID string) ([]model.Message, error) {
	messages, err := s.repo.FindConversation(ctx, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return messages, nil
}

func (s *messageService) Delete(ctx context.Context, id, senderID string) error {
	if err := s.repo.DeleteOwned(ctx, id, senderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
