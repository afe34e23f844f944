package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"companion_rental/internal/model"
	"companion_rental/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrAlreadyRated   = errors.New("you have already rated this companion")
	ErrSelfRating     = errors.New("you cannot rate yourself")
)

// RatingService defines operations for companion ratings
type RatingService interface {
	Create(ctx context.Context, authorID string, req model.CreateRatingRequest) (*model.Rating, error)
	List(ctx context.Context) ([]model.Rating, error)
	ListForCompanion(ctx context.Context, companionID string) ([]model.Rating, error)
	Summary(ctx context.Context, companionID string) (*model.RatingSummary, error)
	Update(ctx context.Context, id, authorID string, req model.UpdateRatingRequest) (*model.Rating, error)
	Delete(ctx context.Context, id, authorID string) error
	DeleteAdmin(ctx context.Context, id string) error
}

type ratingService struct {
	repo     repository.RatingRepository
	userRepo repository.UserRepository
}

// NewRatingService creates a new RatingService
func NewRatingService(repo repository.RatingRepository, userRepo repository.UserRepository) RatingService {
	return &ratingService{repo: repo, userRepo: userRepo}
}

func (s *ratingService) Create(ctx context.Context, authorID string, req model.CreateRatingRequest) (*model.Rating, error) {
	if req.CompanionID == authorID {
		return nil, ErrSelfRating
	}
	companion, err := s.userRepo.FindByID(ctx, req.CompanionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find rated user: %w", err)
	}
	if companion == nil {
		return nil, ErrUserNotFound
	}

	rating := &model.Rating{
		ID:          uuid.NewString(),
		CompanionID: req.CompanionID,
		UserID:      authorID,
		Rate:        req.Rate,
		Review:      req.Review,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRated
		}
		return nil, fmt.Errorf("failed to create rating in repo: %w", err)
	}
	return rating, nil
}

func (s *ratingService) List(ctx context.Context) ([]model.Rating, error) {
	ratings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}

func (s *ratingService) ListForCompanion(ctx context.Context, companionID string) ([]model.Rating, error) {
	ratings, err := s.repo.FindByCompanion(ctx, companionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings of companion: %w", err)
	}
	return ratings, nil
}

// Summary returns sum, count and the average rounded to two decimals.
// A companion with no ratings yields ErrRatingNotFound.
func (s *ratingService) Summary(ctx context.Context, companionID string) (*model.RatingSummary, error) {
	total, count, err := s.repo.Totals(ctx, companionID)
	if err != nil {
		return nil, fmt.Errorf("failed to total ratings: %w", err)
	}
	if count == 0 {
		return nil, ErrRatingNotFound
	}
	avg := float64(total) / float64(count)
	return &model.RatingSummary{
		CompanionID: companionID,
		TotalRate:   total,
		TotalCount:  count,
		AverageRate: math.Round(avg*100) / 100,
	}, nil
}

func (s *ratingService) Update(ctx context.Context, id, authorID string, req model.UpdateRatingRequest) (*model.Rating, error) {
	rating := &model.Rating{ID: id, UserID: authorID, Rate: req.Rate, Review: req.Review}
	if err := s.repo.Update(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to update rating in repo: %w", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload rating: %w", err)
	}
	if updated == nil {
		return nil, ErrRatingNotFound
	}
	return updated, nil
}

func (s *ratingService) Delete(ctx context.Context, id, authorID string) error {
	if err := s.repo.DeleteOwned(ctx, id, authorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRatingNotFound
		}
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}

func (s *ratingService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRatingNotFound
		}
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}
