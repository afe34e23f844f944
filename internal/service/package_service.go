package service

import (
	"context"
	"errors"
	"fmt"

	"companion_rental/internal/model"
	"companion_rental/internal/repository"

	"github.com/google/uuid"
)

var ErrPackageNotFound = errors.New("package not found")

// PackageService defines operations for companion packages
type PackageService interface {
	Create(ctx context.Context, ownerID string, req model.PackageRequest) (*model.Package, error)
	Get(ctx context.Context, id string) (*model.Package, error)
	List(ctx context.Context) ([]model.Package, error)
	ListByUsername(ctx context.Context, username string) ([]model.Package, error)
	Update(ctx context.Context, id, ownerID string, req model.PackageRequest) (*model.Package, error)
	Delete(ctx context.Context, id, ownerID string) error
	DeleteAdmin(ctx context.Context, id string) error
}

type packageService struct {
	repo     repository.PackageRepository
	userRepo repository.UserRepository
}

// NewPackageService creates a new PackageService
func NewPackageService(repo repository.PackageRepository, userRepo repository.UserRepository) PackageService {
	return &packageService{repo: repo, userRepo: userRepo}
}

func (s *packageService) Create(ctx context.Context, ownerID string, req model.PackageRequest) (*model.Package, error) {
	pkg := &model.Package{
		ID:              uuid.NewString(),
		UserID:          ownerID,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Available:       *req.Available,
	}
	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create package in repo: %w", err)
	}
	return pkg, nil
}

func (s *packageService) Get(ctx context.Context, id string) (*model.Package, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find package by ID: %w", err)
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

func (s *packageService) List(ctx context.Context) ([]model.Package, error) {
	packages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

// ListByUsername returns the packages of the named companion
func (s *packageService) ListByUsername(ctx context.Context, username string) ([]model.Package, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find package owner: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	packages, err := s.repo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages of user: %w", err)
	}
	return packages, nil
}

func (s *packageService) Update(ctx context.Context, id, ownerID string, req model.PackageRequest) (*model.Package, error) {
	pkg := &model.Package{
		ID:              id,
		UserID:          ownerID,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Available:       *req.Available,
	}
	if err := s.repo.Update(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to update package in repo: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes a package owned by ownerID together with its orders
func (s *packageService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.repo.DeleteOwned(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPackageNotFound
		}
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return nil
}

func (s *packageService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPackageNotFound
		}
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return nil
}
