package service

import (
	"context"
	"errors"
	"fmt"

	"companion_rental/internal/model"
	"companion_rental/internal/repository"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService defines operations for package orders
type OrderService interface {
	Create(ctx context.Context, buyerID string, req model.OrderRequest) (*model.Order, error)
	Get(ctx context.Context, id, callerID string) (*model.Order, error)
	List(ctx context.Context, callerID string) ([]model.Order, error)
	ListForPackage(ctx context.Context, packageID, callerID string) ([]model.Order, error)
	ListForBuyer(ctx context.Context, buyerID string) ([]model.Order, error)
	Update(ctx context.Context, id, buyerID string, req model.OrderRequest) (*model.Order, error)
	Delete(ctx context.Context, id, buyerID string) error
	DeleteAdmin(ctx context.Context, id string) error
}

type orderService struct {
	repo        repository.OrderRepository
	packageRepo repository.PackageRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepository, packageRepo repository.PackageRepository) OrderService {
	return &orderService{repo: repo, packageRepo: packageRepo}
}

func (s *orderService) ensurePackage(ctx context.Context, packageID string) error {
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		return fmt.Errorf("failed to find ordered package: %w", err)
	}
	if pkg == nil {
		return ErrPackageNotFound
	}
	return nil
}

func (s *orderService) Create(ctx context.Context, buyerID string, req model.OrderRequest) (*model.Order, error) {
	if err := s.ensurePackage(ctx, req.PackageID); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:         uuid.NewString(),
		PackageID:  req.PackageID,
		UserID:     buyerID,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repo: %w", err)
	}
	return order, nil
}

// Get returns the order to its buyer or to the owner of the ordered package.
// Anyone else gets ErrOrderNotFound.
func (s *orderService) Get(ctx context.Context, id, callerID string) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID == callerID {
		return order, nil
	}

	pkg, err := s.packageRepo.FindByID(ctx, order.PackageID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ordered package: %w", err)
	}
	if pkg == nil || pkg.UserID != callerID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns the orders the caller bought plus those placed on the caller's packages
func (s *orderService) List(ctx context.Context, callerID string) ([]model.Order, error) {
	orders, err := s.repo.FindVisibleTo(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListForPackage is limited to the package owner
func (s *orderService) ListForPackage(ctx context.Context, packageID, callerID string) ([]model.Order, error) {
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to find package: %w", err)
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	if pkg.UserID != callerID {
		return nil, ErrForbidden
	}

	orders, err := s.repo.FindByPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders of package: %w", err)
	}
	return orders, nil
}

func (s *orderService) ListForBuyer(ctx context.Context, buyerID string) ([]model.Order, error) {
	orders, err := s.repo.FindByUser(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders of user: %w", err)
	}
	return orders, nil
}

func (s *orderService) Update(ctx context.Context, id, buyerID string, req model.OrderRequest) (*model.Order, error) {
	if err := s.ensurePackage(ctx, req.PackageID); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:         id,
		PackageID:  req.PackageID,
		UserID:     buyerID,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
	}
	if err := s.repo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order in repo: %w", err)
	}
	return s.Get(ctx, id, buyerID)
}

func (s *orderService) Delete(ctx context.Context, id, buyerID string) error {
	if err := s.repo.DeleteOwned(ctx, id, buyerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (s *orderService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
