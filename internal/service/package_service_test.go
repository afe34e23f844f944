package service

import (
	"context"
	"testing"

	"companion_rental/internal/model"
	"companion_rental/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPackageService_Create_KeepsExplicitFalse(t *testing.T) {
	repo := new(mockPackageRepo)
	svc := NewPackageService(repo, new(mockUserRepo))
	available := false

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Package) bool {
		return p.UserID == "u1" && !p.Available && p.Price == 250000 && p.DurationMinutes == 90
	})).Return(nil)

	pkg, err := svc.Create(context.Background(), "u1", model.PackageRequest{Price: 250000, DurationMinutes: 90, Available: &available})
	require.NoError(t, err)
	assert.NotEmpty(t, pkg.ID)
	repo.AssertExpectations(t)
}

func TestPackageService_ListByUsername(t *testing.T) {
	repo := new(mockPackageRepo)
	users := new(mockUserRepo)
	svc := NewPackageService(repo, users)

	users.On("FindByUsername", mock.Anything, "bella").Return(&model.User{ID: "c1", Username: "bella"}, nil)
	repo.On("FindByUser", mock.Anything, "c1").Return([]model.Package{{ID: "p1", UserID: "c1"}}, nil)
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	packages, err := svc.ListByUsername(context.Background(), "bella")
	require.NoError(t, err)
	assert.Len(t, packages, 1)

	_, err = svc.ListByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPackageService_Delete_NotOwner(t *testing.T) {
	repo := new(mockPackageRepo)
	svc := NewPackageService(repo, new(mockUserRepo))
	repo.On("DeleteOwned", mock.Anything, "p1", "intruder").Return(repository.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "p1", "intruder"), ErrPackageNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
