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

func orderRequest() model.OrderRequest {
	return model.OrderRequest{PackageID: "p1", TotalPrice: 150000, Status: model.OrderStatusPending}
}

func TestOrderService_Create(t *testing.T) {
	orders := new(mockOrderRepo)
	packages := new(mockPackageRepo)
	svc := NewOrderService(orders, packages)

	packages.On("FindByID", mock.Anything, "p1").Return(&model.Package{ID: "p1"}, nil)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.UserID == "buyer" && o.PackageID == "p1" && o.Status == model.OrderStatusPending && o.ID != ""
	})).Return(nil)

	order, err := svc.Create(context.Background(), "buyer", orderRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(150000), order.TotalPrice)
	orders.AssertExpectations(t)
}

func TestOrderService_Create_UnknownPackage(t *testing.T) {
	orders := new(mockOrderRepo)
	packages := new(mockPackageRepo)
	svc := NewOrderService(orders, packages)
	packages.On("FindByID", mock.Anything, "p1").Return(nil, nil)

	_, err := svc.Create(context.Background(), "buyer", orderRequest())
	assert.ErrorIs(t, err, ErrPackageNotFound)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Update_NotBuyer(t *testing.T) {
	orders := new(mockOrderRepo)
	packages := new(mockPackageRepo)
	svc := NewOrderService(orders, packages)

	packages.On("FindByID", mock.Anything, "p1").Return(&model.Package{ID: "p1"}, nil)
	orders.On("Update", mock.Anything, mock.Anything).Return(repository.ErrNotFound)

	_, err := svc.Update(context.Background(), "o1", "intruder", orderRequest())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_ListForBuyer_Empty(t *testing.T) {
	orders := new(mockOrderRepo)
	svc := NewOrderService(orders, new(mockPackageRepo))
	orders.On("FindByUser", mock.Anything, "buyer").Return([]model.Order{}, nil)

	list, err := svc.ListForBuyer(context.Background(), "buyer")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestOrderService_DeleteAdmin(t *testing.T) {
	orders := new(mockOrderRepo)
	svc := NewOrderService(orders, new(mockPackageRepo))
	orders.On("Delete", mock.Anything, "o1").Return(nil)
	orders.On("Delete", mock.Anything, "gone").Return(repository.ErrNotFound)

	assert.NoError(t, svc.DeleteAdmin(context.Background(), "o1"))
	assert.ErrorIs(t, svc.DeleteAdmin(context.Background(), "gone"), ErrOrderNotFound)
}

func TestOrderService_Get_VisibleToBuyerAndPackageOwner(t *testing.T) {
	orders := new(mockOrderRepo)
	packages := new(mockPackageRepo)
	svc := NewOrderService(orders, packages)

	order := &model.Order{ID: "o1", PackageID: "p1", UserID: "buyer"}
	orders.On("FindByID", mock.Anything, "o1").Return(order, nil)
	packages.On("FindByID", mock.Anything, "p1").Return(&model.Package{ID: "p1", UserID: "companion"}, nil)

	got, err := svc.Get(context.Background(), "o1", "buyer")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)
	packages.AssertNotCalled(t, "FindByID", mock.Anything, "p1")

	got, err = svc.Get(context.Background(), "o1", "companion")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)

	_, err = svc.Get(context.Background(), "o1", "stranger")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_List_ScopedToCaller(t *testing.T) {
	orders := new(mockOrderRepo)
	svc := NewOrderService(orders, new(mockPackageRepo))
	orders.On("FindVisibleTo", mock.Anything, "companion").Return([]model.Order{{ID: "o1", UserID: "buyer"}}, nil)

	list, err := svc.List(context.Background(), "companion")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	orders.AssertExpectations(t)
}

func TestOrderService_ListForPackage_OwnerOnly(t *testing.T) {
	orders := new(mockOrderRepo)
	packages := new(mockPackageRepo)
	svc := NewOrderService(orders, packages)

	packages.On("FindByID", mock.Anything, "p1").Return(&model.Package{ID: "p1", UserID: "companion"}, nil)
	packages.On("FindByID", mock.Anything, "gone").Return(nil, nil)
	orders.On("FindByPackage", mock.Anything, "p1").Return([]model.Order{{ID: "o1"}}, nil)

	list, err := svc.ListForPackage(context.Background(), "p1", "companion")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListForPackage(context.Background(), "p1", "stranger")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListForPackage(context.Background(), "gone", "companion")
	assert.ErrorIs(t, err, ErrPackageNotFound)
	orders.AssertNumberOfCalls(t, "FindByPackage", 1)
}
