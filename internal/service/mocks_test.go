package service

import (
	"context"

	"companion_rental/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) user(args mock.Arguments) (*model.User, error) {
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *mockUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	return m.user(m.Called(ctx, username, email))
}

func (m *mockUserRepo) FindConflicting(ctx context.Context, id, username, email string) (*model.User, error) {
	return m.user(m.Called(ctx, id, username, email))
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockUserRepo) UpdateProfilePicture(ctx context.Context, id, path string) error {
	return m.Called(ctx, id, path).Error(0)
}

func (m *mockUserRepo) DeleteCascade(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) Create(ctx context.Context, rating *model.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *mockRatingRepo) FindByID(ctx context.Context, id string) (*model.Rating, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Rating)
	return r, args.Error(1)
}

func (m *mockRatingRepo) FindAll(ctx context.Context) ([]model.Rating, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]model.Rating)
	return r, args.Error(1)
}

func (m *mockRatingRepo) FindByCompanion(ctx context.Context, companionID string) ([]model.Rating, error) {
	args := m.Called(ctx, companionID)
	r, _ := args.Get(0).([]model.Rating)
	return r, args.Error(1)
}

func (m *mockRatingRepo) Update(ctx context.Context, rating *model.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *mockRatingRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRatingRepo) DeleteOwned(ctx context.Context, id, authorID string) error {
	return m.Called(ctx, id, authorID).Error(0)
}

func (m *mockRatingRepo) Totals(ctx context.Context, companionID string) (int64, int64, error) {
	args := m.Called(ctx, companionID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type mockPackageRepo struct {
	mock.Mock
}

func (m *mockPackageRepo) Create(ctx context.Context, pkg *model.Package) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *mockPackageRepo) FindByID(ctx context.Context, id string) (*model.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) FindAll(ctx context.Context) ([]model.Package, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]model.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) FindByUser(ctx context.Context, userID string) ([]model.Package, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).([]model.Package)
	return p, args.Error(1)
}

func (m *mockPackageRepo) Update(ctx context.Context, pkg *model.Package) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *mockPackageRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPackageRepo) DeleteOwned(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) orders(args mock.Arguments) ([]model.Order, error) {
	o, _ := args.Get(0).([]model.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepo) Create(ctx context.Context, order *model.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *mockOrderRepo) FindVisibleTo(ctx context.Context, userID string) ([]model.Order, error) {
	return m.orders(m.Called(ctx, userID))
}

func (m *mockOrderRepo) FindByPackage(ctx context.Context, packageID string) ([]model.Order, error) {
	return m.orders(m.Called(ctx, packageID))
}

func (m *mockOrderRepo) FindByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return m.orders(m.Called(ctx, userID))
}

func (m *mockOrderRepo) Update(ctx context.Context, order *model.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOrderRepo) DeleteOwned(ctx context.Context, id, buyerID string) error {
	return m.Called(ctx, id, buyerID).Error(0)
}

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMessageRepo) FindConversation(ctx context.Context, userID, otherID string) ([]model.Message, error) {
	args := m.Called(ctx, userID, otherID)
	msgs, _ := args.Get(0).([]model.Message)
	return msgs, args.Error(1)
}

func (m *mockMessageRepo) DeleteOwned(ctx context.Context, id, senderID string) error {
	return m.Called(ctx, id, senderID).Error(0)
}
