package mocks

import (
	"context"

	"tiffin-pos-frontend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type Backend struct {
	mock.Mock
}

func NewBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *Backend {
	m := &Backend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Backend) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.CartItem)
	return items, args.Error(1)
}

func (m *Backend) AddToCart(ctx context.Context, menuID, quantity int) ([]domain.CartItem, error) {
	args := m.Called(ctx, menuID, quantity)
	items, _ := args.Get(0).([]domain.CartItem)
	return items, args.Error(1)
}

func (m *Backend) UpdateCartItem(ctx context.Context, menuID, quantity int) ([]domain.CartItem, error) {
	args := m.Called(ctx, menuID, quantity)
	items, _ := args.Get(0).([]domain.CartItem)
	return items, args.Error(1)
}

func (m *Backend) RemoveFromCart(ctx context.Context, menuID int) ([]domain.CartItem, error) {
	args := m.Called(ctx, menuID)
	items, _ := args.Get(0).([]domain.CartItem)
	return items, args.Error(1)
}

func (m *Backend) ClearCart(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Backend) Checkout(ctx context.Context) (*domain.Order, error) {
	args := m.Called(ctx)
	order, _ := args.Get(0).(*domain.Order)
	return order, args.Error(1)
}

func (m *Backend) CreateMenuItem(ctx context.Context, form domain.MenuForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *Backend) UpdateMenuItem(ctx context.Context, id int, form domain.MenuForm) error {
	args := m.Called(ctx, id, form)
	return args.Error(0)
}

func (m *Backend) DeleteMenuItem(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Backend) SalesData(ctx context.Context, month, year int) (*domain.SalesData, error) {
	args := m.Called(ctx, month, year)
	data, _ := args.Get(0).(*domain.SalesData)
	return data, args.Error(1)
}

func (m *Backend) GenerateQR(ctx context.Context, orderNumber string, totalAmount float64) (*domain.PaymentQR, error) {
	args := m.Called(ctx, orderNumber, totalAmount)
	qr, _ := args.Get(0).(*domain.PaymentQR)
	return qr, args.Error(1)
}
