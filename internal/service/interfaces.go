package service

import (
	"context"
	"time"

	"tiffin-pos-frontend/internal/domain"
)

// Backend is the POS server API surface the controllers synchronize against.
// The server owns all state; every mutation returns the authoritative snapshot.
type Backend interface {
	GetCart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, menuID, quantity int) ([]domain.CartItem, error)
	UpdateCartItem(ctx context.Context, menuID, quantity int) ([]domain.CartItem, error)
	RemoveFromCart(ctx context.Context, menuID int) ([]domain.CartItem, error)
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) (*domain.Order, error)
	CreateMenuItem(ctx context.Context, form domain.MenuForm) error
	UpdateMenuItem(ctx context.Context, id int, form domain.MenuForm) error
	DeleteMenuItem(ctx context.Context, id int) error
	SalesData(ctx context.Context, month, year int) (*domain.SalesData, error)
	GenerateQR(ctx context.Context, orderNumber string, totalAmount float64) (*domain.PaymentQR, error)
}

// Notifier surfaces short-lived user-facing messages. Both failure classes
// (transport and application) land here identically.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ImageProber checks that a direct image URL actually loads, standing in for
// the browser's img onerror probe.
type ImageProber interface {
	Probe(ctx context.Context, url string) error
}

type CartServiceInterface interface {
	LoadCart(ctx context.Context)
	AddToCart(ctx context.Context, menuID, quantity int) error
	UpdateCartItem(ctx context.Context, menuID, quantity int) error
	RemoveFromCart(ctx context.Context, menuID int) error
	ClearCart(ctx context.Context, confirmed bool) error
	Checkout(ctx context.Context) (*domain.Order, error)
	Cart() []domain.CartItem
	CurrentOrder() *domain.Order
	PaymentQR(ctx context.Context) (*QRDetails, error)
}

type MenuFormServiceInterface interface {
	State() FormState
	SwitchImageTab(tab ImageTab)
	PreviewImage(ctx context.Context, rawURL string)
	Submit(ctx context.Context, form domain.MenuForm) (reload bool, err error)
	EditItem(id int, name string, price float64, description, imagePath string)
	DeleteItem(ctx context.Context, id int, confirmed bool) (reload bool, err error)
	ResetForm()
}

type SalesReportServiceInterface interface {
	Init(now time.Time)
	Period() (month, year int)
	LoadSalesData(ctx context.Context, month, year int) (*domain.SalesData, error)
	Data() *domain.SalesData
	Summary() Summary
}
