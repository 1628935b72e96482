package service

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"

	"tiffin-pos-frontend/internal/domain"

	"github.com/rs/zerolog"
)

var (
	ErrNotConfirmed = errors.New("action requires confirmation")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNoOrder      = errors.New("no current order")
)

// CartService keeps the client-side mirror of the server-held cart. The mirror
// is never updated speculatively: each mutation installs the snapshot the
// server returned, so a failed request leaves the previous state intact.
type CartService struct {
	mu           sync.Mutex
	backend      Backend
	notifier     Notifier
	qr           QRGenerator
	log          zerolog.Logger
	cart         []domain.CartItem
	currentOrder *domain.Order
}

func NewCartService(backend Backend, notifier Notifier, qr QRGenerator, log zerolog.Logger) *CartService {
	return &CartService{
		backend:  backend,
		notifier: notifier,
		qr:       qr,
		log:      log.With().Str("component", "cart").Logger(),
	}
}

// LoadCart fetches the server cart on page load. Failures are logged but not
// surfaced: an empty cart is a safe default.
func (s *CartService) LoadCart(ctx context.Context) {
	items, err := s.backend.GetCart(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load cart")
		return
	}
	s.mu.Lock()
	s.cart = items
	s.mu.Unlock()
}

func (s *CartService) AddToCart(ctx context.Context, menuID, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	items, err := s.backend.AddToCart(ctx, menuID, quantity)
	if err != nil {
		s.log.Error().Err(err).Int("menu_id", menuID).Msg("failed to add item to cart")
		s.notifier.Error("Error adding item to cart")
		return err
	}
	s.mu.Lock()
	s.cart = items
	s.mu.Unlock()
	s.notifier.Success("Item added to cart!")
	return nil
}

func (s *CartService) UpdateCartItem(ctx context.Context, menuID, quantity int) error {
	items, err := s.backend.UpdateCartItem(ctx, menuID, quantity)
	if err != nil {
		s.log.Error().Err(err).Int("menu_id", menuID).Int("quantity", quantity).Msg("failed to update cart item")
		s.notifier.Error("Error updating cart")
		return err
	}
	s.mu.Lock()
	s.cart = items
	s.mu.Unlock()
	return nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, menuID int) error {
	items, err := s.backend.RemoveFromCart(ctx, menuID)
	if err != nil {
		s.log.Error().Err(err).Int("menu_id", menuID).Msg("failed to remove cart item")
		s.notifier.Error("Error removing item")
		return err
	}
	s.mu.Lock()
	s.cart = items
	s.mu.Unlock()
	s.notifier.Success("Item removed from cart")
	return nil
}

// ClearCart issues nothing without confirmation. On success the mirror is
// reset locally instead of refetching: clear is idempotent and unconditional.
func (s *CartService) ClearCart(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := s.backend.ClearCart(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to clear cart")
		s.notifier.Error("Error clearing cart")
		return err
	}
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
	s.notifier.Success("Cart cleared")
	return nil
}

// Checkout rejects an empty cart before any request is sent. On success the
// returned order becomes the current order and the local mirror is emptied;
// the server clears its own cart atomically with order creation.
func (s *CartService) Checkout(ctx context.Context) (*domain.Order, error) {
	s.mu.Lock()
	empty := len(s.cart) == 0
	s.mu.Unlock()
	if empty {
		s.notifier.Error("Cart is empty")
		return nil, ErrEmptyCart
	}

	order, err := s.backend.Checkout(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("checkout failed")
		s.notifier.Error("Error during checkout")
		return nil, err
	}

	s.mu.Lock()
	s.currentOrder = order
	s.cart = nil
	s.mu.Unlock()
	s.log.Info().Str("order_number", order.OrderNumber).Float64("total", order.TotalAmount).Msg("checkout complete")
	return order, nil
}

func (s *CartService) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]domain.CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

func (s *CartService) CurrentOrder() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentOrder
}

type QRDetails struct {
	Order   *domain.Order
	DataURI string
	UPIID   string
}

// PaymentQR builds the payment QR view for the current order. The backend QR
// endpoint is preferred; if it fails the code is generated locally so the
// view still renders.
func (s *CartService) PaymentQR(ctx context.Context) (*QRDetails, error) {
	s.mu.Lock()
	order := s.currentOrder
	s.mu.Unlock()
	if order == nil {
		s.notifier.Error("No order found")
		return nil, ErrNoOrder
	}

	if qr, err := s.backend.GenerateQR(ctx, order.OrderNumber, order.TotalAmount); err == nil && qr.QRCode != "" {
		return &QRDetails{Order: order, DataURI: qr.QRCode, UPIID: qr.UPIID}, nil
	} else if err != nil {
		s.log.Warn().Err(err).Msg("backend QR generation failed, falling back to local")
	}

	png, err := s.qr.Generate(order.OrderNumber, order.TotalAmount)
	if err != nil {
		s.log.Error().Err(err).Msg("local QR generation failed")
		s.notifier.Error("Error generating QR code")
		return nil, err
	}
	return &QRDetails{
		Order:   order,
		DataURI: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		UPIID:   s.qr.PayeeAddress(),
	}, nil
}

var _ CartServiceInterface = (*CartService)(nil)
