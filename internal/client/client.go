package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"tiffin-pos-frontend/internal/domain"

	"github.com/rs/zerolog"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the typed wrapper around the POS backend HTTP API. It holds no
// state of its own; callers own the cart mirror and the current order.
type Client struct {
	baseURL string
	client  HTTPClient
	log     zerolog.Logger
}

func New(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: baseURL,
		client:  httpClient,
		log:     log.With().Str("component", "backend-client").Logger(),
	}
}

// envelope is the uniform {success, ...payload} response shape. Failure
// responses carry an error message instead of a payload.
type envelope struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Cart    []domain.CartItem `json:"cart"`
	Order   *domain.Order     `json:"order"`
	QRCode  string            `json:"qr_code"`
	UPIID   string            `json:"upi_id"`
}

func (c *Client) do(req *http.Request) (*envelope, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "unexpected response shape"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", req.URL.Path).Str("error", env.Error).Msg("backend rejected request")
		return nil, &APIError{Status: resp.StatusCode, Message: env.Error}
	}
	return &env, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*envelope, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/get-cart", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	env, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return env.Cart, nil
}

func (c *Client) AddToCart(ctx context.Context, menuID, quantity int) ([]domain.CartItem, error) {
	env, err := c.postJSON(ctx, "/api/add-to-cart", map[string]int{
		"menu_id":  menuID,
		"quantity": quantity,
	})
	if err != nil {
		return nil, err
	}
	return env.Cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, menuID, quantity int) ([]domain.CartItem, error) {
	env, err := c.postJSON(ctx, "/api/update-cart", map[string]int{
		"menu_id":  menuID,
		"quantity": quantity,
	})
	if err != nil {
		return nil, err
	}
	return env.Cart, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, menuID int) ([]domain.CartItem, error) {
	env, err := c.postJSON(ctx, "/api/remove-from-cart", map[string]int{"menu_id": menuID})
	if err != nil {
		return nil, err
	}
	return env.Cart, nil
}

func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.postJSON(ctx, "/api/clear-cart", nil)
	return err
}

func (c *Client) Checkout(ctx context.Context) (*domain.Order, error) {
	env, err := c.postJSON(ctx, "/api/checkout", nil)
	if err != nil {
		return nil, err
	}
	if env.Order == nil {
		return nil, &APIError{Status: http.StatusOK, Message: "checkout response missing order"}
	}
	return env.Order, nil
}

// SalesData returns the monthly aggregate. Unlike the cart endpoints the
// backend replies with the bare aggregate, not the success envelope.
func (c *Client) SalesData(ctx context.Context, month, year int) (*domain.SalesData, error) {
	url := c.baseURL + "/api/sales-data?month=" + strconv.Itoa(month) + "&year=" + strconv.Itoa(year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request GET /api/sales-data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Message: "sales data unavailable"}
	}
	var data domain.SalesData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "unexpected response shape"}
	}
	return &data, nil
}

func (c *Client) GenerateQR(ctx context.Context, orderNumber string, totalAmount float64) (*domain.PaymentQR, error) {
	env, err := c.postJSON(ctx, "/api/generate-qr", map[string]any{
		"order_number": orderNumber,
		"total_amount": totalAmount,
	})
	if err != nil {
		return nil, err
	}
	return &domain.PaymentQR{QRCode: env.QRCode, UPIID: env.UPIID}, nil
}
