package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tiffin-pos-frontend/internal/client"
	"tiffin-pos-frontend/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *client.Client {
	return client.New(baseURL, nil, zerolog.Nop())
}

func TestClient_CartEnvelope(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/add-to-cart", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var payload map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 1, payload["menu_id"])
		assert.Equal(t, 2, payload["quantity"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"cart": []map[string]any{
				{"menu_id": 1, "name": "Idly", "price": 30.0, "quantity": 2},
			},
		})
	}))
	defer backend.Close()

	items, err := newTestClient(backend.URL).AddToCart(context.Background(), 1, 2)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.CartItem{MenuID: 1, Name: "Idly", Price: 30, Quantity: 2}, items[0])
}

func TestClient_ApplicationError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "not found with error message",
			status:  http.StatusNotFound,
			body:    `{"error": "Menu item not found"}`,
			wantMsg: "Menu item not found",
		},
		{
			name:   "success false in a 200 response",
			status: http.StatusOK,
			body:   `{"success": false}`,
		},
		{
			name:   "unexpected payload shape",
			status: http.StatusOK,
			body:   `not json`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer backend.Close()

			_, err := newTestClient(backend.URL).AddToCart(context.Background(), 1, 1)

			require.Error(t, err)
			assert.True(t, client.IsApplicationError(err))
			if testCase.wantMsg != "" {
				assert.Contains(t, err.Error(), testCase.wantMsg)
			}
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused from here on

	err := newTestClient(backend.URL).ClearCart(context.Background())

	require.Error(t, err)
	assert.False(t, client.IsApplicationError(err))
}

func TestClient_CheckoutDecodesOrder(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/checkout", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"order": map[string]any{
				"order_number": "ORD-1",
				"order_date":   "2026-08-30T12:00:00",
				"total_amount": 110.0,
				"items": []map[string]any{
					{"menu_name": "Idly", "quantity": 2, "price": 30.0, "subtotal": 60.0},
				},
			},
		})
	}))
	defer backend.Close()

	order, err := newTestClient(backend.URL).Checkout(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.OrderNumber)
	assert.Equal(t, 110.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 60.0, order.Items[0].Subtotal)
}

func TestClient_CheckoutMissingOrder(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer backend.Close()

	_, err := newTestClient(backend.URL).Checkout(context.Background())

	require.Error(t, err)
	assert.True(t, client.IsApplicationError(err))
}

func TestClient_CreateMenuItemMultipart(t *testing.T) {
	tests := []struct {
		name     string
		form     domain.MenuForm
		wantURL  string
		wantFile bool
	}{
		{
			name: "file upload",
			form: domain.MenuForm{
				Name:  "Vada",
				Price: 25,
				Image: &domain.Upload{Filename: "vada.jpg", Content: []byte("jpegbytes")},
			},
			wantFile: true,
		},
		{
			name: "URL field omits the file even when both are populated",
			form: domain.MenuForm{
				Name:     "Vada",
				Price:    25,
				ImageURL: "https://example.com/vada.jpg",
				Image:    &domain.Upload{Filename: "vada.jpg", Content: []byte("jpegbytes")},
			},
			wantURL: "https://example.com/vada.jpg",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/menu", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				require.NoError(t, r.ParseMultipartForm(10<<20))

				assert.Equal(t, "Vada", r.FormValue("name"))
				assert.Equal(t, "25.00", r.FormValue("price"))
				assert.Equal(t, testCase.wantURL, r.FormValue("image_url"))

				file, header, err := r.FormFile("image")
				if testCase.wantFile {
					require.NoError(t, err)
					file.Close()
					assert.Equal(t, "vada.jpg", header.Filename)
				} else {
					assert.Error(t, err)
				}

				json.NewEncoder(w).Encode(map[string]any{"success": true})
			}))
			defer backend.Close()

			err := newTestClient(backend.URL).CreateMenuItem(context.Background(), testCase.form)
			require.NoError(t, err)
		})
	}
}

func TestClient_UpdateAndDeleteMenuItemPaths(t *testing.T) {
	var gotMethod, gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer backend.Close()

	posClient := newTestClient(backend.URL)

	require.NoError(t, posClient.UpdateMenuItem(context.Background(), 7, domain.MenuForm{Name: "Dosa", Price: 55}))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/menu/7", gotPath)

	require.NoError(t, posClient.DeleteMenuItem(context.Background(), 7))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/menu/7", gotPath)
}

// The sales endpoint replies with a bare aggregate, not the success envelope.
func TestClient_SalesData(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sales-data", r.URL.Path)
		assert.Equal(t, "8", r.URL.Query().Get("month"))
		assert.Equal(t, "2026", r.URL.Query().Get("year"))
		json.NewEncoder(w).Encode(map[string]any{
			"total_sales":  300.0,
			"total_orders": 4,
			"top_items":    []map[string]any{{"name": "Dosa", "quantity": 5, "revenue": 250.0}},
			"daily_sales":  []map[string]any{{"date": "2026-08-01", "orders": 4, "total": 300.0}},
		})
	}))
	defer backend.Close()

	data, err := newTestClient(backend.URL).SalesData(context.Background(), 8, 2026)

	require.NoError(t, err)
	assert.Equal(t, 300.0, data.TotalSales)
	assert.Equal(t, 4, data.TotalOrders)
	require.Len(t, data.TopItems, 1)
	require.Len(t, data.DailySales, 1)
}

func TestImageProber(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		wantErr     bool
	}{
		{name: "image ok", status: http.StatusOK, contentType: "image/png"},
		{name: "not found", status: http.StatusNotFound, contentType: "text/html", wantErr: true},
		{name: "not an image", status: http.StatusOK, contentType: "text/html", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", testCase.contentType)
				w.WriteHeader(testCase.status)
			}))
			defer backend.Close()

			err := client.NewImageProber(nil).Probe(context.Background(), backend.URL+"/img.png")

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
