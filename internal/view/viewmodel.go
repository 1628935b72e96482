package view

import (
	"html/template"
	"time"

	"tiffin-pos-frontend/internal/domain"
	"tiffin-pos-frontend/internal/service"
)

type CartRow struct {
	MenuID       int
	Name         string
	Price        float64
	Quantity     int
	LineTotal    float64
	CanDecrement bool
}

type CartPanel struct {
	Items []CartRow
	Total float64
	Empty bool
}

// BuildCartPanel derives the cart view from the mirror. The total is always
// recomputed from price times quantity, never taken from a stored figure.
func BuildCartPanel(items []domain.CartItem) CartPanel {
	panel := CartPanel{Empty: len(items) == 0}
	for _, item := range items {
		lineTotal := item.Price * float64(item.Quantity)
		panel.Items = append(panel.Items, CartRow{
			MenuID:       item.MenuID,
			Name:         item.Name,
			Price:        item.Price,
			Quantity:     item.Quantity,
			LineTotal:    lineTotal,
			CanDecrement: item.Quantity > 1,
		})
		panel.Total += lineTotal
	}
	return panel
}

type BillRow struct {
	Name     string
	Quantity int
	Price    float64
	Subtotal float64
}

type Bill struct {
	OrderNumber string
	OrderDate   string
	Rows        []BillRow
	Total       float64
}

func BuildBill(order *domain.Order) Bill {
	bill := Bill{
		OrderNumber: order.OrderNumber,
		OrderDate:   formatOrderDate(order.OrderDate),
		Total:       order.TotalAmount,
	}
	for _, item := range order.Items {
		bill.Rows = append(bill.Rows, BillRow{
			Name:     item.MenuName,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal,
		})
	}
	return bill
}

var orderDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func formatOrderDate(raw string) string {
	for _, layout := range orderDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("02 Jan 2006 15:04")
		}
	}
	return raw
}

type QRPanel struct {
	OrderNumber string
	Amount      float64
	// html/template rejects data: URIs in src attributes unless pre-approved.
	DataURI template.URL
	UPIID   string
}

func BuildQRPanel(details *service.QRDetails) QRPanel {
	return QRPanel{
		OrderNumber: details.Order.OrderNumber,
		Amount:      details.Order.TotalAmount,
		DataURI:     template.URL(details.DataURI),
		UPIID:       details.UPIID,
	}
}

type SalesReport struct {
	Month      int
	Year       int
	Summary    service.Summary
	TopItems   []domain.TopItem
	DailySales []domain.DailySale
}
