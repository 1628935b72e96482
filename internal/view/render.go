package view

import (
	"bytes"
	"fmt"
	"html/template"

	"tiffin-pos-frontend/internal/domain"
	"tiffin-pos-frontend/internal/notify"
	"tiffin-pos-frontend/internal/service"
)

// Renderer turns view models into HTML fragments. Templates keep the exact
// rendering contract of the pages: one row per item, a single explanatory row
// when a sequence is empty, rupee amounts with two decimals.
type Renderer struct {
	templates *template.Template
}

func rupees(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"rupees": rupees,
		"add":    func(a, b int) int { return a + b },
		"sub":    func(a, b int) int { return a - b },
	}
	return &Renderer{
		templates: template.Must(template.New("views").Funcs(funcs).Parse(viewTemplates)),
	}
}

func (r *Renderer) render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) CartPanel(items []domain.CartItem) (template.HTML, error) {
	return r.render("cart_panel", BuildCartPanel(items))
}

func (r *Renderer) Bill(order *domain.Order) (template.HTML, error) {
	return r.render("bill", BuildBill(order))
}

// PrintBill renders a standalone bill-only document so printing never tears
// down the live page.
func (r *Renderer) PrintBill(order *domain.Order) (template.HTML, error) {
	return r.render("bill_print", BuildBill(order))
}

func (r *Renderer) QRPanel(details *service.QRDetails) (template.HTML, error) {
	return r.render("qr_panel", BuildQRPanel(details))
}

func (r *Renderer) MenuForm(state service.FormState) (template.HTML, error) {
	return r.render("menu_form", state)
}

func (r *Renderer) SalesReport(report SalesReport) (template.HTML, error) {
	return r.render("sales_report", report)
}

func (r *Renderer) Notifications(notifications []notify.Notification) (template.HTML, error) {
	return r.render("notifications", notifications)
}

func (r *Renderer) Page(title string, body template.HTML) (template.HTML, error) {
	return r.render("page", struct {
		Title string
		Body  template.HTML
	}{Title: title, Body: body})
}
