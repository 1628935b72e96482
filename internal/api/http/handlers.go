package httpapi

import (
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"tiffin-pos-frontend/internal/domain"
	"tiffin-pos-frontend/internal/notify"
	"tiffin-pos-frontend/internal/service"
	"tiffin-pos-frontend/internal/view"

	"github.com/rs/zerolog"
)

const maxUploadBytes = 10 << 20

// Handler maps UI events (form posts, page loads) onto the three page
// controllers and renders fragments from their state.
type Handler struct {
	Cart   service.CartServiceInterface
	Menu   service.MenuFormServiceInterface
	Sales  service.SalesReportServiceInterface
	Render *view.Renderer
	Charts *view.ChartRegistry
	Center *notify.Center
	Now    func() time.Time
	log    zerolog.Logger
}

func NewHandler(
	cart service.CartServiceInterface,
	menu service.MenuFormServiceInterface,
	sales service.SalesReportServiceInterface,
	renderer *view.Renderer,
	charts *view.ChartRegistry,
	center *notify.Center,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		Cart:   cart,
		Menu:   menu,
		Sales:  sales,
		Render: renderer,
		Charts: charts,
		Center: center,
		Now:    time.Now,
		log:    log.With().Str("component", "http").Logger(),
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-frontend",
		"timestamp": h.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) writePage(w http.ResponseWriter, title string, fragments ...template.HTML) {
	notifications, err := h.Render.Notifications(h.Center.Active())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to render notifications")
	}
	body := notifications
	for _, fragment := range fragments {
		body += fragment
	}
	page, err := h.Render.Page(title, body)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to render page")
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	h.writeHTML(w, page)
}

func (h *Handler) writeHTML(w http.ResponseWriter, fragment template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, string(fragment))
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func formInt(r *http.Request, field string) (int, error) {
	return strconv.Atoi(r.FormValue(field))
}

// --- cart ---

func (h *Handler) orderPage(w http.ResponseWriter, r *http.Request) {
	h.Cart.LoadCart(r.Context())
	panel, err := h.Render.CartPanel(h.Cart.Cart())
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	h.writePage(w, "Order", panel)
}

func (h *Handler) cartPanel(w http.ResponseWriter, r *http.Request) {
	panel, err := h.Render.CartPanel(h.Cart.Cart())
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	h.writeHTML(w, panel)
}

func (h *Handler) cartAdd(w http.ResponseWriter, r *http.Request) {
	menuID, err := formInt(r, "menu_id")
	if err != nil {
		http.Error(w, "invalid menu_id", http.StatusBadRequest)
		return
	}
	quantity, err := formInt(r, "quantity")
	if err != nil {
		quantity = 1
	}
	h.Cart.AddToCart(r.Context(), menuID, quantity)
	redirect(w, r, "/")
}

func (h *Handler) cartUpdate(w http.ResponseWriter, r *http.Request) {
	menuID, err := formInt(r, "menu_id")
	if err != nil {
		http.Error(w, "invalid menu_id", http.StatusBadRequest)
		return
	}
	quantity, err := formInt(r, "quantity")
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}
	h.Cart.UpdateCartItem(r.Context(), menuID, quantity)
	redirect(w, r, "/")
}

func (h *Handler) cartRemove(w http.ResponseWriter, r *http.Request) {
	menuID, err := formInt(r, "menu_id")
	if err != nil {
		http.Error(w, "invalid menu_id", http.StatusBadRequest)
		return
	}
	h.Cart.RemoveFromCart(r.Context(), menuID)
	redirect(w, r, "/")
}

func (h *Handler) cartClear(w http.ResponseWriter, r *http.Request) {
	confirmed := r.FormValue("confirm") == "yes"
	h.Cart.ClearCart(r.Context(), confirmed)
	redirect(w, r, "/")
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Cart.Checkout(r.Context()); err != nil {
		redirect(w, r, "/")
		return
	}
	redirect(w, r, "/bill")
}

func (h *Handler) billPage(w http.ResponseWriter, r *http.Request) {
	order := h.Cart.CurrentOrder()
	if order == nil {
		redirect(w, r, "/")
		return
	}
	bill, err := h.Render.Bill(order)
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	h.writePage(w, "Bill "+order.OrderNumber, bill)
}

func (h *Handler) billPrint(w http.ResponseWriter, r *http.Request) {
	order := h.Cart.CurrentOrder()
	if order == nil {
		http.Error(w, "no current order", http.StatusNotFound)
		return
	}
	doc, err := h.Render.PrintBill(order)
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	h.writeHTML(w, doc)
}

func (h *Handler) qrPage(w http.ResponseWriter, r *http.Request) {
	details, err := h.Cart.PaymentQR(r.Context())
	if err != nil {
		redirect(w, r, "/")
		return
	}
	panel, err := h.Render.QRPanel(details)
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	h.writePage(w, "Payment QR", panel)
}

// --- menu admin ---

func (h *Handler) menuPage(w http.ResponseWriter, r *http.Request) {
	form, err := h.Render.MenuForm(h.Menu.State())
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	h.writePage(w, "Manage Menu", form)
}

func (h *Handler) menuSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		h.Center.Error("Invalid price")
		redirect(w, r, "/manage-menu")
		return
	}

	form := domain.MenuForm{
		Name:        r.FormValue("name"),
		Price:       price,
		Description: r.FormValue("description"),
		ImageURL:    r.FormValue("image_url"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		content, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			http.Error(w, "Error retrieving file", http.StatusBadRequest)
			return
		}
		form.Image = &domain.Upload{Filename: header.Filename, Content: content}
	}

	h.Menu.Submit(r.Context(), form)
	redirect(w, r, "/manage-menu")
}

func (h *Handler) menuEdit(w http.ResponseWriter, r *http.Request) {
	id, err := formInt(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		http.Error(w, "invalid price", http.StatusBadRequest)
		return
	}
	h.Menu.EditItem(id, r.FormValue("name"), price, r.FormValue("description"), r.FormValue("image_path"))
	redirect(w, r, "/manage-menu#menu-form")
}

func (h *Handler) menuDelete(w http.ResponseWriter, r *http.Request) {
	id, err := formInt(r, "id")
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	confirmed := r.FormValue("confirm") == "yes"
	h.Menu.DeleteItem(r.Context(), id, confirmed)
	redirect(w, r, "/manage-menu")
}

func (h *Handler) menuReset(w http.ResponseWriter, r *http.Request) {
	h.Menu.ResetForm()
	redirect(w, r, "/manage-menu")
}

func (h *Handler) menuTab(w http.ResponseWriter, r *http.Request) {
	h.Menu.SwitchImageTab(service.ImageTab(r.FormValue("tab")))
	redirect(w, r, "/manage-menu")
}

func (h *Handler) menuPreview(w http.ResponseWriter, r *http.Request) {
	h.Menu.PreviewImage(r.Context(), r.FormValue("image_url"))
	redirect(w, r, "/manage-menu")
}

// --- sales report ---

func (h *Handler) reportPeriod(r *http.Request) (int, int) {
	month, errM := strconv.Atoi(r.URL.Query().Get("month"))
	year, errY := strconv.Atoi(r.URL.Query().Get("year"))
	if errM != nil || errY != nil {
		h.Sales.Init(h.Now())
		return h.Sales.Period()
	}
	return month, year
}

func (h *Handler) salesPage(w http.ResponseWriter, r *http.Request) {
	month, year := h.reportPeriod(r)
	h.Sales.LoadSalesData(r.Context(), month, year)
	h.writeSalesFragment(w, month, year, true)
}

func (h *Handler) salesData(w http.ResponseWriter, r *http.Request) {
	month, year := h.reportPeriod(r)
	h.Sales.LoadSalesData(r.Context(), month, year)
	h.writeSalesFragment(w, month, year, false)
}

func (h *Handler) writeSalesFragment(w http.ResponseWriter, month, year int, fullPage bool) {
	report := view.SalesReport{Month: month, Year: year, Summary: h.Sales.Summary()}
	if data := h.Sales.Data(); data != nil {
		report.TopItems = data.TopItems
		report.DailySales = data.DailySales
	}
	fragment, err := h.Render.SalesReport(report)
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	if fullPage {
		h.writePage(w, "Sales Report", fragment)
		return
	}
	h.writeHTML(w, fragment)
}

func (h *Handler) salesChart(w http.ResponseWriter, r *http.Request) {
	month, year := h.reportPeriod(r)
	curMonth, curYear := h.Sales.Period()
	data := h.Sales.Data()
	if data == nil || curMonth != month || curYear != year {
		loaded, err := h.Sales.LoadSalesData(r.Context(), month, year)
		if err != nil {
			http.Error(w, "sales data unavailable", http.StatusBadGateway)
			return
		}
		data = loaded
	}
	doc, err := h.Charts.RenderDailySales("dailySalesChart", data.DailySales)
	if err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(doc)
}
