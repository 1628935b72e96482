package httpapi

import "github.com/gorilla/mux"

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/", h.orderPage).Methods("GET")
	r.HandleFunc("/cart", h.cartPanel).Methods("GET")
	r.HandleFunc("/cart/add", h.cartAdd).Methods("POST")
	r.HandleFunc("/cart/update", h.cartUpdate).Methods("POST")
	r.HandleFunc("/cart/remove", h.cartRemove).Methods("POST")
	r.HandleFunc("/cart/clear", h.cartClear).Methods("POST")
	r.HandleFunc("/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/bill", h.billPage).Methods("GET")
	r.HandleFunc("/bill/print", h.billPrint).Methods("GET")
	r.HandleFunc("/qr", h.qrPage).Methods("GET")

	r.HandleFunc("/manage-menu", h.menuPage).Methods("GET")
	r.HandleFunc("/menu/save", h.menuSave).Methods("POST")
	r.HandleFunc("/menu/edit", h.menuEdit).Methods("POST")
	r.HandleFunc("/menu/delete", h.menuDelete).Methods("POST")
	r.HandleFunc("/menu/reset", h.menuReset).Methods("POST")
	r.HandleFunc("/menu/tab", h.menuTab).Methods("POST")
	r.HandleFunc("/menu/preview", h.menuPreview).Methods("POST")

	r.HandleFunc("/sales-report", h.salesPage).Methods("GET")
	r.HandleFunc("/sales-report/data", h.salesData).Methods("GET")
	r.HandleFunc("/sales-report/chart", h.salesChart).Methods("GET")
}
