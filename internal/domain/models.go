package domain

type CartItem struct {
	MenuID   int     `json:"menu_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	OrderNumber string      `json:"order_number"`
	OrderDate   string      `json:"order_date"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	MenuName string  `json:"menu_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImagePath   string  `json:"image_path"`
}

// MenuForm carries one full create/update submission. Image and ImageURL are
// mutually exclusive; when both are set the URL wins and the file is dropped.
type MenuForm struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
	Image       *Upload
}

type Upload struct {
	Filename string
	Content  []byte
}

type SalesData struct {
	TotalSales  float64     `json:"total_sales"`
	TotalOrders int         `json:"total_orders"`
	TopItems    []TopItem   `json:"top_items"`
	DailySales  []DailySale `json:"daily_sales"`
}

type TopItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type DailySale struct {
	Date   string  `json:"date"`
	Orders int     `json:"orders"`
	Total  float64 `json:"total"`
}

type PaymentQR struct {
	QRCode string `json:"qr_code"`
	UPIID  string `json:"upi_id"`
}
