package view

const viewTemplates = `
{{define "cart_panel"}}
<div id="cartItems">
{{- if .Empty}}
<p class="empty-cart">Your cart is empty</p>
{{- else}}
{{- range .Items}}
<div class="cart-item">
  <div class="cart-item-info">
    <h4>{{.Name}}</h4>
    <p>{{rupees .Price}} × {{.Quantity}}</p>
  </div>
  <div class="cart-item-actions">
    <form method="post" action="/cart/update">
      <input type="hidden" name="menu_id" value="{{.MenuID}}">
      <input type="hidden" name="quantity" value="{{sub .Quantity 1}}">
      <button type="submit"{{if not .CanDecrement}} disabled{{end}}>-</button>
    </form>
    <span>{{.Quantity}}</span>
    <form method="post" action="/cart/update">
      <input type="hidden" name="menu_id" value="{{.MenuID}}">
      <input type="hidden" name="quantity" value="{{add .Quantity 1}}">
      <button type="submit">+</button>
    </form>
    <form method="post" action="/cart/remove">
      <input type="hidden" name="menu_id" value="{{.MenuID}}">
      <button type="submit" class="remove-btn">×</button>
    </form>
  </div>
  <div class="cart-item-total">{{rupees .LineTotal}}</div>
</div>
{{- end}}
{{- end}}
</div>
{{- if not .Empty}}
<div id="cartSummary">
  <div class="cart-total">Total: <strong id="cartTotal">{{rupees .Total}}</strong></div>
  <form method="post" action="/cart/clear" onsubmit="if (!confirm('Are you sure you want to clear the cart?')) return false; this.elements.confirm.value = 'yes'; return true;">
    <input type="hidden" name="confirm" value="">
    <button type="submit" class="clear-btn">Clear Cart</button>
  </form>
  <form method="post" action="/checkout">
    <button type="submit" class="checkout-btn">Checkout</button>
  </form>
</div>
{{- end}}
{{end}}

{{define "bill"}}
<div class="bill-header">
  <h2>Restaurant Bill</h2>
  <p>Order Number: <strong>{{.OrderNumber}}</strong></p>
  <p>Date: {{.OrderDate}}</p>
</div>
<table class="bill-table">
  <thead>
    <tr><th>Item</th><th>Qty</th><th>Price</th><th>Total</th></tr>
  </thead>
  <tbody>
  {{- range .Rows}}
    <tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{rupees .Price}}</td><td>{{rupees .Subtotal}}</td></tr>
  {{- end}}
  </tbody>
  <tfoot>
    <tr><td colspan="3"><strong>Total Amount:</strong></td><td><strong>{{rupees .Total}}</strong></td></tr>
  </tfoot>
</table>
{{end}}

{{define "bill_print"}}<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Bill {{.OrderNumber}}</title></head>
<body onload="window.print()">
<div style="padding: 20px; font-family: Arial, sans-serif;">
{{template "bill" .}}
</div>
</body>
</html>
{{end}}

{{define "qr_panel"}}
<div class="qr-panel">
  <h3>Scan to Pay</h3>
  <img src="{{.DataURI}}" alt="Payment QR" width="256" height="256">
  <p>Order Number: <span id="qrOrderNumber">{{.OrderNumber}}</span></p>
  <p>Amount: <span id="qrAmount">{{rupees .Amount}}</span></p>
  {{- if .UPIID}}
  <p class="upi-id">{{.UPIID}}</p>
  {{- end}}
</div>
{{end}}

{{define "menu_form"}}
<section class="menu-form-section"{{if .ScrollToForm}} data-scroll="true"{{end}} id="menu-form">
  <h2 id="formTitle">{{if .EditingID}}Edit Menu Item{{else}}Add New Menu Item{{end}}</h2>
  <form id="menuForm" method="post" action="/menu/save" enctype="multipart/form-data">
    <input type="hidden" id="menuId" name="menu_id" value="{{if .EditingID}}{{.EditingID}}{{end}}">
    <label>Name <input type="text" id="name" name="name" value="{{.Name}}" required></label>
    <label>Price <input type="number" id="price" name="price" step="0.01" min="0" value="{{.Price}}" required></label>
    <label>Description <textarea id="description" name="description">{{.Description}}</textarea></label>
    <div class="image-tabs">
      <button type="submit" class="tab-btn{{if eq .ImageTab "upload"}} active{{end}}" formaction="/menu/tab" formnovalidate name="tab" value="upload">Upload</button>
      <button type="submit" class="tab-btn{{if eq .ImageTab "url"}} active{{end}}" formaction="/menu/tab" formnovalidate name="tab" value="url">Image URL</button>
    </div>
    {{- if eq .ImageTab "upload"}}
    <div id="uploadTab" class="active">
      <input type="file" id="image" name="image" accept="image/*">
    </div>
    {{- else}}
    <div id="urlTab" class="active">
      <input type="url" id="imageUrl" name="image_url" value="{{.ImageURL}}" placeholder="https://example.com/image.jpg">
      <button type="submit" formaction="/menu/preview" formnovalidate>Preview</button>
    </div>
    {{- end}}
    {{- if .PreviewShown}}
    <div id="imagePreview"><img id="previewImg" src="{{.PreviewURL}}" alt="Preview"></div>
    {{- end}}
    <button type="submit" id="submitBtn">{{if .EditingID}}Update Item{{else}}Add Item{{end}}</button>
    {{- if .EditingID}}
    <button type="submit" id="cancelBtn" formaction="/menu/reset" formnovalidate>Cancel</button>
    {{- end}}
  </form>
</section>
{{end}}

{{define "sales_report"}}
<div class="sales-summary">
  <div class="summary-card">Total Sales <strong id="totalSales">{{rupees .Summary.TotalSales}}</strong></div>
  <div class="summary-card">Total Orders <strong id="totalOrders">{{.Summary.TotalOrders}}</strong></div>
  <div class="summary-card">Avg Order Value <strong id="avgOrderValue">{{rupees .Summary.AvgOrderValue}}</strong></div>
</div>
<table class="report-table">
  <thead><tr><th>Item</th><th>Quantity</th><th>Revenue</th></tr></thead>
  <tbody id="topItemsTable">
  {{- if .TopItems}}
  {{- range .TopItems}}
    <tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{rupees .Revenue}}</td></tr>
  {{- end}}
  {{- else}}
    <tr><td colspan="3">No data available</td></tr>
  {{- end}}
  </tbody>
</table>
<table class="report-table">
  <thead><tr><th>Date</th><th>Orders</th><th>Total</th></tr></thead>
  <tbody id="dailyBreakdownTable">
  {{- if .DailySales}}
  {{- range .DailySales}}
    <tr><td>{{.Date}}</td><td>{{.Orders}}</td><td>{{rupees .Total}}</td></tr>
  {{- end}}
  {{- else}}
    <tr><td colspan="3">No data available</td></tr>
  {{- end}}
  </tbody>
</table>
<iframe id="dailySalesChart" src="/sales-report/chart?month={{.Month}}&amp;year={{.Year}}" width="100%" height="460" frameborder="0"></iframe>
{{end}}

{{define "notifications"}}
{{- range .}}
<div class="notification {{.Kind}} show" data-id="{{.ID}}">{{.Message}}</div>
{{- end}}
{{end}}

{{define "page"}}<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
</head>
<body>
{{.Body}}
<script>
// Clicking the dimmed backdrop closes a modal; clicks inside content do not
// reach the backdrop target.
window.onclick = function (event) {
  if (event.target.classList && event.target.classList.contains('modal')) {
    event.target.style.display = 'none';
  }
};
</script>
</body>
</html>
{{end}}
`
