package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderNumber string, amount float64) ([]byte, error)
	PayeeAddress() string
}

// UPIQRGenerator encodes a UPI payment payload for an order. The code is
// display-only: no payment is collected through it.
type UPIQRGenerator struct {
	UPIID     string
	PayeeName string
}

func (g UPIQRGenerator) Generate(orderNumber string, amount float64) ([]byte, error) {
	qrData := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=INR&tn=Order %s",
		g.UPIID, g.PayeeName, amount, orderNumber)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

func (g UPIQRGenerator) PayeeAddress() string {
	return g.UPIID
}
