package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShopQR generates a QR code that deep-links to a merchant's shop page
	GenerateShopQR(merchantID uuid.UUID) ([]byte, error)

	// ParseShopQR parses QR code data and returns the merchant ID
	ParseShopQR(qrData string) (uuid.UUID, error)
}
