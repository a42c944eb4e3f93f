package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/dewrapsquare/dewrap-api/models"
)

const defaultShopNumber = "233596620696"

// WhatsAppService turns a confirmed order into the message the shop
// receives, and the wa.me link the storefront opens.
type WhatsAppService struct {
	shopNumber string
}

func NewWhatsAppService() *WhatsAppService {
	number := os.Getenv("WHATSAPP_NUMBER")
	if number == "" {
		number = defaultShopNumber
	}
	return &WhatsAppService{shopNumber: number}
}

func formatCedis(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// BuildOrderMessage renders the order as plain text: header, paid
// marker, provider reference, customer details, itemized lines in
// insertion order, then the total.
func (s *WhatsAppService) BuildOrderMessage(record *models.OrderRecord) (string, error) {
	var items []models.LineItem
	if err := json.Unmarshal(record.Items, &items); err != nil {
		return "", fmt.Errorf("failed to decode order items: %w", err)
	}

	orderType := "PICK UP"
	if record.Delivery {
		orderType = "DELIVERY"
	}

	var b strings.Builder
	b.WriteString("*NEW PAID ORDER - DE WRAP SQUARE* \n")
	b.WriteString("--------------------------------\n")
	b.WriteString("✅ *PAYMENT CONFIRMED*\n")
	b.WriteString(fmt.Sprintf("💳 *Ref:* %s\n", record.ProviderRef))
	b.WriteString("--------------------------------\n")
	b.WriteString(fmt.Sprintf("👤 *Name:* %s\n", record.CustomerName))
	b.WriteString(fmt.Sprintf("📞 *Phone:* %s\n", record.CustomerPhone))
	b.WriteString(fmt.Sprintf("📦 *Type:* %s\n", orderType))

	if record.Delivery {
		b.WriteString(fmt.Sprintf("📍 *Location:* %s\n", record.Address))
	}

	b.WriteString("\n*📝 ORDER DETAILS:*\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("- %dx %s (%s)\n", item.Quantity, item.Name, item.Size))
	}

	b.WriteString(fmt.Sprintf("\n💰 *FOOD TOTAL PAID: ₵%s*\n", formatCedis(record.Total)))

	if record.Delivery {
		b.WriteString("⚠️ *NOTE:* Delivery fee is NOT included. Customer pays rider.\n")
	}

	return b.String(), nil
}

// HandoffURL builds the deep link the client opens in a new tab.
// Opening it is fire-and-forget, there is no delivery confirmation.
func (s *WhatsAppService) HandoffURL(record *models.OrderRecord) (string, error) {
	message, err := s.BuildOrderMessage(record)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.shopNumber, url.QueryEscape(message)), nil
}
