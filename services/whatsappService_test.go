package services

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/dewrapsquare/dewrap-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handoffRecord(t *testing.T, delivery bool) *models.OrderRecord {
	t.Helper()
	items, err := json.Marshal([]models.LineItem{
		{Name: "Margherita", Size: "Medium", Price: 30, Quantity: 1},
		{Name: "Chicken Wrap", Size: "Regular", Price: 25, Quantity: 2},
	})
	require.NoError(t, err)

	return &models.OrderRecord{
		SessionID:     "s1",
		CustomerName:  "Ama Owusu",
		CustomerPhone: "0551234567",
		Address:       "Osu, Accra",
		Total:         80,
		Delivery:      delivery,
		PaymentRef:    "12345",
		ProviderRef:   "ref123",
		Items:         items,
		Status:        models.PaymentStatusVerified,
	}
}

func TestBuildOrderMessage_DeliveryLayout(t *testing.T) {
	t.Setenv("WHATSAPP_NUMBER", "233596620696")
	svc := NewWhatsAppService()

	message, err := svc.BuildOrderMessage(handoffRecord(t, true))
	require.NoError(t, err)

	expected := "*NEW PAID ORDER - DE WRAP SQUARE* \n" +
		"--------------------------------\n" +
		"✅ *PAYMENT CONFIRMED*\n" +
		"💳 *Ref:* ref123\n" +
		"--------------------------------\n" +
		"👤 *Name:* Ama Owusu\n" +
		"📞 *Phone:* 0551234567\n" +
		"📦 *Type:* DELIVERY\n" +
		"📍 *Location:* Osu, Accra\n" +
		"\n*📝 ORDER DETAILS:*\n" +
		"- 1x Margherita (Medium)\n" +
		"- 2x Chicken Wrap (Regular)\n" +
		"\n💰 *FOOD TOTAL PAID: ₵80*\n" +
		"⚠️ *NOTE:* Delivery fee is NOT included. Customer pays rider.\n"

	assert.Equal(t, expected, message)
}

func TestBuildOrderMessage_PickupOmitsLocationAndRiderNote(t *testing.T) {
	svc := NewWhatsAppService()

	message, err := svc.BuildOrderMessage(handoffRecord(t, false))
	require.NoError(t, err)

	assert.Contains(t, message, "📦 *Type:* PICK UP\n")
	assert.NotContains(t, message, "Location")
	assert.NotContains(t, message, "Delivery fee")
}

func TestBuildOrderMessage_FractionalTotal(t *testing.T) {
	svc := NewWhatsAppService()

	record := handoffRecord(t, false)
	record.Total = 80.5
	message, err := svc.BuildOrderMessage(record)
	require.NoError(t, err)

	assert.Contains(t, message, "₵80.5*")
}

func TestHandoffURL_EncodesMessageForShopNumber(t *testing.T) {
	t.Setenv("WHATSAPP_NUMBER", "233596620696")
	svc := NewWhatsAppService()

	link, err := svc.HandoffURL(handoffRecord(t, true))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(link, "https://wa.me/233596620696?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "*NEW PAID ORDER - DE WRAP SQUARE*")
	assert.Contains(t, text, "- 1x Margherita (Medium)")
}

func TestBuildOrderMessage_BadItemsSnapshot(t *testing.T) {
	svc := NewWhatsAppService()

	record := handoffRecord(t, false)
	record.Items = []byte("{not json")
	_, err := svc.BuildOrderMessage(record)
	assert.Error(t, err)
}
