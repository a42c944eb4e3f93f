package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusVerified  PaymentStatus = "VERIFIED"
	PaymentStatusSent      PaymentStatus = "SENT"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusExpired   PaymentStatus = "EXPIRED"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSent || s == PaymentStatusCancelled || s == PaymentStatusExpired
}

// String representation (for logging)
func (s PaymentStatus) String() string {
	return string(s)
}

// CanTransitionTo enforces the only legal order lifecycle:
// PENDING -> VERIFIED -> SENT, PENDING -> CANCELLED, and any state may
// expire.
func CanTransitionTo(from, to PaymentStatus) bool {
	if to == PaymentStatusExpired {
		return true
	}
	switch from {
	case PaymentStatusPending:
		return to == PaymentStatusVerified || to == PaymentStatusCancelled
	case PaymentStatusVerified:
		return to == PaymentStatusSent
	default:
		return false
	}
}

// RecoveryTTL is how long an in-flight order stays recoverable.
const RecoveryTTL = 24 * time.Hour

// OrderRecord is the durable snapshot of a checkout attempt, one slot
// per storefront session, overwritten on every new attempt.
type OrderRecord struct {
	gorm.Model
	SessionID     string         `json:"sessionId" gorm:"uniqueIndex;size:64"`
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone"`
	Address       string         `json:"address"`
	Total         float64        `json:"total"`
	Delivery      bool           `json:"delivery"`
	PaymentRef    string         `json:"paymentRef"`
	ProviderRef   string         `json:"providerRef"`
	Items         datatypes.JSON `json:"items"`
	Status        PaymentStatus  `json:"status" gorm:"size:16"`
	PlacedAt      int64          `json:"placedAt"`
}

func (o *OrderRecord) IsExpired(now time.Time) bool {
	return now.UnixMilli()-o.PlacedAt > RecoveryTTL.Milliseconds()
}

// CustomerInfo is read from the checkout form and lives only inside an
// OrderRecord afterwards.
type CustomerInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Delivery bool   `json:"delivery"`
	Address  string `json:"address"`
}
