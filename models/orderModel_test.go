package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentStatusPending, PaymentStatusVerified, true},
		{PaymentStatusPending, PaymentStatusCancelled, true},
		{PaymentStatusVerified, PaymentStatusSent, true},
		{PaymentStatusPending, PaymentStatusSent, false},
		{PaymentStatusVerified, PaymentStatusCancelled, false},
		{PaymentStatusSent, PaymentStatusVerified, false},
		{PaymentStatusCancelled, PaymentStatusVerified, false},
		{PaymentStatusSent, PaymentStatusExpired, true},
		{PaymentStatusPending, PaymentStatusExpired, true},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, CanTransitionTo(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPaymentStatusIsTerminal(t *testing.T) {
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.False(t, PaymentStatusVerified.IsTerminal())
	assert.True(t, PaymentStatusSent.IsTerminal())
	assert.True(t, PaymentStatusCancelled.IsTerminal())
	assert.True(t, PaymentStatusExpired.IsTerminal())
}

func TestOrderRecordIsExpired(t *testing.T) {
	now := time.Now()

	record := OrderRecord{PlacedAt: now.Add(-23 * time.Hour).UnixMilli()}
	assert.False(t, record.IsExpired(now))

	record = OrderRecord{PlacedAt: now.Add(-24*time.Hour - time.Second).UnixMilli()}
	assert.True(t, record.IsExpired(now))
}
