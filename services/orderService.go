package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dewrapsquare/dewrap-api/models"
	"gorm.io/datatypes"
)

var (
	ErrNoPendingOrder      = errors.New("no order is awaiting payment for this session")
	ErrPaymentNotConfirmed = errors.New("the payment provider has not confirmed this payment")
	ErrIllegalTransition   = errors.New("illegal order status transition")
)

type CheckoutResponse struct {
	AuthorizationURL string  `json:"authorizationUrl"`
	AccessCode       string  `json:"accessCode"`
	Reference        string  `json:"reference"`
	Total            float64 `json:"total"`
}

type HandoffResponse struct {
	WhatsAppURL string `json:"whatsappUrl"`
	Reference   string `json:"reference"`
	Message     string `json:"message"`
}

// OrderService drives a checkout attempt from validation through
// payment to the WhatsApp handoff.
type OrderService struct {
	carts    *CartService
	recovery *RecoveryService
	gateway  PaymentGateway
	whatsapp *WhatsAppService
}

func NewOrderService(carts *CartService, recovery *RecoveryService, gateway PaymentGateway, whatsapp *WhatsAppService) *OrderService {
	return &OrderService{
		carts:    carts,
		recovery: recovery,
		gateway:  gateway,
		whatsapp: whatsapp,
	}
}

// Checkout validates the form against the current cart, persists a
// pending record and opens a payment session. The cart itself is left
// untouched until the payment is confirmed.
func (s *OrderService) Checkout(ctx context.Context, sessionID string, customer models.CustomerInfo) (*CheckoutResponse, error) {
	cart := s.carts.Copy(sessionID)
	if err := ValidateCheckout(&cart, customer); err != nil {
		return nil, err
	}

	_, total := cart.Totals()
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot cart: %w", err)
	}

	record := &models.OrderRecord{
		SessionID:     sessionID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		Address:       customer.Address,
		Total:         total,
		Delivery:      customer.Delivery,
		PaymentRef:    GenerateReference(),
		Items:         datatypes.JSON(itemsJSON),
		Status:        models.PaymentStatusPending,
		PlacedAt:      time.Now().UnixMilli(),
	}

	// The pending record must be durable before the gateway is
	// invoked, otherwise a tab closed mid-payment is unrecoverable.
	// A dead recovery store is not allowed to block checkout.
	if err := s.recovery.Save(ctx, record); err != nil {
		log.Printf("recovery store unavailable, continuing without crash recovery: %v", err)
	}

	session, err := s.gateway.Initialize(ctx, PaymentRequest{
		Amount:        record.Total,
		Reference:     record.PaymentRef,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initiate payment: %w", err)
	}

	return &CheckoutResponse{
		AuthorizationURL: session.AuthorizationURL,
		AccessCode:       session.AccessCode,
		Reference:        record.PaymentRef,
		Total:            record.Total,
	}, nil
}

// ConfirmPayment is hit after the payment widget reports success. The
// client is never trusted: the reference is re-verified with the
// provider before the order moves forward.
func (s *OrderService) ConfirmPayment(ctx context.Context, sessionID, reference string) (*HandoffResponse, error) {
	record, err := s.loadFor(ctx, sessionID, reference)
	if err != nil {
		return nil, err
	}
	return s.finalize(ctx, record)
}

// CancelPayment handles the widget's cancel outcome. The pending
// record stays in storage: if the provider actually took the money the
// customer can still resume from recovery.
func (s *OrderService) CancelPayment(ctx context.Context, sessionID, reference string) error {
	record, err := s.loadFor(ctx, sessionID, reference)
	if err != nil {
		return err
	}
	if record.Status != models.PaymentStatusPending {
		return ErrIllegalTransition
	}
	log.Printf("payment cancelled for reference %s, pending record retained", reference)
	return nil
}

// Recover is called on session start and returns the in-flight record
// the recovery UI should offer, if any.
func (s *OrderService) Recover(ctx context.Context, sessionID string) (*models.OrderRecord, error) {
	return s.recovery.ReconcileOnLoad(ctx, sessionID, time.Now())
}

// ResumeRecovery re-enters the lifecycle for a recovered record. A
// pending record is verified with the provider before promotion; a
// verified one goes straight back to the sending step.
func (s *OrderService) ResumeRecovery(ctx context.Context, sessionID string) (*HandoffResponse, error) {
	record, err := s.recovery.ReconcileOnLoad(ctx, sessionID, time.Now())
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNoPendingOrder
	}
	return s.finalize(ctx, record)
}

// DiscardRecovery lets the customer dismiss an unpaid attempt.
func (s *OrderService) DiscardRecovery(ctx context.Context, sessionID string) error {
	record, err := s.recovery.Load(ctx, sessionID)
	if errors.Is(err, ErrNoRecord) {
		return ErrNoPendingOrder
	}
	if err != nil {
		return err
	}
	if !models.CanTransitionTo(record.Status, models.PaymentStatusCancelled) {
		return ErrIllegalTransition
	}
	log.Printf("order %s discarded by customer", record.PaymentRef)
	return s.recovery.Delete(ctx, sessionID)
}

func (s *OrderService) loadFor(ctx context.Context, sessionID, reference string) (*models.OrderRecord, error) {
	record, err := s.recovery.Load(ctx, sessionID)
	if errors.Is(err, ErrNoRecord) {
		return nil, ErrNoPendingOrder
	}
	if err != nil {
		return nil, err
	}
	if record.PaymentRef != reference {
		return nil, ErrNoPendingOrder
	}
	return record, nil
}

// finalize walks a record through VERIFIED and SENT and hands the
// wa.me link back. Only pending and verified records may enter.
func (s *OrderService) finalize(ctx context.Context, record *models.OrderRecord) (*HandoffResponse, error) {
	switch record.Status {
	case models.PaymentStatusPending:
		result, err := s.gateway.Verify(ctx, record.PaymentRef)
		if err != nil {
			return nil, fmt.Errorf("failed to verify payment: %w", err)
		}
		if !result.Paid {
			return nil, ErrPaymentNotConfirmed
		}
		if !models.CanTransitionTo(record.Status, models.PaymentStatusVerified) {
			return nil, ErrIllegalTransition
		}
		record.Status = models.PaymentStatusVerified
		record.ProviderRef = result.ProviderRef
		if err := s.recovery.Save(ctx, record); err != nil {
			log.Printf("failed to persist verified record: %v", err)
		}
	case models.PaymentStatusVerified:
		// Crash after verification: skip straight to sending.
	default:
		return nil, ErrIllegalTransition
	}

	link, err := s.whatsapp.HandoffURL(record)
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionTo(record.Status, models.PaymentStatusSent) {
		return nil, ErrIllegalTransition
	}
	record.Status = models.PaymentStatusSent
	if err := s.recovery.Save(ctx, record); err != nil {
		log.Printf("failed to persist sent record: %v", err)
	}
	// A sent order must never resurface in recovery.
	if err := s.recovery.Delete(ctx, record.SessionID); err != nil {
		log.Printf("failed to clear recovery slot: %v", err)
	}

	s.carts.Clear(record.SessionID)

	return &HandoffResponse{
		WhatsAppURL: link,
		Reference:   record.PaymentRef,
		Message:     "Payment received. We are processing your order on WhatsApp.",
	}, nil
}
