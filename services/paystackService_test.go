package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaystackFixture(t *testing.T, handler http.HandlerFunc) *PaystackService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("PAYSTACK_BASE_URL", srv.URL)
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_123")
	t.Setenv("ORDERS_EMAIL", "orders@dewrapsquare.com")

	return NewPaystackService()
}

func TestPaystackInitialize(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	svc := newPaystackFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transaction/initialize", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc123","access_code":"abc123","reference":"12345"}}`))
	})

	session, err := svc.Initialize(context.Background(), PaymentRequest{
		Amount:        30,
		Reference:     "12345",
		CustomerName:  "Ama Owusu",
		CustomerPhone: "0551234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, "orders@dewrapsquare.com", gotBody["email"])
	assert.Equal(t, "GHS", gotBody["currency"])
	assert.Equal(t, "12345", gotBody["reference"])
	// 30 cedis charged as 3000 pesewas.
	assert.Equal(t, float64(3000), gotBody["amount"])

	assert.Equal(t, "https://checkout.paystack.com/abc123", session.AuthorizationURL)
	assert.Equal(t, "abc123", session.AccessCode)
	assert.Equal(t, "12345", session.Reference)
}

func TestPaystackInitialize_GatewayRejection(t *testing.T) {
	svc := newPaystackFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":false,"message":"Duplicate Transaction Reference"}`))
	})

	_, err := svc.Initialize(context.Background(), PaymentRequest{Amount: 30, Reference: "12345"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate Transaction Reference")
}

func TestPaystackInitialize_HTTPError(t *testing.T) {
	svc := newPaystackFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":false,"message":"Invalid key"}`, http.StatusUnauthorized)
	})

	_, err := svc.Initialize(context.Background(), PaymentRequest{Amount: 30, Reference: "12345"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestPaystackVerify_Success(t *testing.T) {
	svc := newPaystackFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/verify/12345", r.URL.Path)
		require.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","reference":"12345"}}`))
	})

	result, err := svc.Verify(context.Background(), "12345")
	require.NoError(t, err)
	assert.True(t, result.Paid)
	assert.Equal(t, "12345", result.ProviderRef)
}

func TestPaystackVerify_Abandoned(t *testing.T) {
	svc := newPaystackFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"abandoned","reference":"12345"}}`))
	})

	result, err := svc.Verify(context.Background(), "12345")
	require.NoError(t, err)
	assert.False(t, result.Paid)
	assert.Equal(t, "abandoned", result.Status)
}

func TestPaystack_MissingSecretKey(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "")
	svc := NewPaystackService()

	_, err := svc.Initialize(context.Background(), PaymentRequest{Amount: 30, Reference: "12345"})
	assert.Error(t, err)

	_, err = svc.Verify(context.Background(), "12345")
	assert.Error(t, err)
}
