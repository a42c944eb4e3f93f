package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// PaymentRequest carries everything the gateway needs to open a
// payment session for one checkout attempt.
type PaymentRequest struct {
	Amount        float64
	Reference     string
	CustomerName  string
	CustomerPhone string
}

type PaymentSession struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type PaymentResult struct {
	Paid        bool
	ProviderRef string
	Status      string
}

// PaymentGateway is the external payment capability. Initialize opens
// a session the customer completes on their own time; Verify asks the
// provider for ground truth about a reference.
type PaymentGateway interface {
	Initialize(ctx context.Context, req PaymentRequest) (*PaymentSession, error)
	Verify(ctx context.Context, reference string) (*PaymentResult, error)
}

const defaultPaystackBaseURL = "https://api.paystack.co"

type PaystackService struct {
	client    *resty.Client
	secretKey string
	email     string
}

func NewPaystackService() *PaystackService {
	baseURL := os.Getenv("PAYSTACK_BASE_URL")
	if baseURL == "" {
		baseURL = defaultPaystackBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)

	return &PaystackService{
		client:    client,
		secretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		email:     os.Getenv("ORDERS_EMAIL"),
	}
}

func (s *PaystackService) Initialize(ctx context.Context, req PaymentRequest) (*PaymentSession, error) {
	if s.secretKey == "" {
		return nil, fmt.Errorf("paystack secret key is not set")
	}

	body := map[string]any{
		"email":     s.email,
		"amount":    int64(math.Round(req.Amount * 100)),
		"currency":  "GHS",
		"reference": req.Reference,
		"metadata": map[string]any{
			"custom_fields": []map[string]string{
				{
					"display_name":  "Customer Name",
					"variable_name": "customer_name",
					"value":         req.CustomerName,
				},
				{
					"display_name":  "Phone Number",
					"variable_name": "mobile_number",
					"value":         req.CustomerPhone,
				},
			},
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.secretKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post("/transaction/initialize")

	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("paystack initialize failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			AuthorizationURL string `json:"authorization_url"`
			AccessCode       string `json:"access_code"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, fmt.Errorf("failed to parse initialize response: %w", err)
	}
	if !response.Status || response.Data.AuthorizationURL == "" {
		return nil, fmt.Errorf("paystack rejected transaction: %s", response.Message)
	}

	return &PaymentSession{
		AuthorizationURL: response.Data.AuthorizationURL,
		AccessCode:       response.Data.AccessCode,
		Reference:        response.Data.Reference,
	}, nil
}

func (s *PaystackService) Verify(ctx context.Context, reference string) (*PaymentResult, error) {
	if s.secretKey == "" {
		return nil, fmt.Errorf("paystack secret key is not set")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.secretKey).
		SetHeader("Accept", "application/json").
		Get("/transaction/verify/" + reference)

	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("paystack verify failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Status    string `json:"status"`
			Reference string `json:"reference"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, fmt.Errorf("failed to parse verify response: %w", err)
	}
	if !response.Status {
		return nil, fmt.Errorf("paystack verify rejected: %s", response.Message)
	}

	return &PaymentResult{
		Paid:        response.Data.Status == "success",
		ProviderRef: response.Data.Reference,
		Status:      response.Data.Status,
	}, nil
}
