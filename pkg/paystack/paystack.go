// Package paystack is a minimal client for the two Paystack transaction
// endpoints this backend needs: initialize and verify.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

const defaultBaseURL = "https://api.paystack.co"

type Client struct {
	secretKey string
	baseURL   string
	http      *http.Client
}

func New(secretKey string) *Client {
	return &Client{
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithBaseURL is used by tests to point the client at a fake server.
func NewWithBaseURL(secretKey, baseURL string) *Client {
	c := New(secretKey)
	c.baseURL = baseURL
	return c
}

type InitializeResult struct {
	AuthorizationURL string
	Reference        string
}

type VerifyResult struct {
	Paid       bool
	AmountKobo int64
	Email      string
	PaidAt     string
	Reference  string
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize starts a transaction and returns the checkout URL the buyer
// is redirected to.
func (c *Client) Initialize(ctx context.Context, email string, amountKobo int64, callbackURL string) (*InitializeResult, error) {
	body, _ := json.Marshal(map[string]any{
		"email":        email,
		"amount":       amountKobo,
		"callback_url": callbackURL,
	})
	env, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("paystack: decode initialize response: %w", err)
	}
	return &InitializeResult{AuthorizationURL: data.AuthorizationURL, Reference: data.Reference}, nil
}

// Verify checks a transaction reference and reports whether it was paid,
// for how much, and by whom.
func (c *Client) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	if reference == "" {
		return nil, store.NewValidation("payment reference is required")
	}
	env, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	var data struct {
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Reference string `json:"reference"`
		PaidAt    string `json:"paid_at"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("paystack: decode verify response: %w", err)
	}
	return &VerifyResult{
		Paid:       env.Status && data.Status == "success",
		AmountKobo: data.Amount,
		Email:      data.Customer.Email,
		PaidAt:     data.PaidAt,
		Reference:  data.Reference,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body *bytes.Reader) (*envelope, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &store.TransientError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &store.AuthError{Reason: "paystack rejected the secret key"}
	case resp.StatusCode == http.StatusNotFound:
		return nil, store.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &store.TransientError{Err: fmt.Errorf("paystack: status %d", resp.StatusCode)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("paystack: decode response: %w", err)
	}
	if !env.Status && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paystack: %s", env.Message)
	}
	return &env, nil
}
