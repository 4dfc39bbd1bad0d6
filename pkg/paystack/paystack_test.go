package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

func TestVerifySuccessfulTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/ref_abc" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data": map[string]any{
				"status":    "success",
				"amount":    50000,
				"reference": "ref_abc",
				"paid_at":   "2025-03-01T10:00:00Z",
				"customer":  map[string]any{"email": "buyer@example.com"},
			},
		})
	}))
	defer srv.Close()

	res, err := NewWithBaseURL("sk_test", srv.URL).Verify(context.Background(), "ref_abc")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !res.Paid || res.AmountKobo != 50000 || res.Email != "buyer@example.com" {
		t.Fatalf("result = %+v", res)
	}
}

func TestVerifyFailedTransactionIsNotPaid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data":   map[string]any{"status": "failed", "amount": 50000},
		})
	}))
	defer srv.Close()

	res, err := NewWithBaseURL("sk_test", srv.URL).Verify(context.Background(), "ref_abc")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if res.Paid {
		t.Fatal("failed transaction reported as paid")
	}
}

func TestVerifyErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"unknown reference", http.StatusNotFound, func(e error) bool { return errors.Is(e, store.ErrNotFound) }},
		{"bad secret key", http.StatusUnauthorized, func(e error) bool {
			var aerr *store.AuthError
			return errors.As(e, &aerr)
		}},
		{"server error", http.StatusBadGateway, store.IsTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()
			_, err := NewWithBaseURL("sk_test", srv.URL).Verify(context.Background(), "ref_abc")
			if !tt.check(err) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestVerifyEmptyReference(t *testing.T) {
	var verr *store.ValidationError
	_, err := New("sk_test").Verify(context.Background(), "")
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestInitialize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["amount"] != float64(50000) {
			t.Errorf("amount = %v", body["amount"])
		}
		if body["callback_url"] != "https://gplsmarthub.com/marketplace/new" {
			t.Errorf("callback_url = %v", body["callback_url"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": true,
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc",
				"reference":         "ref_new",
			},
		})
	}))
	defer srv.Close()

	res, err := NewWithBaseURL("sk_test", srv.URL).
		Initialize(context.Background(), "buyer@example.com", 50000, "https://gplsmarthub.com/marketplace/new")
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if res.AuthorizationURL != "https://checkout.paystack.com/abc" || res.Reference != "ref_new" {
		t.Fatalf("result = %+v", res)
	}
}
