package backendapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_SendsBackendShape(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", time.Second)
	err := c.CreateProduct(context.Background(), "tok", domain.Product{
		Name:     "iPhone 13",
		Brand:    "Apple",
		Stock:    15,
		Price:    decimal.RequireFromString("999.99"),
		ImageURL: "https://example.com/i.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, "iPhone 13", got["name"])
	assert.Equal(t, 999.99, got["price"])
	assert.Equal(t, float64(15), got["stock"])
	assert.Equal(t, "https://example.com/i.jpg", got["image_url"])
}

func TestCreatePart_EmptyModelsIsArray(t *testing.T) {
	var raw map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.NoError(t, c.CreatePart(context.Background(), "", domain.Part{Name: "Batería", SKU: "BAT-1", Price: decimal.NewFromInt(45)}))
	assert.JSONEq(t, `[]`, string(raw["compatible_models"]))
}

func TestCreateTicket_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.TicketRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.PaymentPending, req.PaymentStatus)
		assert.Equal(t, "Juan Perez", req.CustomerName)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"T-0001","date":"2026-10-17T10:00:00.123456","customer_name":"Juan Perez",
			"payment_method":"mixed","payment_status":"Pending","subtotal":100,"tax":0,"total":100,
			"exchange_rate":40,"amount_usd":30,"amount_ves":null,"items":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ticket, err := c.CreateTicket(context.Background(), "tok", domain.TicketRequest{
		CustomerName:  "Juan Perez",
		PaymentMethod: domain.PaymentMixed,
		PaymentStatus: domain.PaymentPending,
		Items:         []domain.TicketItem{{ProductID: 1, Quantity: 1}},
		ExchangeRate:  decimal.NewFromInt(40),
		AmountUSD:     decimal.NewFromInt(30),
		AmountVES:     decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.Equal(t, "T-0001", ticket.ID)
	assert.True(t, ticket.Total.Equal(decimal.NewFromInt(100)))
}

func TestCreateTicket_SendsNumericAmounts(t *testing.T) {
	var raw map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"id":"T-0002"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).CreateTicket(context.Background(), "tok", domain.TicketRequest{
		CustomerName:  "Cliente General",
		PaymentMethod: domain.PaymentCash,
		PaymentStatus: domain.PaymentPaid,
		ExchangeRate:  decimal.RequireFromString("36.5"),
		AmountUSD:     decimal.RequireFromString("12.25"),
		AmountVES:     decimal.Zero,
	})
	require.NoError(t, err)

	assert.Equal(t, "36.5", string(raw["exchange_rate"]))
	assert.Equal(t, "12.25", string(raw["amount_usd"]))
	assert.Equal(t, "0", string(raw["amount_ves"]))
	assert.Equal(t, "[]", string(raw["items"]))
}

func TestErrorDetailIsSurfaced(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail string", http.StatusBadRequest, `{"detail":"Product with this name already exists"}`, "Product with this name already exists"},
		{"detail list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"}]}`, `[{"msg":"field required"}]`},
		{"no body", http.StatusInternalServerError, ``, "HTTP error! status: 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, time.Second).CreateProduct(context.Background(), "", domain.Product{Name: "x"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrUpstream))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTransportFailureIsUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, time.Second).CreatePart(context.Background(), "", domain.Part{})
	assert.True(t, errors.Is(err, apperrors.ErrUpstream))
}
