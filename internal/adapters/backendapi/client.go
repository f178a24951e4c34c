// Package backendapi talks to the shop REST backend that owns products, parts and tickets.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/core/ports/gateways"
)

const maxErrorBody = 64 << 10

// Client is a thin JSON client. Every call is a single attempt; failures are not retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend rooted at baseURL, e.g. http://localhost:8000/api.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var (
	_ gateways.CatalogGateway = (*Client)(nil)
	_ gateways.TicketGateway  = (*Client)(nil)
)

// productPayload is the create body of /products. The backend takes image_url and a numeric price.
type productPayload struct {
	Name     string      `json:"name"`
	Brand    string      `json:"brand"`
	Stock    int64       `json:"stock"`
	Price    json.Number `json:"price"`
	ImageURL *string     `json:"image_url"`
}

type partPayload struct {
	Name             string      `json:"name"`
	SKU              string      `json:"sku"`
	Stock            int64       `json:"stock"`
	Price            json.Number `json:"price"`
	CompatibleModels []string    `json:"compatible_models"`
}

// ticketPayload is the create body of /tickets. Amounts go out as JSON numbers, like prices.
type ticketPayload struct {
	CustomerName  string               `json:"customer_name"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Items         []domain.TicketItem  `json:"items"`
	ExchangeRate  json.Number          `json:"exchange_rate"`
	AmountUSD     json.Number          `json:"amount_usd"`
	AmountVES     json.Number          `json:"amount_ves"`
}

func newTicketPayload(req domain.TicketRequest) ticketPayload {
	items := req.Items
	if items == nil {
		items = []domain.TicketItem{}
	}
	return ticketPayload{
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		Items:         items,
		ExchangeRate:  json.Number(req.ExchangeRate.String()),
		AmountUSD:     json.Number(req.AmountUSD.String()),
		AmountVES:     json.Number(req.AmountVES.String()),
	}
}

func (c *Client) CreateProduct(ctx context.Context, authToken string, product domain.Product) error {
	body := productPayload{
		Name:  product.Name,
		Brand: product.Brand,
		Stock: product.Stock,
		Price: json.Number(product.Price.String()),
	}
	if product.ImageURL != "" {
		body.ImageURL = &product.ImageURL
	}
	return c.do(ctx, http.MethodPost, "/products", authToken, body, nil)
}

func (c *Client) CreatePart(ctx context.Context, authToken string, part domain.Part) error {
	models := part.CompatibleModels
	if models == nil {
		models = []string{}
	}
	body := partPayload{
		Name:             part.Name,
		SKU:              part.SKU,
		Stock:            part.Stock,
		Price:            json.Number(part.Price.String()),
		CompatibleModels: models,
	}
	return c.do(ctx, http.MethodPost, "/parts", authToken, body, nil)
}

func (c *Client) CreateTicket(ctx context.Context, authToken string, req domain.TicketRequest) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := c.do(ctx, http.MethodPost, "/tickets", authToken, newTicketPayload(req), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) do(ctx context.Context, method, path, authToken string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", apperrors.ErrUpstream, errorDetail(resp))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", apperrors.ErrUpstream, path, err)
	}
	return nil
}

// errorDetail extracts the {"detail": "..."} message of a failed call.
func errorDetail(resp *http.Response) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err := json.Unmarshal(data, &body); err == nil && len(body.Detail) > 0 {
		var s string
		if json.Unmarshal(body.Detail, &s) == nil && s != "" {
			return s
		}
		return string(body.Detail)
	}
	return fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
}
