// Package paystack is the Paystack implementation of ports.PaymentProcessor.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://api.paystack.co"

	responseReadLimit int64 = 1 << 20
)

var errSecretRequired = errors.New("paystack secret key is required")

// readRetryIntervals are the waits between attempts of idempotent lookups.
// Money-moving calls are never retried.
var readRetryIntervals = []time.Duration{
	200 * time.Millisecond,
	1 * time.Second,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Paystack REST API.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	secret     string
	retries    []time.Duration
	log        zerolog.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = strings.TrimRight(trimmed, "/")
		}
	}
}

// WithRetryIntervals overrides the waits between lookup attempts.
func WithRetryIntervals(intervals []time.Duration) Option {
	return func(c *Client) {
		c.retries = intervals
	}
}

// WithLogger attaches a logger for retry diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient builds a Paystack client for the given secret key. timeout
// bounds every HTTP call of the default client.
func NewClient(secret string, timeout time.Duration, opts ...Option) (*Client, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errSecretRequired
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    DefaultBaseURL,
		secret:     secret,
		retries:    readRetryIntervals,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// envelope is the common shape of every Paystack response.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) InitializeTransaction(ctx context.Context, params domain.InitializeParams) (*domain.Checkout, error) {
	body := map[string]any{
		"email":     params.Email,
		"amount":    params.Amount,
		"reference": params.Reference,
	}
	if params.Currency != "" {
		body["currency"] = params.Currency
	}
	if params.CallbackURL != "" {
		body["callback_url"] = params.CallbackURL
	}
	if len(params.Metadata) > 0 {
		body["metadata"] = params.Metadata
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := c.call(ctx, "initialize", http.MethodPost, "/transaction/initialize", nil, body, &data); err != nil {
		return nil, err
	}
	if data.Reference == "" {
		data.Reference = params.Reference
	}
	return &domain.Checkout{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (c *Client) CreateTransferRecipient(ctx context.Context, params domain.RecipientParams) (string, error) {
	body := map[string]any{
		"type":           "nuban",
		"name":           params.Name,
		"account_number": params.AccountNumber,
		"bank_code":      params.BankCode,
		"currency":       params.Currency,
	}
	if len(params.Metadata) > 0 {
		body["metadata"] = params.Metadata
	}

	var data struct {
		RecipientCode string `json:"recipient_code"`
	}
	if err := c.call(ctx, "create_recipient", http.MethodPost, "/transferrecipient", nil, body, &data); err != nil {
		return "", err
	}
	return data.RecipientCode, nil
}

func (c *Client) InitiateTransfer(ctx context.Context, params domain.TransferParams) (*domain.TransferResult, error) {
	body := map[string]any{
		"source":    "balance",
		"amount":    params.Amount,
		"recipient": params.RecipientCode,
		"reference": params.Reference,
		"reason":    params.Reason,
	}

	var data struct {
		TransferCode string `json:"transfer_code"`
		Reference    string `json:"reference"`
		Status       string `json:"status"`
	}
	if err := c.call(ctx, "transfer", http.MethodPost, "/transfer", nil, body, &data); err != nil {
		return nil, err
	}
	return &domain.TransferResult{
		TransferCode: data.TransferCode,
		Reference:    data.Reference,
		Status:       data.Status,
	}, nil
}

func (c *Client) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.ResolvedAccount, error) {
	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("bank_code", bankCode)

	var data struct {
		AccountName   string `json:"account_name"`
		AccountNumber string `json:"account_number"`
	}
	if err := c.read(ctx, "resolve_account", "/bank/resolve", query, &data); err != nil {
		return nil, err
	}
	return &domain.ResolvedAccount{AccountName: data.AccountName, AccountNumber: data.AccountNumber}, nil
}

func (c *Client) ListBanks(ctx context.Context, currency string) ([]domain.Bank, error) {
	query := url.Values{}
	if currency != "" {
		query.Set("currency", currency)
	}

	var data []struct {
		Name   string `json:"name"`
		Code   string `json:"code"`
		Active *bool  `json:"active"`
	}
	if err := c.read(ctx, "list_banks", "/bank", query, &data); err != nil {
		return nil, err
	}

	banks := make([]domain.Bank, 0, len(data))
	for _, b := range data {
		if b.Active != nil && !*b.Active {
			continue
		}
		banks = append(banks, domain.Bank{Name: b.Name, Code: b.Code})
	}
	return banks, nil
}

// read performs an idempotent GET, retrying transport failures and 5xx
// answers.
func (c *Client) read(ctx context.Context, op, path string, query url.Values, out any) error {
	err := c.call(ctx, op, http.MethodGet, path, query, nil, out)
	for attempt, wait := range c.retries {
		if err == nil || !retryable(err) {
			return err
		}
		c.log.Warn().Err(err).Str("operation", op).Int("attempt", attempt+1).Dur("next_retry_in", wait).Msg("paystack lookup failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		err = c.call(ctx, op, http.MethodGet, path, query, nil, out)
	}
	return err
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pe *domain.ProcessorError
	if errors.As(err, &pe) {
		return pe.StatusCode >= 500
	}
	return true
}

// call sends one request and decodes the envelope's data into out.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("paystack %s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("paystack %s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack %s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, responseReadLimit))
	if err != nil {
		return fmt.Errorf("paystack %s: read response: %w", op, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = fmt.Sprintf("Paystack error (%d)", resp.StatusCode)
		}
		return &domain.ProcessorError{Operation: op, StatusCode: resp.StatusCode, Message: msg, Raw: raw}
	}
	if decodeErr != nil {
		// A 2xx we cannot read leaves the outcome unknown.
		return &domain.ProcessorError{
			Operation:  op,
			StatusCode: http.StatusBadGateway,
			Message:    "Unreadable Paystack response",
			Raw:        raw,
		}
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "Paystack declined the request"
		}
		// Reported as a refusal: Paystack answered and said no.
		return &domain.ProcessorError{Operation: op, StatusCode: http.StatusUnprocessableEntity, Message: msg, Raw: raw}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &domain.ProcessorError{
				Operation:  op,
				StatusCode: http.StatusBadGateway,
				Message:    "Unexpected Paystack response data",
				Raw:        raw,
			}
		}
	}
	return nil
}
