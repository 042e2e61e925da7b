package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-payments/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient("sk_test_123", 5*time.Second,
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithRetryIntervals([]time.Duration{time.Millisecond, time.Millisecond}),
	)
	require.NoError(t, err)
	return c
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestNewClient_RequiresSecret(t *testing.T) {
	_, err := NewClient("  ", time.Second)
	assert.Error(t, err)
}

func TestClient_InitializeTransaction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body := decodeBody(t, r)
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, float64(500000), body["amount"])
		assert.Equal(t, "order_1_2", body["reference"])
		assert.Equal(t, "NGN", body["currency"])
		assert.Equal(t, map[string]any{"order_id": "1"}, body["metadata"])

		_, _ = io.WriteString(w, `{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/x","access_code":"x","reference":"order_1_2"}}`)
	})

	checkout, err := c.InitializeTransaction(context.Background(), domain.InitializeParams{
		Email:     "ada@example.com",
		Amount:    500000,
		Reference: "order_1_2",
		Currency:  "NGN",
		Metadata:  map[string]string{"order_id": "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/x", checkout.AuthorizationURL)
	assert.Equal(t, "order_1_2", checkout.Reference)
}

func TestClient_CreateTransferRecipient(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transferrecipient", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "nuban", body["type"])
		assert.Equal(t, "0123456789", body["account_number"])
		assert.Equal(t, "044", body["bank_code"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"status":true,"message":"Transfer recipient created successfully","data":{"recipient_code":"RCP_abc"}}`)
	})

	code, err := c.CreateTransferRecipient(context.Background(), domain.RecipientParams{
		Name:          "Ada",
		AccountNumber: "0123456789",
		BankCode:      "044",
		Currency:      "NGN",
	})
	require.NoError(t, err)
	assert.Equal(t, "RCP_abc", code)
}

func TestClient_InitiateTransfer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfer", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "balance", body["source"])
		assert.Equal(t, "RCP_abc", body["recipient"])
		assert.Equal(t, float64(300000), body["amount"])
		_, _ = io.WriteString(w, `{"status":true,"message":"Transfer has been queued","data":{"transfer_code":"TRF_1","reference":"payout_1","status":"pending"}}`)
	})

	result, err := c.InitiateTransfer(context.Background(), domain.TransferParams{
		Amount:        300000,
		RecipientCode: "RCP_abc",
		Reference:     "payout_1",
		Reason:        "Vendor payout 1",
	})
	require.NoError(t, err)
	assert.Equal(t, &domain.TransferResult{TransferCode: "TRF_1", Reference: "payout_1", Status: "pending"}, result)
}

func TestClient_InitiateTransfer_Rejected(t *testing.T) {
	raw := `{"status":false,"message":"Your balance is not enough to fulfil this request","meta":{"nextStep":"Top up"}}`
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, raw)
	})

	_, err := c.InitiateTransfer(context.Background(), domain.TransferParams{Amount: 1, RecipientCode: "RCP", Reference: "r"})
	require.Error(t, err)
	var pe *domain.ProcessorError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusBadRequest, pe.StatusCode)
	assert.Equal(t, "Your balance is not enough to fulfil this request", pe.Message)
	assert.JSONEq(t, raw, string(pe.Raw))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_InitiateTransfer_ServerErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `<html>bad gateway</html>`)
	})

	_, err := c.InitiateTransfer(context.Background(), domain.TransferParams{Amount: 1, RecipientCode: "RCP", Reference: "r"})
	require.Error(t, err)
	var pe *domain.ProcessorError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusBadGateway, pe.StatusCode)
	assert.Equal(t, "Paystack error (502)", pe.Message)
	assert.Equal(t, "<html>bad gateway</html>", string(pe.Raw))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_StatusFalseIsRefusal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":false,"message":"Invalid key"}`)
	})

	_, err := c.InitializeTransaction(context.Background(), domain.InitializeParams{Email: "a@b.c", Amount: 1, Reference: "r"})
	var pe *domain.ProcessorError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusUnprocessableEntity, pe.StatusCode)
	assert.Equal(t, "Invalid key", pe.Message)
}

func TestClient_ResolveAccount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bank/resolve", r.URL.Path)
		assert.Equal(t, "0123456789", r.URL.Query().Get("account_number"))
		assert.Equal(t, "044", r.URL.Query().Get("bank_code"))
		_, _ = io.WriteString(w, `{"status":true,"message":"Account number resolved","data":{"account_number":"0123456789","account_name":"ADA LOVELACE","bank_id":1}}`)
	})

	resolved, err := c.ResolveAccount(context.Background(), "0123456789", "044")
	require.NoError(t, err)
	assert.Equal(t, "ADA LOVELACE", resolved.AccountName)
}

func TestClient_ListBanks_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "NGN", r.URL.Query().Get("currency"))
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"status":true,"message":"Banks retrieved","data":[{"name":"Access Bank","code":"044","active":true},{"name":"Closed Bank","code":"999","active":false},{"name":"GTBank","code":"058"}]}`)
	})

	banks, err := c.ListBanks(context.Background(), "NGN")
	require.NoError(t, err)
	assert.Equal(t, []domain.Bank{{Name: "Access Bank", Code: "044"}, {Name: "GTBank", Code: "058"}}, banks)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_ListBanks_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"status":false,"message":"Invalid key"}`)
	})

	_, err := c.ListBanks(context.Background(), "NGN")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

type failingDoer struct{ calls int }

func (f *failingDoer) Do(*http.Request) (*http.Response, error) {
	f.calls++
	return nil, errors.New("dial tcp: connection refused")
}

func TestClient_TransportErrorIsPlain(t *testing.T) {
	doer := &failingDoer{}
	c, err := NewClient("sk_test", time.Second, WithHTTPClient(doer), WithRetryIntervals(nil))
	require.NoError(t, err)

	_, err = c.InitiateTransfer(context.Background(), domain.TransferParams{Amount: 1})
	require.Error(t, err)
	var pe *domain.ProcessorError
	assert.False(t, errors.As(err, &pe))
	assert.Equal(t, 1, doer.calls)
}
