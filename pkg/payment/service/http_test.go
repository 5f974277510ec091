package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	"github.com/chainsafe/castpay-relayer/pkg/payment"
	"github.com/chainsafe/castpay-relayer/pkg/payment/service/mocks"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
	"github.com/chainsafe/castpay-relayer/pkg/transfer/store"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func newPaymentTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, 1024, zap.NewNop())
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

const validTransferBody = `{
	"sender": "0x1111111111111111111111111111111111111111",
	"recipient": "0x2222222222222222222222222222222222222222",
	"amount": "10.50",
	"nonce": 0,
	"signature": "0xabc"
}`

func TestTransferHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	rec := serve(t, newPaymentTestServer(svc), http.MethodPost, "/api/payments/transfer", "{invalid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errorBody{Error: "invalid JSON", Code: http.StatusBadRequest}, decodeError(t, rec))
}

func TestTransferHTTP_BodyTooLarge_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	body := `{"sender":"` + strings.Repeat("a", 2048) + `"}`
	rec := serve(t, newPaymentTestServer(svc), http.MethodPost, "/api/payments/transfer", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "request body too large", decodeError(t, rec).Error)
}

func TestTransferHTTP_MissingFields_ReturnsBadRequest(t *testing.T) {
	tests := map[string]string{
		"empty":        `{}`,
		"no nonce":     `{"sender":"0x1","recipient":"0x2","amount":"1","signature":"0x3"}`,
		"no signature": `{"sender":"0x1","recipient":"0x2","amount":"1","nonce":1}`,
		"blank amount": `{"sender":"0x1","recipient":"0x2","amount":"","nonce":1,"signature":"0x3"}`,
		"no recipient": `{"sender":"0x1","amount":"1","nonce":1,"signature":"0x3"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			svc := mocks.NewService(t)
			rec := serve(t, newPaymentTestServer(svc), http.MethodPost, "/api/payments/transfer", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "sender, recipient, amount, nonce and signature are required", decodeError(t, rec).Error)
		})
	}
}

func TestTransferHTTP_Accepted(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		SubmitTransfer(mock.Anything, mock.MatchedBy(func(req *payment.TransferRequest) bool {
			return req.Amount == "10.50" && req.Nonce != nil && *req.Nonce == 0
		})).
		Return(&transfer.Acknowledgement{
			ID:      "0xdeadbeef",
			Status:  transfer.StatusSubmitted,
			Message: "Transfer accepted for processing",
		}, nil).
		Once()

	rec := serve(t, newPaymentTestServer(svc), http.MethodPost, "/api/payments/transfer", validTransferBody)

	require.Equal(t, http.StatusOK, rec.Code)
	var ack transfer.Acknowledgement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.Equal(t, "0xdeadbeef", ack.ID)
	assert.Equal(t, transfer.StatusSubmitted, ack.Status)
}

func TestTransferHTTP_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"replay", apperrors.BadRequestError(nil, "nonce already used"), http.StatusBadRequest, "nonce already used"},
		{"busy", apperrors.UnavailableError(nil, "relay busy, please retry"), http.StatusServiceUnavailable, "relay busy, please retry"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Unexpected Service Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			svc.EXPECT().SubmitTransfer(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := serve(t, newPaymentTestServer(svc), http.MethodPost, "/api/payments/transfer", validTransferBody)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, errorBody{Error: tt.message, Code: tt.code}, decodeError(t, rec))
		})
	}
}

func TestStatusHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetTransaction(mock.Anything, "0xknown").
		Return(&transfer.Record{ID: "0xknown", Status: transfer.StatusSuccess}, nil).Once()
	svc.EXPECT().GetTransaction(mock.Anything, "0xmissing").
		Return(nil, apperrors.ResourceNotFoundError(store.ErrNotFound, "transaction not found")).Once()
	h := newPaymentTestServer(svc)

	rec := serve(t, h, http.MethodGet, "/api/payments/status/0xknown", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got transfer.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, transfer.StatusSuccess, got.Status)

	rec = serve(t, h, http.MethodGet, "/api/payments/status/0xmissing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "transaction not found", decodeError(t, rec).Error)
}

func TestTransactionsHTTP_Filters(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		ListTransactions(mock.Anything, store.Filter{
			Sender: "0xabc",
			Status: transfer.StatusFailed,
			Limit:  maxListLimit,
		}).
		Return(&payment.TransactionsResponse{Transactions: []*transfer.Record{}, Count: 0}, nil).
		Once()
	svc.EXPECT().
		ListTransactions(mock.Anything, store.Filter{Limit: 5}).
		Return(&payment.TransactionsResponse{Transactions: []*transfer.Record{}, Count: 0}, nil).
		Once()
	h := newPaymentTestServer(svc)

	rec := serve(t, h, http.MethodGet, "/api/payments/transactions?sender=0xabc&status=failed&limit=500", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodGet, "/api/payments/transactions?limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransactionsHTTP_BadLimit(t *testing.T) {
	svc := mocks.NewService(t)
	h := newPaymentTestServer(svc)

	for _, limit := range []string{"abc", "0", "-3"} {
		rec := serve(t, h, http.MethodGet, "/api/payments/transactions?limit="+limit, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
	}
}

func TestBalanceHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetBalance(mock.Anything, "0xowner").
		Return(&payment.BalanceResponse{Address: "0xowner", Balance: "1.000000", Symbol: "USDC"}, nil).Once()
	svc.EXPECT().GetBalance(mock.Anything, "0xdown").
		Return(nil, apperrors.DependencyError(errors.New("dial"), "failed to read balance")).Once()
	h := newPaymentTestServer(svc)

	rec := serve(t, h, http.MethodGet, "/api/payments/balance/0xowner", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got payment.BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1.000000", got.Balance)

	rec = serve(t, h, http.MethodGet, "/api/payments/balance/0xdown", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestNonceHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetNonce(mock.Anything, "0xowner").
		Return(&payment.NonceResponse{Address: "0xowner", Nonce: 7, Source: payment.NonceSourceMemory}, nil).Once()

	rec := serve(t, newPaymentTestServer(svc), http.MethodGet, "/api/users/nonce/0xowner", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"address":"0xowner","nonce":7,"source":"memory"}`, rec.Body.String())
}
