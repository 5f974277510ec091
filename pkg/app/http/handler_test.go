package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
)

func TestHandleError_ServiceErrorCategories(t *testing.T) {
	tests := []struct {
		err  error
		code int
		body string
	}{
		{apperrors.BadRequestError(nil, "bad"), http.StatusBadRequest, `{"error":"bad","code":400}`},
		{apperrors.ResourceNotFoundError(nil, "missing"), http.StatusNotFound, `{"error":"missing","code":404}`},
		{apperrors.UnavailableError(nil, "busy"), http.StatusServiceUnavailable, `{"error":"busy","code":503}`},
		{apperrors.TimeoutError(nil, "slow"), http.StatusGatewayTimeout, `{"error":"slow","code":504}`},
		{apperrors.GeneralError(errors.New("secret detail")), http.StatusInternalServerError, `{"error":"Internal Server Error","code":500}`},
		{errors.New("plain"), http.StatusInternalServerError, `{"error":"Unexpected Service Error","code":500}`},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := HandleError(func(http.ResponseWriter, *http.Request) error { return tt.err })
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestHandleError_Success(t *testing.T) {
	h := HandleError(func(w http.ResponseWriter, _ *http.Request) error {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return nil
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("ok", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","extra":1}`))
		require.NoError(t, DecodeJSON(r, 64, &p))
		assert.Equal(t, "alice", p.Name)
	})

	t.Run("invalid", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		err := DecodeJSON(r, 64, &p)
		require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
		assert.Contains(t, err.(*apperrors.ServiceError).Message, "invalid JSON")
	})

	t.Run("too large", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 100)+`"}`))
		err := DecodeJSON(r, 64, &p)
		require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
		assert.Equal(t, "request body too large", err.(*apperrors.ServiceError).Message)
	})

	t.Run("exactly at limit", func(t *testing.T) {
		var p payload
		body := `{"name":"bob"}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		require.NoError(t, DecodeJSON(r, int64(len(body)), &p))
		assert.Equal(t, "bob", p.Name)
	})
}
