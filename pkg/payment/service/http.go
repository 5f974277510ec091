package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	apphttp "github.com/chainsafe/castpay-relayer/pkg/app/http"
	"github.com/chainsafe/castpay-relayer/pkg/payment"
	"github.com/chainsafe/castpay-relayer/pkg/transfer"
	"github.com/chainsafe/castpay-relayer/pkg/transfer/store"
)

const maxListLimit = 100

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service      Service
	validate     *validator.Validate
	maxBodyBytes int64
	logger       *zap.Logger
}

// RegisterRoutes mounts the payment and nonce endpoints on r
func RegisterRoutes(r chi.Router, service Service, maxBodyBytes int64, logger *zap.Logger) {
	h := &HTTP{
		service:      service,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}

	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/transfer", apphttp.HandleError(h.submitTransfer))
		r.Get("/status/{id}", apphttp.HandleError(h.getStatus))
		r.Get("/transactions", apphttp.HandleError(h.listTransactions))
		r.Get("/balance/{address}", apphttp.HandleError(h.getBalance))
	})
	r.Get("/api/users/nonce/{address}", apphttp.HandleError(h.getNonce))
}

func (h *HTTP) submitTransfer(w http.ResponseWriter, r *http.Request) error {
	var req payment.TransferRequest
	if err := apphttp.DecodeJSON(r, h.maxBodyBytes, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(&req); err != nil {
		return apperrors.BadRequestError(err, "sender, recipient, amount, nonce and signature are required")
	}

	ack, err := h.service.SubmitTransfer(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, ack)
	return nil
}

func (h *HTTP) getStatus(w http.ResponseWriter, r *http.Request) error {
	rec, err := h.service.GetTransaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, rec)
	return nil
}

func (h *HTTP) listTransactions(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	f := store.Filter{
		Sender: q.Get("sender"),
		Status: transfer.Status(q.Get("status")),
		Limit:  maxListLimit,
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return apperrors.BadRequestError(err, "limit must be a positive integer")
		}
		f.Limit = min(limit, maxListLimit)
	}

	resp, err := h.service.ListTransactions(r.Context(), f)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getBalance(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetBalance(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		if apperrors.IsInternalError(err) {
			h.logger.Error("Balance lookup failed", zap.Error(err))
		}
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getNonce(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetNonce(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
