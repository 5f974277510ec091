package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/castpay-relayer/pkg/app/errors"
	apphttp "github.com/chainsafe/castpay-relayer/pkg/app/http"
	"github.com/chainsafe/castpay-relayer/pkg/auth"
	"github.com/chainsafe/castpay-relayer/pkg/paymaster"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service      Service
	validate     *validator.Validate
	maxBodyBytes int64
	logger       *zap.Logger
}

// RegisterRoutes mounts /api/paymaster. Reads are public; deposit and
// register spend relay funds and sit behind the operator token check.
func RegisterRoutes(
	r chi.Router,
	service Service,
	operators *auth.OperatorValidator,
	maxBodyBytes int64,
	logger *zap.Logger,
) {
	h := &HTTP{
		service:      service,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}

	r.Route("/api/paymaster", func(r chi.Router) {
		r.Get("/status", apphttp.HandleError(h.getStatus))
		r.Get("/balance", apphttp.HandleError(h.getBalance))

		r.Group(func(r chi.Router) {
			r.Use(operators.RequireOperator)
			r.Post("/deposit", apphttp.HandleError(h.deposit))
			r.Post("/register", apphttp.HandleError(h.register))
		})
	})
}

func (h *HTTP) getStatus(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetStatus(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getBalance(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.GetBalance(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) deposit(w http.ResponseWriter, r *http.Request) error {
	var req paymaster.DepositRequest
	if err := apphttp.DecodeJSON(r, h.maxBodyBytes, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(&req); err != nil {
		return apperrors.BadRequestError(err, "amount is required")
	}

	h.logger.Info("Paymaster deposit requested",
		zap.String("operator", operator(r)),
		zap.String("amount", req.Amount))

	resp, err := h.service.Deposit(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	h.logger.Info("Paymaster registration requested",
		zap.String("operator", operator(r)))

	resp, err := h.service.RegisterUser(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func operator(r *http.Request) string {
	sub, _ := auth.OperatorFromContext(r.Context())
	return sub
}
