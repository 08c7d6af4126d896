package http

import (
	"errors"
	"net/http"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/logging"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/pricing"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
	"github.com/gin-gonic/gin"
)

// writeError maps the closed error set to transport. Detail strings are
// stable; raw internal error text goes to the server log only.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	detail := "internal error"

	var perr *usecase.ProcessorError
	switch {
	case errors.Is(err, pricing.ErrBelowMinimum):
		status, code, detail = http.StatusBadRequest, "below_minimum", "Order total must be at least £0.50"
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidItem),
		errors.Is(err, domain.ErrInvalidCustomer),
		errors.Is(err, domain.ErrInvalidEmail):
		status, code, detail = http.StatusBadRequest, "validation_error", err.Error()
	case errors.Is(err, usecase.ErrNotFound):
		status, code, detail = http.StatusNotFound, "not_found", "Order not found"
	case errors.Is(err, usecase.ErrAlreadyConfirmed):
		status, code, detail = http.StatusConflict, "already_confirmed", "Order already confirmed"
	case errors.Is(err, usecase.ErrPaymentUnverified):
		status, code, detail = http.StatusPaymentRequired, "payment_unverified", "Payment has not been confirmed by the processor"
	case errors.As(err, &perr):
		// the processor's user-facing message is safe to relay
		status, code, detail = http.StatusBadRequest, "processor_error", perr.Error()
	}

	if status >= http.StatusInternalServerError {
		logging.From(c).Error("request failed", "err", err)
	}
	c.JSON(status, gin.H{"code": code, "detail": detail})
}

func writeBindError(c *gin.Context, err error) {
	logging.From(c).Warn("rejected payload", "err", err)
	c.JSON(http.StatusBadRequest, gin.H{"code": "validation_error", "detail": "malformed request body"})
}
