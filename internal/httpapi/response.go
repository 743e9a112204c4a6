package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"checkout-be/internal/logger"
	"checkout-be/internal/order"
	"checkout-be/internal/payment"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeFailure(w http.ResponseWriter, status int, message, detail string) {
	body := map[string]interface{}{
		"success": false,
		"message": message,
	}
	if detail != "" {
		body["error"] = detail
	}
	writeJSON(w, status, body)
}

// validationErrs are the malformed-input failures that are safe to echo
// back with a 400.
var validationErrs = []error{
	order.ErrMissingFields,
	order.ErrInvalidAmount,
	order.ErrUnsupportedCurrency,
	payment.ErrMissingFields,
	payment.ErrInvalidIDFormat,
}

func isValidationErr(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// writeError maps a service error onto the response taxonomy: validation
// and structured gateway rejections are 400, everything else is a 500
// whose detail is suppressed outside development mode.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if isValidationErr(err) {
		writeFailure(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	var gwErr *payment.GatewayError
	if errors.As(err, &gwErr) {
		writeFailure(w, http.StatusBadRequest, gwErr.Description, gwErr.Code)
		return
	}

	logger.L().Error("Internal error serving request", zap.Error(err))

	detail := ""
	if h.DevMode {
		detail = err.Error()
	}
	writeFailure(w, http.StatusInternalServerError, "Internal server error", detail)
}
