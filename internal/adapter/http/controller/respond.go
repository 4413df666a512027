package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeBusinessError renders a ledger failure using its stable code. The
// code, not the message text, decides the HTTP status.
func writeBusinessError[T any](w http.ResponseWriter, err error) {
	var ledgerErr *domain.Error
	if !errors.As(err, &ledgerErr) {
		writeJSON(w, http.StatusInternalServerError, commons.ErrorResponse[T]("unexpected error"))
		return
	}

	writeJSON(w, statusForCode(ledgerErr.Code), commons.CodedErrorResponse[T](ledgerErr.Code, err.Error()))
}

func statusForCode(code string) int {
	switch code {
	case domain.ErrInvalidAmount.Code, domain.ErrSameAccount.Code:
		return http.StatusBadRequest
	case domain.ErrAccountNotFound.Code:
		return http.StatusNotFound
	case domain.ErrDuplicateAccount.Code,
		domain.ErrAccountInactive.Code,
		domain.ErrInsufficientFunds.Code,
		domain.ErrNonZeroBalance.Code:
		return http.StatusConflict
	case domain.ErrStorage.Code:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
