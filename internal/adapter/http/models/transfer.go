package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	FromNumber  int             `json:"fromNumber"`
	ToNumber    int             `json:"toNumber"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if r.FromNumber <= 0 {
		errs = append(errs, "fromNumber must be a positive integer")
	}
	if r.ToNumber <= 0 {
		errs = append(errs, "toNumber must be a positive integer")
	}
	if len(strings.TrimSpace(r.Description)) > 500 {
		errs = append(errs, "description must be at most 500 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	ReferenceID string `json:"referenceId"`
	FromNumber  int    `json:"fromNumber"`
	ToNumber    int    `json:"toNumber"`
	Amount      string `json:"amount"`
	FromBalance string `json:"fromBalance"`
	ToBalance   string `json:"toBalance"`
}
