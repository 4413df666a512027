package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type HolderData struct {
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
	Email string `json:"email"`
}

type OpenAccountRequest struct {
	Number int        `json:"number"`
	Holder HolderData `json:"holder"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if r.Number <= 0 {
		errs = append(errs, "number must be a positive integer")
	}
	if strings.TrimSpace(r.Holder.Name) == "" {
		errs = append(errs, "holder.name is required")
	}
	if !isElevenDigits(strings.TrimSpace(r.Holder.TaxID)) {
		errs = append(errs, "holder.taxId must be exactly 11 digits")
	}

	email := strings.TrimSpace(r.Holder.Email)
	if email == "" || !strings.Contains(email, "@") {
		errs = append(errs, "holder.email must be a valid address")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type MovementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r MovementRequest) Validate() error {
	// Amount sign is a business rule: the ledger raises INVALID_AMOUNT so
	// callers see the stable code rather than a transport-level message.
	if len(strings.TrimSpace(r.Description)) > 500 {
		return errors.New("description must be at most 500 characters")
	}
	return nil
}

type AccountResponse struct {
	Number    int        `json:"number"`
	Balance   string     `json:"balance"`
	Holder    HolderData `json:"holder"`
	Active    bool       `json:"active"`
	CreatedAt string     `json:"createdAt,omitempty"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

type BalanceResponse struct {
	Number  int    `json:"number"`
	Balance string `json:"balance"`
}

type CloseAccountResponse struct {
	Number int    `json:"number"`
	Policy string `json:"policy"`
}

func NewAccountResponse(account domain.Account) AccountResponse {
	response := AccountResponse{
		Number:  account.Number,
		Balance: account.Balance.StringFixed(2),
		Holder: HolderData{
			Name:  account.Holder.Name,
			TaxID: account.Holder.TaxID,
			Email: account.Holder.Email,
		},
		Active: account.Active,
	}
	if !account.CreatedAt.IsZero() {
		response.CreatedAt = account.CreatedAt.Format(time.RFC3339)
	}
	if !account.UpdatedAt.IsZero() {
		response.UpdatedAt = account.UpdatedAt.Format(time.RFC3339)
	}
	return response
}

func NewAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, NewAccountResponse(account))
	}
	return out
}

func isElevenDigits(value string) bool {
	if len(value) != 11 {
		return false
	}
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
