package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type HistoryEntryResponse struct {
	ID            string `json:"id"`
	AccountNumber int    `json:"accountNumber"`
	OperationType string `json:"operationType"`
	Amount        string `json:"amount"`
	BalanceBefore string `json:"balanceBefore"`
	BalanceAfter  string `json:"balanceAfter"`
	ReferenceID   string `json:"referenceId,omitempty"`
	OccurredAt    string `json:"occurredAt"`
	Description   string `json:"description,omitempty"`
}

type StatementResponse struct {
	Account AccountResponse        `json:"account"`
	Entries []HistoryEntryResponse `json:"entries"`
}

type MaintenanceFeeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type MaintenanceFeeResponse struct {
	AccountsCharged int    `json:"accountsCharged"`
	AccountsSkipped int    `json:"accountsSkipped"`
	FeeAmount       string `json:"feeAmount"`
	TotalCharged    string `json:"totalCharged"`
}

func NewHistoryEntryResponse(entry domain.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:            entry.ID,
		AccountNumber: entry.AccountNumber,
		OperationType: string(entry.OperationType),
		Amount:        entry.Amount.StringFixed(2),
		BalanceBefore: entry.BalanceBefore.StringFixed(2),
		BalanceAfter:  entry.BalanceAfter.StringFixed(2),
		ReferenceID:   entry.ReferenceID,
		OccurredAt:    entry.OccurredAt.Format(time.RFC3339Nano),
		Description:   entry.Description,
	}
}

func NewHistoryEntryResponses(entries []domain.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NewHistoryEntryResponse(entry))
	}
	return out
}
