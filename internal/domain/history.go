package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationType string

const (
	OperationOpen        OperationType = "OPEN"
	OperationWithdraw    OperationType = "WITHDRAW"
	OperationDeposit     OperationType = "DEPOSIT"
	OperationTransferOut OperationType = "TRANSFER_OUT"
	OperationTransferIn  OperationType = "TRANSFER_IN"
	OperationClose       OperationType = "CLOSE"
)

func ParseOperationType(raw string) (OperationType, bool) {
	switch OperationType(raw) {
	case OperationOpen, OperationWithdraw, OperationDeposit,
		OperationTransferOut, OperationTransferIn, OperationClose:
		return OperationType(raw), true
	}
	return "", false
}

// HistoryEntry is one immutable record of a single applied operation.
// Entries are append-only; the two legs of a transfer share a ReferenceID.
type HistoryEntry struct {
	ID            string
	AccountNumber int
	OperationType OperationType
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	ReferenceID   string
	OccurredAt    time.Time
	Description   string
}

// MovementSummary aggregates applied operations of one type within a range.
type MovementSummary struct {
	OperationType OperationType
	Count         int64
	Total         decimal.Decimal
}
