package repo_interfaces

import (
	"context"
	"time"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

// HistoryRepository reads the append-only operation log. Appends happen only
// through AccountRepository.ApplyPosting so they commit with the balance
// they explain.
type HistoryRepository interface {
	// ListByAccount returns entries newest first, ties broken by insertion
	// order. Nil bounds mean unbounded; the upper bound is inclusive.
	ListByAccount(ctx context.Context, number int, from, to *time.Time) ([]domain.HistoryEntry, error)
	ListByType(ctx context.Context, operationType domain.OperationType) ([]domain.HistoryEntry, error)
	SummarizeBetween(ctx context.Context, from, to time.Time) ([]domain.MovementSummary, error)
}
