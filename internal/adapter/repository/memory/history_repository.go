package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type HistoryRepository struct {
	store *Store
}

func NewHistoryRepository(store *Store) *HistoryRepository {
	return &HistoryRepository{store: store}
}

func (r *HistoryRepository) ListByAccount(_ context.Context, number int, from, to *time.Time) ([]domain.HistoryEntry, error) {
	return r.store.snapshotHistory(func(entry domain.HistoryEntry) bool {
		if entry.AccountNumber != number {
			return false
		}
		if from != nil && entry.OccurredAt.Before(*from) {
			return false
		}
		if to != nil && entry.OccurredAt.After(*to) {
			return false
		}
		return true
	}), nil
}

func (r *HistoryRepository) ListByType(_ context.Context, operationType domain.OperationType) ([]domain.HistoryEntry, error) {
	return r.store.snapshotHistory(func(entry domain.HistoryEntry) bool {
		return entry.OperationType == operationType
	}), nil
}

func (r *HistoryRepository) SummarizeBetween(_ context.Context, from, to time.Time) ([]domain.MovementSummary, error) {
	entries := r.store.snapshotHistory(func(entry domain.HistoryEntry) bool {
		return !entry.OccurredAt.Before(from) && !entry.OccurredAt.After(to)
	})

	grouped := make(map[domain.OperationType]*domain.MovementSummary)
	for _, entry := range entries {
		summary, ok := grouped[entry.OperationType]
		if !ok {
			summary = &domain.MovementSummary{OperationType: entry.OperationType, Total: decimal.Zero}
			grouped[entry.OperationType] = summary
		}
		summary.Count++
		summary.Total = summary.Total.Add(entry.Amount)
	}

	out := make([]domain.MovementSummary, 0, len(grouped))
	for _, summary := range grouped {
		out = append(out, *summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OperationType < out[j].OperationType })
	return out, nil
}
