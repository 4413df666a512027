package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

const historyColumns = `
id,
account_number,
operation_type,
amount,
balance_before,
balance_after,
COALESCE(reference_id::text, ''),
occurred_at,
description`

func (r *HistoryRepository) ListByAccount(ctx context.Context, number int, from, to *time.Time) ([]domain.HistoryEntry, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM account_history
WHERE account_number = $1
  AND ($2::timestamptz IS NULL OR occurred_at >= $2)
  AND ($3::timestamptz IS NULL OR occurred_at <= $3)
ORDER BY occurred_at DESC, seq DESC`, historyColumns)

	rows, err := r.db.QueryContext(ctx, query, number, nullableTime(from), nullableTime(to))
	if err != nil {
		return nil, fmt.Errorf("list history for account %d: %w", number, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *HistoryRepository) ListByType(ctx context.Context, operationType domain.OperationType) ([]domain.HistoryEntry, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM account_history
WHERE operation_type = $1
ORDER BY occurred_at DESC, seq DESC`, historyColumns)

	rows, err := r.db.QueryContext(ctx, query, operationType)
	if err != nil {
		return nil, fmt.Errorf("list history by type %s: %w", operationType, err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (r *HistoryRepository) SummarizeBetween(ctx context.Context, from, to time.Time) ([]domain.MovementSummary, error) {
	const query = `
SELECT operation_type, COUNT(1), COALESCE(SUM(amount), 0)
FROM account_history
WHERE occurred_at >= $1 AND occurred_at <= $2
GROUP BY operation_type
ORDER BY operation_type`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("summarize history: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.MovementSummary, 0)
	for rows.Next() {
		var summary domain.MovementSummary
		if err := rows.Scan(&summary.OperationType, &summary.Count, &summary.Total); err != nil {
			return nil, fmt.Errorf("scan movement summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movement summaries: %w", err)
	}

	return summaries, nil
}

func collectEntries(rows *sql.Rows) ([]domain.HistoryEntry, error) {
	entries := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var entry domain.HistoryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.AccountNumber,
			&entry.OperationType,
			&entry.Amount,
			&entry.BalanceBefore,
			&entry.BalanceAfter,
			&entry.ReferenceID,
			&entry.OccurredAt,
			&entry.Description,
		); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history entries: %w", err)
	}

	return entries, nil
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}
