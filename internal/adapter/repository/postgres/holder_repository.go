package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type HolderRepository struct {
	db *sql.DB
}

func NewHolderRepository(db *sql.DB) *HolderRepository {
	return &HolderRepository{db: db}
}

func (r *HolderRepository) GetByTaxID(ctx context.Context, taxID string) (domain.Holder, error) {
	const query = `
SELECT id, name, tax_id, email, created_at
FROM holders
WHERE tax_id = $1`

	var holder domain.Holder
	if err := r.db.QueryRowContext(ctx, query, taxID).Scan(
		&holder.ID,
		&holder.Name,
		&holder.TaxID,
		&holder.Email,
		&holder.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Holder{}, commons.ErrRecordNotFound
		}
		return domain.Holder{}, fmt.Errorf("get holder by tax id: %w", err)
	}

	return holder, nil
}

// Create inserts the holder. Two callers racing on the same tax id are
// resolved by the unique index: the loser re-reads the winner's record.
func (r *HolderRepository) Create(ctx context.Context, holder domain.Holder) (domain.Holder, error) {
	const query = `
INSERT INTO holders (name, tax_id, email)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, holder.Name, holder.TaxID, holder.Email).Scan(&holder.ID, &holder.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return r.GetByTaxID(ctx, holder.TaxID)
		}
		return domain.Holder{}, fmt.Errorf("create holder: %w", err)
	}

	return holder, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
