package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `
a.number,
a.balance,
a.active,
a.created_at,
a.updated_at,
h.id,
h.name,
h.tax_id,
h.email,
h.created_at`

func (r *AccountRepository) GetByNumber(ctx context.Context, number int) (domain.Account, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM accounts a
JOIN holders h ON h.id = a.holder_id
WHERE a.number = $1`, accountColumns)

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, commons.ErrRecordNotFound
		}
		return domain.Account{}, fmt.Errorf("get account %d: %w", number, err)
	}

	return account, nil
}

func (r *AccountRepository) Exists(ctx context.Context, number int) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM accounts WHERE number = $1`, number).Scan(&count); err != nil {
		return false, fmt.Errorf("check account %d exists: %w", number, err)
	}

	return count > 0, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM accounts a
JOIN holders h ON h.id = a.holder_id
ORDER BY a.number`, accountColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return accounts, nil
}

// ApplyPosting commits the balance writes, the history appends and any hard
// removals inside one transaction. A failure anywhere rolls the whole unit
// back, which is what lets the ledger promise balances are untouched on
// storage errors.
func (r *AccountRepository) ApplyPosting(ctx context.Context, posting domain.Posting) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin posting tx: %w", err)
	}

	if err := applyPostingTx(ctx, tx, posting); err != nil {
		_ = tx.Rollback()
		logger.Error("account repository posting rolled back", err, logger.Fields{
			"accounts": len(posting.Accounts),
			"entries":  len(posting.Entries),
		})
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit posting tx: %w", err)
	}

	return nil
}

func applyPostingTx(ctx context.Context, tx *sql.Tx, posting domain.Posting) error {
	const upsert = `
INSERT INTO accounts (number, balance, holder_id, active)
VALUES ($1, $2, $3, $4)
ON CONFLICT (number) DO UPDATE
SET balance = EXCLUDED.balance,
    active = EXCLUDED.active,
    updated_at = NOW()`

	for _, account := range posting.Accounts {
		if _, err := tx.ExecContext(ctx, upsert, account.Number, account.Balance, account.Holder.ID, account.Active); err != nil {
			return fmt.Errorf("upsert account %d: %w", account.Number, err)
		}
	}

	const insertEntry = `
INSERT INTO account_history (
	id,
	account_number,
	operation_type,
	amount,
	balance_before,
	balance_after,
	reference_id,
	occurred_at,
	description
) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`

	for _, entry := range posting.Entries {
		if _, err := tx.ExecContext(
			ctx,
			insertEntry,
			entry.ID,
			entry.AccountNumber,
			entry.OperationType,
			entry.Amount,
			entry.BalanceBefore,
			entry.BalanceAfter,
			entry.ReferenceID,
			entry.OccurredAt,
			entry.Description,
		); err != nil {
			return fmt.Errorf("append history entry for account %d: %w", entry.AccountNumber, err)
		}
	}

	for _, number := range posting.RemoveNumbers {
		if _, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE number = $1`, number); err != nil {
			return fmt.Errorf("remove account %d: %w", number, err)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var account domain.Account
	if err := row.Scan(
		&account.Number,
		&account.Balance,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.Holder.ID,
		&account.Holder.Name,
		&account.Holder.TaxID,
		&account.Holder.Email,
		&account.Holder.CreatedAt,
	); err != nil {
		return domain.Account{}, err
	}

	return account, nil
}
