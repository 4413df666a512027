package repo_interfaces

import (
	"context"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

// AccountRepository is a dumb keyed store for account records. It enforces
// number uniqueness and applies postings atomically; monetary invariants are
// the ledger service's job.
type AccountRepository interface {
	GetByNumber(ctx context.Context, number int) (domain.Account, error)
	Exists(ctx context.Context, number int) (bool, error)
	List(ctx context.Context) ([]domain.Account, error)

	// ApplyPosting commits balance writes, history appends and removals as
	// one durable unit. Either everything in the posting lands or nothing
	// does.
	ApplyPosting(ctx context.Context, posting domain.Posting) error
}
