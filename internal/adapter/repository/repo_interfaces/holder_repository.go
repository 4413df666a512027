package repo_interfaces

import (
	"context"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type HolderRepository interface {
	GetByTaxID(ctx context.Context, taxID string) (domain.Holder, error)
	Create(ctx context.Context, holder domain.Holder) (domain.Holder, error)
}
