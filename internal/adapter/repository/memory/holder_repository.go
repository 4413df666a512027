package memory

import (
	"context"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type HolderRepository struct {
	store *Store
}

func NewHolderRepository(store *Store) *HolderRepository {
	return &HolderRepository{store: store}
}

func (r *HolderRepository) GetByTaxID(_ context.Context, taxID string) (domain.Holder, error) {
	holder, ok := r.store.getHolder(taxID)
	if !ok {
		return domain.Holder{}, commons.ErrRecordNotFound
	}
	return holder, nil
}

func (r *HolderRepository) Create(_ context.Context, holder domain.Holder) (domain.Holder, error) {
	created, _ := r.store.putHolder(holder)
	return created, nil
}
