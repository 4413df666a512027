package memory

import (
	"context"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) GetByNumber(_ context.Context, number int) (domain.Account, error) {
	account, ok := r.store.getAccount(number)
	if !ok {
		return domain.Account{}, commons.ErrRecordNotFound
	}
	return account, nil
}

func (r *AccountRepository) Exists(_ context.Context, number int) (bool, error) {
	_, ok := r.store.getAccount(number)
	return ok, nil
}

func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	return r.store.listAccounts(), nil
}

func (r *AccountRepository) ApplyPosting(_ context.Context, posting domain.Posting) error {
	r.store.applyPosting(posting)
	return nil
}
