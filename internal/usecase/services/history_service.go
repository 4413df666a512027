package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

// HistoryService exposes read-only views over the append-only operation
// log. Entries remain queryable after a soft or hard close; no existence
// check is made against the account store.
type HistoryService struct {
	historyRepo repo_interfaces.HistoryRepository
	accountRepo repo_interfaces.AccountRepository
}

// Statement pairs an account with its history over a period.
type Statement struct {
	Account domain.Account
	Entries []domain.HistoryEntry
}

func NewHistoryService(
	historyRepo repo_interfaces.HistoryRepository,
	accountRepo repo_interfaces.AccountRepository,
) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		accountRepo: accountRepo,
	}
}

func (s *HistoryService) ByAccount(ctx context.Context, number int, from, to *time.Time) ([]domain.HistoryEntry, error) {
	entries, err := s.historyRepo.ListByAccount(ctx, number, from, to)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return entries, nil
}

func (s *HistoryService) ByType(ctx context.Context, operationType domain.OperationType) ([]domain.HistoryEntry, error) {
	entries, err := s.historyRepo.ListByType(ctx, operationType)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return entries, nil
}

// GetStatement fetches the account snapshot and its entries concurrently.
// The account must still exist in the store; hard-closed accounts keep their
// raw history reachable through ByAccount.
func (s *HistoryService) GetStatement(ctx context.Context, number int, from, to *time.Time) (Statement, error) {
	var statement Statement

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		account, err := s.accountRepo.GetByNumber(groupCtx, number)
		if err != nil {
			return err
		}
		statement.Account = account
		return nil
	})
	group.Go(func() error {
		entries, err := s.historyRepo.ListByAccount(groupCtx, number, from, to)
		if err != nil {
			return err
		}
		statement.Entries = entries
		return nil
	})

	if err := group.Wait(); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return Statement{}, fmt.Errorf("%w: number %d", domain.ErrAccountNotFound, number)
		}
		return Statement{}, domain.StorageError(err)
	}

	return statement, nil
}
