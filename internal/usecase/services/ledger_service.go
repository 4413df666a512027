package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/logger"
)

// LedgerService is the invariant-enforcing engine. It serializes mutations
// per account, validates every business rule before touching state, and
// commits each balance change together with its history entry as one atomic
// posting.
type LedgerService struct {
	accountRepo repo_interfaces.AccountRepository
	holderRepo  repo_interfaces.HolderRepository
	closePolicy domain.ClosePolicy
	locks       *accountLocks
}

// TransferResult links the two legs of an applied transfer.
type TransferResult struct {
	ReferenceID string
	From        domain.Account
	To          domain.Account
	Amount      decimal.Decimal
}

func NewLedgerService(
	accountRepo repo_interfaces.AccountRepository,
	holderRepo repo_interfaces.HolderRepository,
	closePolicy domain.ClosePolicy,
) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		holderRepo:  holderRepo,
		closePolicy: closePolicy,
		locks:       newAccountLocks(),
	}
}

func (s *LedgerService) Open(ctx context.Context, number int, holderData domain.Holder) (domain.Account, error) {
	logger.Info("ledger open account request", logger.Fields{
		"number": number,
	})

	release := s.locks.acquire(number)
	defer release()

	exists, err := s.accountRepo.Exists(ctx, number)
	if err != nil {
		return domain.Account{}, domain.StorageError(err)
	}
	if exists {
		return domain.Account{}, fmt.Errorf("%w: number %d", domain.ErrDuplicateAccount, number)
	}

	holder, err := s.resolveHolder(ctx, holderData)
	if err != nil {
		return domain.Account{}, err
	}

	account := domain.Account{
		Number:  number,
		Balance: decimal.Zero,
		Holder:  holder,
		Active:  true,
	}

	entry := newEntry(number, domain.OperationOpen, decimal.Zero, decimal.Zero, decimal.Zero, "", "account opened")

	if err := s.accountRepo.ApplyPosting(ctx, domain.Posting{
		Accounts: []domain.Account{account},
		Entries:  []domain.HistoryEntry{entry},
	}); err != nil {
		return domain.Account{}, domain.StorageError(err)
	}

	logger.Info("ledger open account success", logger.Fields{
		"number": number,
		"holder": holder.ID,
	})

	return s.refresh(ctx, account)
}

func (s *LedgerService) Deposit(ctx context.Context, number int, amount decimal.Decimal, description string) (domain.Account, error) {
	amount, err := validAmount(amount)
	if err != nil {
		return domain.Account{}, err
	}

	release := s.locks.acquire(number)
	defer release()

	account, err := s.activeAccount(ctx, number)
	if err != nil {
		return domain.Account{}, err
	}

	before := account.Balance
	account.Balance = before.Add(amount)

	if description == "" {
		description = "cash deposit"
	}
	entry := newEntry(number, domain.OperationDeposit, amount, before, account.Balance, "", description)

	if err := s.accountRepo.ApplyPosting(ctx, domain.Posting{
		Accounts: []domain.Account{account},
		Entries:  []domain.HistoryEntry{entry},
	}); err != nil {
		return domain.Account{}, domain.StorageError(err)
	}

	logger.Info("ledger deposit success", logger.Fields{
		"number":  number,
		"amount":  amount.StringFixed(2),
		"balance": account.Balance.StringFixed(2),
	})

	return s.refresh(ctx, account)
}

func (s *LedgerService) Withdraw(ctx context.Context, number int, amount decimal.Decimal, description string) (domain.Account, error) {
	amount, err := validAmount(amount)
	if err != nil {
		return domain.Account{}, err
	}

	release := s.locks.acquire(number)
	defer release()

	account, err := s.activeAccount(ctx, number)
	if err != nil {
		return domain.Account{}, err
	}

	before := account.Balance
	if amount.GreaterThan(before) {
		return domain.Account{}, fmt.Errorf("%w: requested %s, available %s",
			domain.ErrInsufficientFunds, amount.StringFixed(2), before.StringFixed(2))
	}
	account.Balance = before.Sub(amount)

	if description == "" {
		description = "cash withdrawal"
	}
	entry := newEntry(number, domain.OperationWithdraw, amount, before, account.Balance, "", description)

	if err := s.accountRepo.ApplyPosting(ctx, domain.Posting{
		Accounts: []domain.Account{account},
		Entries:  []domain.HistoryEntry{entry},
	}); err != nil {
		return domain.Account{}, domain.StorageError(err)
	}

	logger.Info("ledger withdraw success", logger.Fields{
		"number":  number,
		"amount":  amount.StringFixed(2),
		"balance": account.Balance.StringFixed(2),
	})

	return s.refresh(ctx, account)
}

// Transfer debits one account and credits another atomically. Both locks are
// held for the whole read-check-write sequence, acquired in ascending number
// order.
func (s *LedgerService) Transfer(ctx context.Context, fromNumber, toNumber int, amount decimal.Decimal, description string) (TransferResult, error) {
	if fromNumber == toNumber {
		return TransferResult{}, fmt.Errorf("%w: number %d", domain.ErrSameAccount, fromNumber)
	}

	amount, err := validAmount(amount)
	if err != nil {
		return TransferResult{}, err
	}

	release := s.locks.acquire(fromNumber, toNumber)
	defer release()

	from, err := s.activeAccount(ctx, fromNumber)
	if err != nil {
		return TransferResult{}, err
	}
	to, err := s.activeAccount(ctx, toNumber)
	if err != nil {
		return TransferResult{}, err
	}

	fromBefore := from.Balance
	toBefore := to.Balance
	if amount.GreaterThan(fromBefore) {
		return TransferResult{}, fmt.Errorf("%w: requested %s, available %s",
			domain.ErrInsufficientFunds, amount.StringFixed(2), fromBefore.StringFixed(2))
	}

	from.Balance = fromBefore.Sub(amount)
	to.Balance = toBefore.Add(amount)

	referenceID := uuid.New().String()
	if description == "" {
		description = fmt.Sprintf("transfer between accounts %d and %d", fromNumber, toNumber)
	}
	outEntry := newEntry(fromNumber, domain.OperationTransferOut, amount, fromBefore, from.Balance, referenceID, description)
	inEntry := newEntry(toNumber, domain.OperationTransferIn, amount, toBefore, to.Balance, referenceID, description)
	inEntry.OccurredAt = outEntry.OccurredAt

	if err := s.accountRepo.ApplyPosting(ctx, domain.Posting{
		Accounts: []domain.Account{from, to},
		Entries:  []domain.HistoryEntry{outEntry, inEntry},
	}); err != nil {
		return TransferResult{}, domain.StorageError(err)
	}

	logger.Info("ledger transfer success", logger.Fields{
		"from":      fromNumber,
		"to":        toNumber,
		"amount":    amount.StringFixed(2),
		"reference": referenceID,
	})

	from, _ = s.refresh(ctx, from)
	to, _ = s.refresh(ctx, to)

	return TransferResult{
		ReferenceID: referenceID,
		From:        from,
		To:          to,
		Amount:      amount,
	}, nil
}

// Close ends an account's life. The balance must be exactly zero; whether
// the record is deactivated or removed is the configured policy's call.
func (s *LedgerService) Close(ctx context.Context, number int) (domain.Account, error) {
	release := s.locks.acquire(number)
	defer release()

	account, err := s.activeAccount(ctx, number)
	if err != nil {
		return domain.Account{}, err
	}
	if account.HasBalance() {
		return domain.Account{}, fmt.Errorf("%w: balance %s", domain.ErrNonZeroBalance, account.Balance.StringFixed(2))
	}

	entry := newEntry(number, domain.OperationClose, decimal.Zero, account.Balance, account.Balance, "", fmt.Sprintf("account closed (%s)", s.closePolicy))

	posting := domain.Posting{Entries: []domain.HistoryEntry{entry}}
	if s.closePolicy == domain.CloseHard {
		posting.RemoveNumbers = []int{number}
	} else {
		account.Active = false
		posting.Accounts = []domain.Account{account}
	}

	if err := s.accountRepo.ApplyPosting(ctx, posting); err != nil {
		return domain.Account{}, domain.StorageError(err)
	}

	logger.Info("ledger close account success", logger.Fields{
		"number": number,
		"policy": string(s.closePolicy),
	})

	account.Active = false
	return account, nil
}

// MaintenanceFeeResult summarizes one batch fee run.
type MaintenanceFeeResult struct {
	AccountsCharged int
	AccountsSkipped int
	FeeAmount       decimal.Decimal
	TotalCharged    decimal.Decimal
}

// ApplyMaintenanceFee debits the fee from every active account whose balance
// covers it. Each debit commits as its own posting under the account's lock;
// accounts that cannot cover the fee, or that close between the listing and
// the charge, are skipped and counted.
func (s *LedgerService) ApplyMaintenanceFee(ctx context.Context, fee decimal.Decimal, description string) (MaintenanceFeeResult, error) {
	fee, err := validAmount(fee)
	if err != nil {
		return MaintenanceFeeResult{}, err
	}
	if description == "" {
		description = "maintenance fee"
	}

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return MaintenanceFeeResult{}, domain.StorageError(err)
	}

	result := MaintenanceFeeResult{FeeAmount: fee, TotalCharged: decimal.Zero}
	for _, candidate := range accounts {
		if !candidate.Active {
			continue
		}
		charged, err := s.chargeFee(ctx, candidate.Number, fee, description)
		if err != nil {
			return result, err
		}
		if charged {
			result.AccountsCharged++
			result.TotalCharged = result.TotalCharged.Add(fee)
		} else {
			result.AccountsSkipped++
		}
	}

	logger.Info("ledger maintenance fee applied", logger.Fields{
		"fee":     fee.StringFixed(2),
		"charged": result.AccountsCharged,
		"skipped": result.AccountsSkipped,
		"total":   result.TotalCharged.StringFixed(2),
	})

	return result, nil
}

func (s *LedgerService) chargeFee(ctx context.Context, number int, fee decimal.Decimal, description string) (bool, error) {
	release := s.locks.acquire(number)
	defer release()

	account, err := s.activeAccount(ctx, number)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) || errors.Is(err, domain.ErrAccountInactive) {
			return false, nil
		}
		return false, err
	}
	if fee.GreaterThan(account.Balance) {
		return false, nil
	}

	before := account.Balance
	account.Balance = before.Sub(fee)
	entry := newEntry(number, domain.OperationWithdraw, fee, before, account.Balance, "", description)

	if err := s.accountRepo.ApplyPosting(ctx, domain.Posting{
		Accounts: []domain.Account{account},
		Entries:  []domain.HistoryEntry{entry},
	}); err != nil {
		return false, domain.StorageError(err)
	}
	return true, nil
}

func (s *LedgerService) GetAccount(ctx context.Context, number int) (domain.Account, error) {
	account, err := s.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return domain.Account{}, fmt.Errorf("%w: number %d", domain.ErrAccountNotFound, number)
		}
		return domain.Account{}, domain.StorageError(err)
	}
	return account, nil
}

func (s *LedgerService) GetBalance(ctx context.Context, number int) (decimal.Decimal, error) {
	account, err := s.GetAccount(ctx, number)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *LedgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return accounts, nil
}

// activeAccount loads the account and rejects operations on missing or
// deactivated ones. Callers must already hold the account's lock.
func (s *LedgerService) activeAccount(ctx context.Context, number int) (domain.Account, error) {
	account, err := s.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return domain.Account{}, fmt.Errorf("%w: number %d", domain.ErrAccountNotFound, number)
		}
		return domain.Account{}, domain.StorageError(err)
	}
	if !account.Active {
		return domain.Account{}, fmt.Errorf("%w: number %d", domain.ErrAccountInactive, number)
	}
	return account, nil
}

func (s *LedgerService) resolveHolder(ctx context.Context, holderData domain.Holder) (domain.Holder, error) {
	holder, err := s.holderRepo.GetByTaxID(ctx, holderData.TaxID)
	if err == nil {
		return holder, nil
	}
	if !errors.Is(err, commons.ErrRecordNotFound) {
		return domain.Holder{}, domain.StorageError(err)
	}

	created, err := s.holderRepo.Create(ctx, holderData)
	if err != nil {
		return domain.Holder{}, domain.StorageError(err)
	}
	return created, nil
}

// refresh re-reads the account after a committed posting so the caller sees
// store-assigned timestamps. The posting already succeeded, so a read miss
// here falls back to the locally computed state.
func (s *LedgerService) refresh(ctx context.Context, account domain.Account) (domain.Account, error) {
	fresh, err := s.accountRepo.GetByNumber(ctx, account.Number)
	if err != nil {
		return account, nil
	}
	return fresh, nil
}

// validAmount rounds to cents first so sub-cent inputs like 0.004 cannot
// slip through as zero-amount operations.
func validAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if rounded.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: got %s", domain.ErrInvalidAmount, amount.String())
	}
	return rounded, nil
}

func newEntry(number int, operationType domain.OperationType, amount, before, after decimal.Decimal, referenceID, description string) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:            uuid.New().String(),
		AccountNumber: number,
		OperationType: operationType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		ReferenceID:   referenceID,
		OccurredAt:    time.Now().UTC(),
		Description:   description,
	}
}
