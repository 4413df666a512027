package services_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/adapter/repository/memory"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/usecase/services"
)

func newHistoryFixture(t *testing.T) (fixture, *services.HistoryService) {
	t.Helper()
	f := newFixture(domain.CloseSoft)
	return f, services.NewHistoryService(f.history, memory.NewAccountRepository(f.store))
}

func TestByAccountNewestFirst(t *testing.T) {
	f, history := newHistoryFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustDeposit(t, f, 100, "10")
	mustDeposit(t, f, 100, "20")
	if _, err := f.ledger.Withdraw(context.Background(), 100, dec("5"), ""); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	entries, err := history.ByAccount(context.Background(), 100, nil, nil)
	if err != nil {
		t.Fatalf("by account: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	want := []domain.OperationType{
		domain.OperationWithdraw,
		domain.OperationDeposit,
		domain.OperationDeposit,
		domain.OperationOpen,
	}
	for i, entry := range entries {
		if entry.OperationType != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], entry.OperationType)
		}
	}
	for i := 0; i+1 < len(entries); i++ {
		if entries[i].OccurredAt.Before(entries[i+1].OccurredAt) {
			t.Errorf("entry %d is older than entry %d", i, i+1)
		}
	}
}

func TestByAccountRepeatedQueriesAgree(t *testing.T) {
	f, history := newHistoryFixture(t)
	mustOpen(t, f, 100, "11111111111")
	for i := 0; i < 5; i++ {
		mustDeposit(t, f, 100, "1")
	}

	first, err := history.ByAccount(context.Background(), 100, nil, nil)
	if err != nil {
		t.Fatalf("first query: %v", err)
	}
	second, err := history.ByAccount(context.Background(), 100, nil, nil)
	if err != nil {
		t.Fatalf("second query: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical queries must return identically ordered results")
	}
}

func TestByAccountUnknownNumberReturnsEmpty(t *testing.T) {
	_, history := newHistoryFixture(t)

	entries, err := history.ByAccount(context.Background(), 999, nil, nil)
	if err != nil {
		t.Fatalf("by account: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestByAccountPeriodBoundsInclusive(t *testing.T) {
	f, history := newHistoryFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustDeposit(t, f, 100, "10")

	all, err := history.ByAccount(context.Background(), 100, nil, nil)
	if err != nil {
		t.Fatalf("by account: %v", err)
	}
	oldest := all[len(all)-1].OccurredAt
	newest := all[0].OccurredAt

	within, err := history.ByAccount(context.Background(), 100, &oldest, &newest)
	if err != nil {
		t.Fatalf("bounded query: %v", err)
	}
	if len(within) != len(all) {
		t.Errorf("bounds matching the extreme timestamps must include them, got %d of %d", len(within), len(all))
	}

	future := newest.Add(time.Hour)
	later, err := history.ByAccount(context.Background(), 100, &future, nil)
	if err != nil {
		t.Fatalf("future query: %v", err)
	}
	if len(later) != 0 {
		t.Errorf("expected no entries after the last operation, got %d", len(later))
	}
}

func TestByTypeSpansAccounts(t *testing.T) {
	f, history := newHistoryFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustOpen(t, f, 200, "22222222222")
	mustDeposit(t, f, 100, "10")
	mustDeposit(t, f, 200, "20")
	if _, err := f.ledger.Withdraw(context.Background(), 100, dec("5"), ""); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	deposits, err := history.ByType(context.Background(), domain.OperationDeposit)
	if err != nil {
		t.Fatalf("by type: %v", err)
	}
	if len(deposits) != 2 {
		t.Fatalf("expected 2 deposits across accounts, got %d", len(deposits))
	}
	for _, entry := range deposits {
		if entry.OperationType != domain.OperationDeposit {
			t.Errorf("expected only DEPOSIT entries, got %s", entry.OperationType)
		}
	}
}

func TestGetStatementPairsAccountAndEntries(t *testing.T) {
	f, history := newHistoryFixture(t)
	mustOpen(t, f, 100, "11111111111")
	mustDeposit(t, f, 100, "25")

	statement, err := history.GetStatement(context.Background(), 100, nil, nil)
	if err != nil {
		t.Fatalf("get statement: %v", err)
	}
	if statement.Account.Number != 100 {
		t.Errorf("expected account 100, got %d", statement.Account.Number)
	}
	if statement.Account.Balance.Cmp(dec("25")) != 0 {
		t.Errorf("expected balance 25, got %s", statement.Account.Balance)
	}
	if len(statement.Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(statement.Entries))
	}
}

func TestGetStatementMissingAccount(t *testing.T) {
	_, history := newHistoryFixture(t)

	_, err := history.GetStatement(context.Background(), 999, nil, nil)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestHistorySurvivesSoftClose(t *testing.T) {
	f, history := newHistoryFixture(t)
	mustOpen(t, f, 100, "11111111111")
	if _, err := f.ledger.Close(context.Background(), 100); err != nil {
		t.Fatalf("close: %v", err)
	}

	entries, err := history.ByAccount(context.Background(), 100, nil, nil)
	if err != nil {
		t.Fatalf("by account: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected OPEN and CLOSE entries, got %d", len(entries))
	}
	if entries[0].OperationType != domain.OperationClose {
		t.Errorf("expected newest entry CLOSE, got %s", entries[0].OperationType)
	}
}
