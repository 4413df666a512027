package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/commons"
	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

func entryAt(number int, operationType domain.OperationType, at time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:            uuid.NewString(),
		AccountNumber: number,
		OperationType: operationType,
		Amount:        decimal.NewFromInt(1),
		OccurredAt:    at,
	}
}

func TestApplyPostingUpsertsAndAppends(t *testing.T) {
	store := NewStore()
	now := time.Now().UTC()

	store.applyPosting(domain.Posting{
		Accounts: []domain.Account{{Number: 100, Balance: decimal.NewFromInt(10), Active: true}},
		Entries:  []domain.HistoryEntry{entryAt(100, domain.OperationOpen, now)},
	})

	account, ok := store.getAccount(100)
	if !ok {
		t.Fatal("expected account 100 to exist")
	}
	if account.Balance.Cmp(decimal.NewFromInt(10)) != 0 {
		t.Errorf("expected balance 10, got %s", account.Balance)
	}
	if account.CreatedAt.IsZero() || account.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on insert")
	}

	created := account.CreatedAt
	store.applyPosting(domain.Posting{
		Accounts: []domain.Account{{Number: 100, Balance: decimal.NewFromInt(25), Active: true}},
	})
	account, _ = store.getAccount(100)
	if account.Balance.Cmp(decimal.NewFromInt(25)) != 0 {
		t.Errorf("expected balance 25 after upsert, got %s", account.Balance)
	}
	if !account.CreatedAt.Equal(created) {
		t.Error("upsert must preserve the original creation time")
	}
}

func TestApplyPostingRemovalKeepsHistory(t *testing.T) {
	store := NewStore()
	now := time.Now().UTC()

	store.applyPosting(domain.Posting{
		Accounts: []domain.Account{{Number: 100, Active: true}},
		Entries:  []domain.HistoryEntry{entryAt(100, domain.OperationOpen, now)},
	})
	store.applyPosting(domain.Posting{
		Entries:       []domain.HistoryEntry{entryAt(100, domain.OperationClose, now.Add(time.Second))},
		RemoveNumbers: []int{100},
	})

	if _, ok := store.getAccount(100); ok {
		t.Error("expected account removed")
	}

	entries := store.snapshotHistory(func(entry domain.HistoryEntry) bool {
		return entry.AccountNumber == 100
	})
	if len(entries) != 2 {
		t.Fatalf("expected history retained after removal, got %d entries", len(entries))
	}
}

func TestSnapshotHistoryTiesBrokenByInsertionOrder(t *testing.T) {
	store := NewStore()
	same := time.Now().UTC()

	first := entryAt(100, domain.OperationDeposit, same)
	second := entryAt(100, domain.OperationDeposit, same)
	third := entryAt(100, domain.OperationDeposit, same)
	store.applyPosting(domain.Posting{Entries: []domain.HistoryEntry{first, second}})
	store.applyPosting(domain.Posting{Entries: []domain.HistoryEntry{third}})

	entries := store.snapshotHistory(func(domain.HistoryEntry) bool { return true })
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{third.ID, second.ID, first.ID}
	for i, entry := range entries {
		if entry.ID != want[i] {
			t.Errorf("position %d: expected entry %s, got %s", i, want[i], entry.ID)
		}
	}
}

func TestSnapshotHistoryNewestFirstAcrossTimestamps(t *testing.T) {
	store := NewStore()
	base := time.Now().UTC()

	old := entryAt(100, domain.OperationOpen, base.Add(-time.Minute))
	recent := entryAt(100, domain.OperationDeposit, base)
	// Inserted out of chronological order on purpose.
	store.applyPosting(domain.Posting{Entries: []domain.HistoryEntry{recent, old}})

	entries := store.snapshotHistory(func(domain.HistoryEntry) bool { return true })
	if entries[0].ID != recent.ID || entries[1].ID != old.ID {
		t.Error("expected entries sorted newest first regardless of insertion order")
	}
}

func TestPutHolderDeduplicatesByTaxID(t *testing.T) {
	store := NewStore()

	first, created := store.putHolder(domain.Holder{Name: "Ana", TaxID: "11111111111"})
	if !created {
		t.Fatal("expected first put to create")
	}
	second, created := store.putHolder(domain.Holder{Name: "Outro Nome", TaxID: "11111111111"})
	if created {
		t.Error("expected second put to return the existing holder")
	}
	if second.ID != first.ID || second.Name != "Ana" {
		t.Errorf("expected existing holder back, got id %d name %q", second.ID, second.Name)
	}

	third, created := store.putHolder(domain.Holder{Name: "Bia", TaxID: "22222222222"})
	if !created || third.ID == first.ID {
		t.Error("expected a distinct holder for a new tax id")
	}
}

func TestAccountRepositoryNotFound(t *testing.T) {
	repo := NewAccountRepository(NewStore())

	_, err := repo.GetByNumber(context.Background(), 999)
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListAccountsSortedByNumber(t *testing.T) {
	store := NewStore()
	for _, number := range []int{300, 100, 200} {
		store.applyPosting(domain.Posting{
			Accounts: []domain.Account{{Number: number, Active: true}},
		})
	}

	accounts := store.listAccounts()
	if len(accounts) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(accounts))
	}
	for i, want := range []int{100, 200, 300} {
		if accounts[i].Number != want {
			t.Errorf("position %d: expected account %d, got %d", i, want, accounts[i].Number)
		}
	}
}
