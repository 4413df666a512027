// Package memory provides an in-process implementation of the repository
// contracts. It backs the test suite and the standalone demo wiring; the
// postgres package is the production store.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/OliveiraBeatr1z/bytebank-ledger/internal/domain"
)

// Store holds all ledger state behind one mutex so a posting commits
// atomically across account upserts, history appends and removals.
type Store struct {
	mu           sync.RWMutex
	accounts     map[int]domain.Account
	holders      map[string]domain.Holder
	history      []historyRecord
	nextHolderID int64
	nextSeq      int64
}

type historyRecord struct {
	seq   int64
	entry domain.HistoryEntry
}

func NewStore() *Store {
	return &Store{
		accounts:     make(map[int]domain.Account),
		holders:      make(map[string]domain.Holder),
		nextHolderID: 1,
		nextSeq:      1,
	}
}

func (s *Store) getAccount(number int) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[number]
	return account, ok
}

func (s *Store) listAccounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (s *Store) applyPosting(posting domain.Posting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for _, account := range posting.Accounts {
		if existing, ok := s.accounts[account.Number]; ok {
			account.CreatedAt = existing.CreatedAt
		} else {
			account.CreatedAt = now
		}
		account.UpdatedAt = now
		s.accounts[account.Number] = account
	}

	for _, entry := range posting.Entries {
		s.history = append(s.history, historyRecord{seq: s.nextSeq, entry: entry})
		s.nextSeq++
	}

	for _, number := range posting.RemoveNumbers {
		delete(s.accounts, number)
	}
}

// snapshotHistory returns the matching entries newest first, insertion order
// breaking timestamp ties.
func (s *Store) snapshotHistory(match func(domain.HistoryEntry) bool) []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]historyRecord, 0, len(s.history))
	for _, record := range s.history {
		if match(record.entry) {
			records = append(records, record)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := records[i].entry.OccurredAt, records[j].entry.OccurredAt
		if ti.Equal(tj) {
			return records[i].seq > records[j].seq
		}
		return ti.After(tj)
	})

	out := make([]domain.HistoryEntry, 0, len(records))
	for _, record := range records {
		out = append(out, record.entry)
	}
	return out
}

func (s *Store) getHolder(taxID string) (domain.Holder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	holder, ok := s.holders[taxID]
	return holder, ok
}

func (s *Store) putHolder(holder domain.Holder) (domain.Holder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.holders[holder.TaxID]; ok {
		return existing, false
	}

	holder.ID = s.nextHolderID
	holder.CreatedAt = time.Now().UTC()
	s.nextHolderID++
	s.holders[holder.TaxID] = holder
	return holder, true
}
