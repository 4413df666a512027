package services

import (
	"sort"
	"sync"
)

// accountLocks serializes mutating operations per account number. Locks are
// always taken in ascending number order, which is the deadlock-avoidance
// rule for transfers racing in opposite directions.
type accountLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[int]*sync.Mutex)}
}

func (l *accountLocks) lockFor(number int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[number]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[number] = lock
	}
	return lock
}

// acquire locks the given account numbers in ascending order and returns the
// release function. Duplicate numbers are collapsed so a caller can never
// self-deadlock.
func (l *accountLocks) acquire(numbers ...int) func() {
	unique := make([]int, 0, len(numbers))
	seen := make(map[int]struct{}, len(numbers))
	for _, number := range numbers {
		if _, ok := seen[number]; ok {
			continue
		}
		seen[number] = struct{}{}
		unique = append(unique, number)
	}
	sort.Ints(unique)

	held := make([]*sync.Mutex, 0, len(unique))
	for _, number := range unique {
		lock := l.lockFor(number)
		lock.Lock()
		held = append(held, lock)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
