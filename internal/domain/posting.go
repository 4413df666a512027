package domain

// Posting is the atomic unit the ledger commits to storage: the accounts
// whose balances changed, the history entries explaining them, and any
// account removed by a hard close. A store applies a posting entirely or
// not at all.
type Posting struct {
	Accounts      []Account
	Entries       []HistoryEntry
	RemoveNumbers []int
}
