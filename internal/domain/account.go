package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	Number    int
	Balance   decimal.Decimal
	Holder    Holder
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBalance reports whether any funds remain on the account. Closure is
// only permitted once this returns false.
func (a Account) HasBalance() bool {
	return !a.Balance.IsZero()
}
