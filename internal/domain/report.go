package domain

import "github.com/shopspring/decimal"

// GeneralReport is a point-in-time aggregate over active accounts. It is a
// derived view: concurrent mutations may land between the reads that built
// it, which is accepted in exchange for never blocking the ledger.
type GeneralReport struct {
	ActiveAccounts int64
	TotalBalance   decimal.Decimal
	AverageBalance decimal.Decimal
	HighestBalance decimal.Decimal
	LowestBalance  decimal.Decimal
}
