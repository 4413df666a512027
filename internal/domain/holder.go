package domain

import "time"

// Holder is the legal owner of one or more accounts. Identity is the tax id;
// holder data is immutable once created in this core.
type Holder struct {
	ID        int64
	Name      string
	TaxID     string
	Email     string
	CreatedAt time.Time
}
