package commons

import "errors"

// ErrRecordNotFound is the store-level miss; services translate it into the
// appropriate business error kind.
var ErrRecordNotFound = errors.New("record not found")
