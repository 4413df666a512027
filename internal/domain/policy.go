package domain

import (
	"fmt"
	"strings"
)

// ClosePolicy controls what Close does to an account whose balance reached
// zero: soft close deactivates and retains the record for reporting, hard
// close removes it from the store.
type ClosePolicy string

const (
	CloseSoft ClosePolicy = "soft"
	CloseHard ClosePolicy = "hard"
)

func ParseClosePolicy(raw string) (ClosePolicy, error) {
	switch ClosePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case CloseSoft, "":
		return CloseSoft, nil
	case CloseHard:
		return CloseHard, nil
	}
	return "", fmt.Errorf("unsupported close policy %q", raw)
}
