package domain

import (
	"errors"
	"testing"
)

func TestStorageErrorKeepsSentinelAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := StorageError(cause)

	if !errors.Is(err, ErrStorage) {
		t.Error("expected wrapped error to match ErrStorage")
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to retain its cause")
	}

	var business *Error
	if !errors.As(err, &business) {
		t.Fatal("expected errors.As to surface the business error")
	}
	if business.Code != "STORAGE_FAILURE" {
		t.Errorf("expected code STORAGE_FAILURE, got %q", business.Code)
	}
}

func TestBusinessErrorsAreDistinct(t *testing.T) {
	if errors.Is(ErrInvalidAmount, ErrInsufficientFunds) {
		t.Error("sentinels must not match each other")
	}
}

func TestParseClosePolicy(t *testing.T) {
	cases := []struct {
		raw  string
		want ClosePolicy
		ok   bool
	}{
		{"", CloseSoft, true},
		{"soft", CloseSoft, true},
		{"HARD", CloseHard, true},
		{" hard ", CloseHard, true},
		{"purge", "", false},
	}

	for _, tc := range cases {
		got, err := ParseClosePolicy(tc.raw)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseClosePolicy(%q) = %v, %v; want %v", tc.raw, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseClosePolicy(%q): expected error", tc.raw)
		}
	}
}

func TestParseOperationType(t *testing.T) {
	for _, raw := range []string{"OPEN", "WITHDRAW", "DEPOSIT", "TRANSFER_OUT", "TRANSFER_IN", "CLOSE"} {
		if _, ok := ParseOperationType(raw); !ok {
			t.Errorf("expected %q to parse", raw)
		}
	}
	if _, ok := ParseOperationType("deposit"); ok {
		t.Error("operation types are case sensitive")
	}
	if _, ok := ParseOperationType("REVERSAL"); ok {
		t.Error("unknown operation type must not parse")
	}
}
