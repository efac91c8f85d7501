package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
)

// operationPrefix precedes the sequence in an operation ID.
const operationPrefix = "OP-"

// NewBankID returns a new lexically sortable bank identifier.
func NewBankID() string {
	return ulid.Make().String()
}

// IsBankID reports whether s is a well-formed bank identifier.
func IsBankID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// FormatOperationID returns an operation ID like "OP-0001".
func FormatOperationID(seq int) string {
	return fmt.Sprintf("%s%04d", operationPrefix, seq)
}

// ParseOperationID parses "OP-0001" into its sequence number.
func ParseOperationID(s string) (int, error) {
	rest, ok := strings.CutPrefix(s, operationPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid operation ID format: %q", s)
	}
	seq, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in operation ID %q: %w", s, err)
	}
	if seq < 1 {
		return 0, fmt.Errorf("sequence in operation ID %q must be positive", s)
	}
	return seq, nil
}
