package errors

import (
	"errors"
	"strings"
)

// ErrStoreUnavailable signals that the database cannot be reached.
// Handlers translate it to 503 so clients can retry later.
var ErrStoreUnavailable = errors.New("database connection failed")

// IsStoreUnavailable reports whether err looks like a lost database
// connection rather than a business failure. Driver errors do not share
// a sentinel type, so the message is inspected as a fallback.
func IsStoreUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "failed to connect")
}
