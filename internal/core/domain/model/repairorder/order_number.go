package repairorder

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"autoshop/internal/pkg/errs"
)

// DefaultOrderNoPrefix is the prefix used for repair-order numbers.
const DefaultOrderNoPrefix = "RO"

// orderNoPattern matches a 2-letter prefix, an 8-digit UTC date, a 3-digit
// timestamp segment, and a single uppercase tail letter.
var orderNoPattern = regexp.MustCompile(`^[A-Z]{2}\d{8}\d{3}[A-Z]$`)

// orderNoPrefixPattern restricts generator prefixes to two uppercase letters.
var orderNoPrefixPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// ErrOrderNoIsNotConstructed is returned when validating a zero-value OrderNo.
var ErrOrderNoIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNo must be created via GenerateOrderNo or OrderNoFromString")

// OrderNo is the human-readable order number stamped on a repair order at
// creation, e.g. "RO20231209123A". It is immutable once assigned.
//
// The number is a function of the wall clock and a random draw, with no
// persisted counter. It is sortable by creation date and format-valid on
// every call, but it is NOT collision-free: the 3-digit segment comes from
// the low-order decimal digits of the millisecond timestamp and rolls over
// every second, and the random tail gives only 26 variants within the same
// millisecond bucket. Uniqueness is owned by the database unique index on
// the order number; a unique-constraint violation at persist time is a
// retryable condition, not a generator bug.
type OrderNo struct {
	value string
}

// GenerateOrderNo produces a new order number with the given prefix.
// The prefix must be exactly two ASCII uppercase letters; pass
// DefaultOrderNoPrefix for regular repair orders.
//
// Layout: prefix + YYYYMMDD (UTC) + last 3 decimal digits of the current
// millisecond timestamp + one uniformly random letter A-Z. Total length is
// len(prefix) + 12.
func GenerateOrderNo(prefix string) (OrderNo, error) {
	if !orderNoPrefixPattern.MatchString(prefix) {
		return OrderNo{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNo prefix",
			fmt.Errorf("%q is not two uppercase ASCII letters", prefix),
		)
	}

	now := time.Now().UTC()
	dateStr := now.Format("20060102")
	serial := now.UnixMilli() % 1000

	n, err := rand.Int(rand.Reader, big.NewInt(26))
	if err != nil {
		return OrderNo{}, fmt.Errorf("order number generation failed: %w", err)
	}
	tail := rune('A' + n.Int64())

	return OrderNo{value: fmt.Sprintf("%s%s%03d%c", prefix, dateStr, serial, tail)}, nil
}

// OrderNoFromString reconstructs an OrderNo from persistence, rejecting
// values that do not match the generator's format.
func OrderNoFromString(s string) (OrderNo, error) {
	if !orderNoPattern.MatchString(s) {
		return OrderNo{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNo",
			fmt.Errorf("%q does not match the order number format", s),
		)
	}
	return OrderNo{value: s}, nil
}

// String returns the order number text.
func (n OrderNo) String() string {
	return n.value
}

// IsEqual reports whether two order numbers carry the same value.
func (n OrderNo) IsEqual(other OrderNo) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNoIsNotConstructed for the zero value.
func (n OrderNo) Validate() error {
	if n.value == "" {
		return ErrOrderNoIsNotConstructed
	}
	return nil
}
