// Package sequence defines prefixed, zero-padded identifiers such as DEF0001.
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Width is the minimum number of digits after the prefix.
const Width = 4

// Kind names the table and column an identifier lives in and its prefix.
type Kind struct {
	Table  string
	Column string
	Prefix string
}

var (
	KindDefaultApplication  = Kind{Table: "t_default_application", Column: "app_id", Prefix: "DEF"}
	KindRecoveryApplication = Kind{Table: "t_recovery_application", Column: "recovery_app_id", Prefix: "REC"}
	KindDefaultReason       = Kind{Table: "t_default_reason", Column: "reason_id", Prefix: "DR"}
	KindRecoveryReason      = Kind{Table: "t_recovery_reason", Column: "recovery_id", Prefix: "RR"}
)

func (k Kind) String() string {
	return k.Table + "." + k.Column
}

// Sequencer mints the next identifier for a kind.
type Sequencer interface {
	Next(ctx context.Context, kind Kind) (string, error)
}

// Format renders prefix followed by n padded to Width digits.
// Numbers wider than Width are not truncated.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, Width, n)
}

// ParseSuffix returns the numeric suffix of id. ok is false when id does not
// start with prefix or the remainder is not all digits.
func ParseSuffix(prefix, id string) (n int64, ok bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	suffix := id[len(prefix):]
	if suffix == "" {
		return 0, false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextAfter returns the identifier following the numerically largest of ids.
// IDs that do not match prefix+digits are ignored.
func NextAfter(prefix string, ids []string) string {
	var max int64
	for _, id := range ids {
		if n, ok := ParseSuffix(prefix, id); ok && n > max {
			max = n
		}
	}
	return Format(prefix, max+1)
}
