package reason

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrEmptyPatch   = errors.New("no fields to update")
	ErrEmptyContent = errors.New("content must not be empty")
	ErrInvalidFlag  = errors.New("enabled must be 0, 1, true or false")
)

var stripPolicy = bluemonday.StrictPolicy()

// Patch is a partial update of a reason. Nil fields are left unchanged.
type Patch struct {
	Content *string
	Enabled *bool
}

func (p Patch) IsEmpty() bool {
	return p.Content == nil && p.Enabled == nil
}

// Validate checks the patch after its content has been normalised.
func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Content != nil {
		return ValidateContent(*p.Content)
	}
	return nil
}

// NormalizeContent applies NFKC, strips markup and trims surrounding space.
func NormalizeContent(s string) string {
	s = norm.NFKC.String(s)
	s = html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.TrimSpace(s)
}

func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", MaxContentLength)
	}
	return nil
}

// ParseEnabled accepts exactly 0, 1, true or false. JSON numbers arrive as
// float64, so whole-valued floats are accepted too.
func ParseEnabled(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case int:
		return intFlag(int64(x))
	case int8:
		return intFlag(int64(x))
	case int16:
		return intFlag(int64(x))
	case int32:
		return intFlag(int64(x))
	case int64:
		return intFlag(x)
	case uint8:
		return intFlag(int64(x))
	case float64:
		if x == 0 || x == 1 {
			return x == 1, nil
		}
	case float32:
		if x == 0 || x == 1 {
			return x == 1, nil
		}
	}
	return false, ErrInvalidFlag
}

func intFlag(n int64) (bool, error) {
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, ErrInvalidFlag
}
