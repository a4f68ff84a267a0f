// Package id generates random identifiers that are not drawn from a sequence.
package id

import (
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixUser = "USER"

	// userSuffixLength is the number of hex characters after PrefixUser.
	userSuffixLength = 8
)

// NewUserID returns PrefixUser followed by 8 upper-case hex characters.
func NewUserID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return PrefixUser + strings.ToUpper(hex[:userSuffixLength])
}

// NewFileName returns a random file name keeping ext, e.g. ".pdf".
func NewFileName(ext string) string {
	return uuid.NewString() + strings.ToLower(ext)
}
