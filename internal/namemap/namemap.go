// Package namemap turns user-supplied names into things that are safe to put
// on disk: fixed-width hashed ids for save slots, and sanitized directory
// names for account scopes.
package namemap

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/partykeeper/internal/common"
)

const (
	slotFilePrefix = "party_"
	slotFileSuffix = ".txt"
)

// FileID returns the lowercase hex MD5 of name's UTF-8 bytes. The same name
// always yields the same 32-character id.
func FileID(name string) string {
	sum := md5.Sum([]byte(name))
	return hex.EncodeToString(sum[:])
}

// SlotFileName is the on-disk file name for the save slot called name.
func SlotFileName(name string) string {
	return slotFilePrefix + FileID(name) + slotFileSuffix
}

// IsSlotFileName reports whether base looks like a file produced by SlotFileName.
func IsSlotFileName(base string) bool {
	if !strings.HasPrefix(base, slotFilePrefix) || !strings.HasSuffix(base, slotFileSuffix) {
		return false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(base, slotFilePrefix), slotFileSuffix)
	if len(id) != hex.EncodedLen(md5.Size) {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// invalidPathChars are rejected in a path component on at least one of the
// platforms we run on.
const invalidPathChars = `<>:"/\|?*`

// SanitizeForPath replaces characters that cannot appear in a path component
// with '_' and trims surrounding whitespace. Empty input maps to the guest
// scope. Only used for scope directories, never for save slot files.
func SanitizeForPath(name string) string {
	if name == "" {
		return common.GuestScope
	}
	s := strings.Map(func(r rune) rune {
		if r == 0 || unicode.IsControl(r) || strings.ContainsRune(invalidPathChars, r) {
			return '_'
		}
		return r
	}, name)
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." {
		return common.GuestScope
	}
	return s
}
