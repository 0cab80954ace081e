// Package cryptox holds the password hashing used by the account store.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/partykeeper/internal/common"
)

// SaltSize is the number of random bytes in a freshly generated salt.
const SaltSize = 16

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeSalt returns a new random salt, base64 encoded for storage.
func MakeSalt() string {
	return common.MakeRandBase64String(SaltSize)
}

// HashPassword computes the stored hash for password under a base64 salt.
func HashPassword(salt string, password []byte) (string, error) {
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(DeriveKey(password, rawSalt)), nil
}

// VerifyPassword reports whether password hashes to hash under salt. The
// comparison runs in constant time. Hashes written by the earlier
// accounts.json format, base64(SHA-256(salt + password)), are also accepted.
func VerifyPassword(salt, hash string, password []byte) (bool, error) {
	candidate, err := HashPassword(salt, password)
	if err != nil {
		return false, err
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1 {
		return true, nil
	}
	return subtle.ConstantTimeCompare([]byte(legacyHash(salt, password)), []byte(hash)) == 1, nil
}

func legacyHash(salt string, password []byte) string {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write(password)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
