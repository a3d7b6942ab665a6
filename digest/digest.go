// Package digest provides deterministic digests rendered as base16
// strings. Same input, same output; no salts. For password storage use
// a salted KDF, not these.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"

	"github.com/zoobzio/extras/base16"
)

// Hasher computes a deterministic digest.
type Hasher interface {
	// Sum returns the lower-case hex digest of data.
	Sum(data []byte) (string, error)
}

// sha256Hasher implements SHA-256 deterministic hashing.
type sha256Hasher struct{}

// SHA256 returns a SHA-256 hasher.
func SHA256() Hasher {
	return &sha256Hasher{}
}

func (*sha256Hasher) Sum(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	return base16.Encode(sum[:], false)
}

// sha512Hasher implements SHA-512 deterministic hashing.
type sha512Hasher struct{}

// SHA512 returns a SHA-512 hasher.
func SHA512() Hasher {
	return &sha512Hasher{}
}

func (*sha512Hasher) Sum(data []byte) (string, error) {
	sum := sha512.Sum512(data)
	return base16.Encode(sum[:], false)
}

// blake2bHasher implements BLAKE2b-256 deterministic hashing.
type blake2bHasher struct{}

// BLAKE2b256 returns a BLAKE2b-256 hasher.
func BLAKE2b256() Hasher {
	return &blake2bHasher{}
}

func (*blake2bHasher) Sum(data []byte) (string, error) {
	sum := blake2b.Sum256(data)
	return base16.Encode(sum[:], false)
}

// SHA256Hex is shorthand for SHA256().Sum without the error plumbing;
// encoding a fixed-size array cannot fail.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	s, _ := base16.Encode(sum[:], false)
	return s
}

// SHA512Hex is shorthand for SHA512().Sum.
func SHA512Hex(data []byte) string {
	sum := sha512.Sum512(data)
	s, _ := base16.Encode(sum[:], false)
	return s
}

// BLAKE2b256Hex is shorthand for BLAKE2b256().Sum.
func BLAKE2b256Hex(data []byte) string {
	sum := blake2b.Sum256(data)
	s, _ := base16.Encode(sum[:], false)
	return s
}
