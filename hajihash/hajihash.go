package hajihash

import (
	"golang.org/x/crypto/sha3"
)

const (
	// Size is the length of a full digest in bytes.
	Size = 32
	// CheckWordSize is the length of a check word in bytes.
	CheckWordSize = 2
)

// Sum returns the SHA3-256 digest of raw bytes.
func Sum(data []byte) Hash {
	s := sha3.Sum256(data)
	return Hash(s[:])
}

// Digest returns the full SHA3-256 digest of message's canonical form.
//
// The only failures are canonicalization errors (see Canonicalize); use
// IsKind(err, KindEncoding) to detect text that is not valid UTF-8.
func Digest(message any) (Hash, error) {
	return DigestWithOptions(message, Options{})
}

// DigestWithOptions is Digest with an explicit compliance mode.
func DigestWithOptions(message any, opts Options) (Hash, error) {
	canon, err := CanonicalizeWithOptions(message, opts)
	if err != nil {
		return nil, err
	}
	return Sum(canon), nil
}

// CheckWord returns the first CheckWordSize bytes of Digest(message).
func CheckWord(message any) (Hash, error) {
	return CheckWordWithOptions(message, Options{})
}

// CheckWordWithOptions is CheckWord with an explicit compliance mode.
func CheckWordWithOptions(message any, opts Options) (Hash, error) {
	h, err := DigestWithOptions(message, opts)
	if err != nil {
		return nil, err
	}
	return h.CheckWord(), nil
}

// VerifyDigest reports whether hash is the full digest of message.
// A message that cannot be canonicalized never verifies.
func VerifyDigest(message any, hash Hash) bool {
	return VerifyDigestWithOptions(message, hash, Options{})
}

// VerifyDigestWithOptions is VerifyDigest with an explicit compliance mode.
func VerifyDigestWithOptions(message any, hash Hash, opts Options) bool {
	h, err := DigestWithOptions(message, opts)
	if err != nil {
		return false
	}
	return SequenceEqual(h, hash)
}

// VerifyCheckWord reports whether hash is the check word of message.
func VerifyCheckWord(message any, hash Hash) bool {
	return VerifyCheckWordWithOptions(message, hash, Options{})
}

// VerifyCheckWordWithOptions is VerifyCheckWord with an explicit compliance mode.
func VerifyCheckWordWithOptions(message any, hash Hash, opts Options) bool {
	w, err := CheckWordWithOptions(message, opts)
	if err != nil {
		return false
	}
	return SequenceEqual(w, hash)
}

// SequenceEqual reports whether a and b have the same length and equal
// elements in the same order. Nil and empty sequences are equal.
func SequenceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
