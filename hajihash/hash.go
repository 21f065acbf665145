package hajihash

import (
	"encoding/hex"
	"fmt"

	"xdao.co/hajihash/cidutil"
)

// Hash is an ordered sequence of digest bytes: either a full Size-byte
// digest or its CheckWordSize-byte prefix.
type Hash []byte

// String renders h as lowercase hex.
func (h Hash) String() string {
	return hex.EncodeToString(h)
}

// Equal reports whether h and other hold the same bytes in the same order.
func (h Hash) Equal(other Hash) bool {
	return SequenceEqual(h, other)
}

// CheckWord returns a copy of the first CheckWordSize bytes of a full digest.
// It returns nil when h is shorter than a check word.
func (h Hash) CheckWord() Hash {
	if len(h) < CheckWordSize {
		return nil
	}
	return append(Hash(nil), h[:CheckWordSize]...)
}

// CID returns the CIDv1 (raw + sha3-256) addressing the content h was computed from.
// Only full digests have a CID.
func (h Hash) CID() (string, error) {
	c, err := cidutil.CIDv1RawSHA3256FromDigest(h)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// ParseHash decodes a hex rendered Hash. Both full digests and check words
// are accepted.
func ParseHash(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hash hex: %w", err)
	}
	switch len(b) {
	case Size, CheckWordSize:
		return Hash(b), nil
	default:
		return nil, fmt.Errorf("hash must be %d or %d bytes, got %d", Size, CheckWordSize, len(b))
	}
}

// HashFromCID recovers the full digest addressed by a CIDv1 (raw + sha3-256).
func HashFromCID(s string) (Hash, error) {
	b, err := cidutil.DigestFromCID(s)
	if err != nil {
		return nil, err
	}
	return Hash(b), nil
}
