package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	// sha3-256 must be registered for multihash.Sum.
	_ "github.com/multiformats/go-multihash/register/sha3"
)

// SHA3256Size is the digest length carried by a sha3-256 multihash.
const SHA3256Size = 32

// CIDv1RawSHA3256 returns a CIDv1 string using the "raw" multicodec
// and a sha3-256 multihash of data.
func CIDv1RawSHA3256(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA3_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA3_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// CIDv1RawSHA3256FromDigest wraps an already computed sha3-256 digest in a
// CIDv1 (raw + sha3-256) without rehashing.
func CIDv1RawSHA3256FromDigest(digest []byte) (cid.Cid, error) {
	if len(digest) != SHA3256Size {
		return cid.Undef, fmt.Errorf("sha3-256 digest must be %d bytes, got %d", SHA3256Size, len(digest))
	}
	mh, err := multihash.Encode(digest, multihash.SHA3_256)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// DigestFromCID returns the sha3-256 digest carried by a CIDv1 (raw + sha3-256).
func DigestFromCID(s string) ([]byte, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return nil, err
	}
	if c.Version() != 1 {
		return nil, fmt.Errorf("expected CIDv1, got v%d", c.Version())
	}
	if c.Type() != cid.Raw {
		return nil, fmt.Errorf("expected raw codec, got 0x%x", c.Type())
	}
	dec, err := multihash.Decode(c.Hash())
	if err != nil {
		return nil, err
	}
	if dec.Code != multihash.SHA3_256 {
		return nil, fmt.Errorf("expected sha3-256 multihash, got %s", multihash.Codes[dec.Code])
	}
	if len(dec.Digest) != SHA3256Size {
		return nil, fmt.Errorf("sha3-256 digest must be %d bytes, got %d", SHA3256Size, len(dec.Digest))
	}
	return append([]byte(nil), dec.Digest...), nil
}
