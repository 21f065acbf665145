// Package hajihash computes SHA3-256 digests and 2-byte check words over the
// canonical form of arbitrary Go values, and compares values and digests.
//
// Canonicalization is explicit and versioned (CanonVersion). Non-byte values
// are hashed through their canonical text form, so values with the same text
// form (e.g. 5 and "5") share a digest. Byte slices and byte arrays are hashed
// directly.
//
// API stability:
//
// Stable (SemVer-protected):
//   - Digest, CheckWord, VerifyDigest, VerifyCheckWord, SequenceEqual, Sum.
//   - The hajihash-canon-1 rules and the Kind/RuleID error taxonomy.
//
// Experimental:
//   - Hash.CID and HashFromCID (content addressing through IPFS CIDs).
//
// All functions are pure and safe for concurrent use.
package hajihash
