package clsag

import "errors"

// Precondition and shape failures of the signers, verifiers and signature
// parsers: fatal to the call, recovered by the caller. Named as
// package-level sentinels rather than ad-hoc fmt.Errorf strings, so callers
// can errors.Is against them. Point-decoding failures are returned as a
// wrapped moneroutil.ErrInvalidPoint, not as ErrInvalidPoint below.
var (
	ErrEmptyRing              = errors.New("clsag: ring is empty")
	ErrIndexOutOfRange        = errors.New("clsag: secret index out of range")
	ErrKeyImageMismatch       = errors.New("clsag: key image does not match secret")
	ErrSignatureShapeMismatch = errors.New("clsag: response vector length does not match ring size")
	ErrInvalidPoint           = errors.New("clsag: point is not a valid main-subgroup element")
	ErrTruncatedSignature     = errors.New("clsag: signature bytes are the wrong length for the given ring size")
	ErrNonCanonicalScalar     = errors.New("clsag: encoded scalar is not in canonical form")
)
