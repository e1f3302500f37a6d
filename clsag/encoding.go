package clsag

import "clsagring/moneroutil"

// Wire layout, following the field order of the signature structs:
// SignatureGG   = C || R[0..n) || K1
// SignatureGGXG = C || Rg[0..n) || Rx[0..n) || K1 || K2 || K3
// Every scalar and point is its fixed 32-byte canonical encoding, so the
// total length is a direct function of the ring size the caller supplies.

func ggSignatureLen(ringSize int) int {
	return 32*(ringSize+1) + 32
}

func ggxgSignatureLen(ringSize int) int {
	return 32*(2*ringSize+1) + 3*32
}

// Bytes serializes sig into the fixed-length wire layout above.
func (sig *SignatureGG) Bytes() []byte {
	out := make([]byte, 0, ggSignatureLen(len(sig.R)))
	out = appendScalar(out, sig.C)
	for _, r := range sig.R {
		out = appendScalar(out, r)
	}
	out = append(out, sig.K1[:]...)
	return out
}

// ParseSignatureGG decodes a SignatureGG previously produced by Bytes, given
// the ring size it was signed against. The wire layout carries no length
// prefix of its own; ring size is out-of-band context the caller already
// has (it comes from the same transaction data the ring itself does).
func ParseSignatureGG(ringSize int, data []byte) (*SignatureGG, error) {
	if ringSize <= 0 {
		return nil, ErrEmptyRing
	}
	if len(data) != ggSignatureLen(ringSize) {
		return nil, ErrTruncatedSignature
	}

	r := newFieldReader(data)
	c, err := r.scalar()
	if err != nil {
		return nil, err
	}
	resp := make([]*moneroutil.Scalar, ringSize)
	for i := range resp {
		if resp[i], err = r.scalar(); err != nil {
			return nil, err
		}
	}
	k1 := r.publicKey()

	return &SignatureGG{C: c, R: resp, K1: k1}, nil
}

// Bytes serializes sig into the fixed-length wire layout above.
func (sig *SignatureGGXG) Bytes() []byte {
	out := make([]byte, 0, ggxgSignatureLen(len(sig.Rg)))
	out = appendScalar(out, sig.C)
	for _, r := range sig.Rg {
		out = appendScalar(out, r)
	}
	for _, r := range sig.Rx {
		out = appendScalar(out, r)
	}
	out = append(out, sig.K1[:]...)
	out = append(out, sig.K2[:]...)
	out = append(out, sig.K3[:]...)
	return out
}

// ParseSignatureGGXG is ParseSignatureGG's counterpart for SignatureGGXG.
func ParseSignatureGGXG(ringSize int, data []byte) (*SignatureGGXG, error) {
	if ringSize <= 0 {
		return nil, ErrEmptyRing
	}
	if len(data) != ggxgSignatureLen(ringSize) {
		return nil, ErrTruncatedSignature
	}

	r := newFieldReader(data)
	c, err := r.scalar()
	if err != nil {
		return nil, err
	}
	rg := make([]*moneroutil.Scalar, ringSize)
	for i := range rg {
		if rg[i], err = r.scalar(); err != nil {
			return nil, err
		}
	}
	rx := make([]*moneroutil.Scalar, ringSize)
	for i := range rx {
		if rx[i], err = r.scalar(); err != nil {
			return nil, err
		}
	}
	k1 := r.publicKey()
	k2 := r.publicKey()
	k3 := r.publicKey()

	return &SignatureGGXG{C: c, Rg: rg, Rx: rx, K1: k1, K2: k2, K3: k3}, nil
}

func appendScalar(out []byte, s *moneroutil.Scalar) []byte {
	b := s.Bytes()
	return append(out, b[:]...)
}

// fieldReader walks a byte slice 32 bytes at a time. Callers size the input
// exactly (ggSignatureLen/ggxgSignatureLen) before construction, so it never
// needs to check for short reads.
type fieldReader struct {
	data []byte
	pos  int
}

func newFieldReader(data []byte) *fieldReader {
	return &fieldReader{data: data}
}

func (r *fieldReader) next32() (out [32]byte) {
	copy(out[:], r.data[r.pos:r.pos+32])
	r.pos += 32
	return
}

func (r *fieldReader) scalar() (*moneroutil.Scalar, error) {
	s, err := moneroutil.ScalarFromCanonicalBytes(r.next32())
	if err != nil {
		return nil, ErrNonCanonicalScalar
	}
	return s, nil
}

func (r *fieldReader) publicKey() moneroutil.PublicKey {
	return moneroutil.PublicKey(r.next32())
}
