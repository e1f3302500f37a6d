// Package transcript implements the Fiat–Shamir sponge the CLSAG signer
// and verifier use to derive aggregation coefficients and challenges: an
// accumulator that absorbs items into a growing buffer and computes each
// challenge over everything absorbed so far, without consuming that
// history.
package transcript

import (
	"bytes"

	"clsagring/moneroutil"
)

// Transcript is a stateful, append-only byte accumulator. Each Calc* call
// hashes the entire history absorbed since the Transcript was created; it
// does not consume or reset that history, so later absorbs build on top of
// earlier finalizations.
//
// A Transcript is cheap to create and must never be shared across
// concurrent signing/verification calls: build one per call.
type Transcript struct {
	buf bytes.Buffer
}

func New() *Transcript {
	return &Transcript{}
}

func (t *Transcript) AddScalar(s *moneroutil.Scalar) *Transcript {
	b := s.Bytes()
	t.buf.Write(b[:])
	return t
}

func (t *Transcript) AddPoint(p *moneroutil.Point) *Transcript {
	b := p.Encode()
	t.buf.Write(b[:])
	return t
}

func (t *Transcript) AddPubKey(k moneroutil.PublicKey) *Transcript {
	t.buf.Write(k[:])
	return t
}

func (t *Transcript) AddKeyImage(k moneroutil.KeyImage) *Transcript {
	t.buf.Write(k[:])
	return t
}

func (t *Transcript) AddHash(h moneroutil.Hash) *Transcript {
	t.buf.Write(h[:])
	return t
}

// Add32Chars appends a fixed 32-byte domain-separation tag.
func (t *Transcript) Add32Chars(tag [32]byte) *Transcript {
	t.buf.Write(tag[:])
	return t
}

// CalcHashNoReduce hashes everything absorbed so far and returns the raw,
// unreduced 32-byte digest.
func (t *Transcript) CalcHashNoReduce() moneroutil.Hash {
	return moneroutil.Keccak256(t.buf.Bytes())
}

// CalcHash hashes everything absorbed so far and reduces the digest modulo
// the group order, yielding a challenge/coefficient scalar.
func (t *Transcript) CalcHash() *moneroutil.Scalar {
	return moneroutil.ScalarFromWideBytes(t.CalcHashNoReduce())
}
