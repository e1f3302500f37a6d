package moneroutil

import (
	"crypto/rand"

	"filippo.io/edwards25519"
)

// Scalar is an element of the prime-order scalar field of the Ed25519
// group. It wraps filippo.io/edwards25519's constant-time implementation;
// the zero value is not valid, use NewScalar or one of the constructors.
type Scalar struct {
	s *edwards25519.Scalar
}

func wrapScalar(s *edwards25519.Scalar) *Scalar {
	return &Scalar{s: s}
}

// NewScalar returns the scalar 0.
func NewScalar() *Scalar {
	return wrapScalar(edwards25519.NewScalar())
}

// RandomScalar samples a uniformly random scalar using a cryptographic RNG,
// mirroring moneroutil.RandomScalar's "reduce from 64 random bytes" shape.
func RandomScalar() *Scalar {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return wrapScalar(s)
}

// ScalarFromCanonicalBytes decodes a scalar that must already be reduced
// modulo the group order l.
func ScalarFromCanonicalBytes(b [32]byte) (*Scalar, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		return nil, err
	}
	return wrapScalar(s), nil
}

// ScalarFromWideBytes reduces an arbitrary 32-byte digest modulo the group
// order l. The digest is treated as a little-endian integer and
// zero-extended to 64 bytes before the wide reduction, which is the
// identity map on little-endian integers below 2^256.
func ScalarFromWideBytes(digest Hash) *Scalar {
	var wide [64]byte
	copy(wide[:32], digest[:])
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails on wrong-length input; wide is fixed at 64.
		panic(err)
	}
	return wrapScalar(s)
}

// ScalarFromUint64 builds the small scalar constant n, used only for fixed
// constants such as inv8's defining equation 8*inv8 == 1.
func ScalarFromUint64(n uint64) *Scalar {
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(n >> (8 * i))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return wrapScalar(s)
}

func (s *Scalar) Add(other *Scalar) *Scalar {
	return wrapScalar(edwards25519.NewScalar().Add(s.s, other.s))
}

func (s *Scalar) Subtract(other *Scalar) *Scalar {
	return wrapScalar(edwards25519.NewScalar().Subtract(s.s, other.s))
}

func (s *Scalar) Multiply(other *Scalar) *Scalar {
	return wrapScalar(edwards25519.NewScalar().Multiply(s.s, other.s))
}

func (s *Scalar) Negate() *Scalar {
	return wrapScalar(edwards25519.NewScalar().Negate(s.s))
}

func (s *Scalar) Invert() *Scalar {
	return wrapScalar(edwards25519.NewScalar().Invert(s.s))
}

func (s *Scalar) Equal(other *Scalar) bool {
	return s.s.Equal(other.s) == 1
}

func (s *Scalar) Bytes() (out [32]byte) {
	copy(out[:], s.s.Bytes())
	return
}

func (s *Scalar) inner() *edwards25519.Scalar {
	return s.s
}

// Inv8 is the fixed constant 1/8 mod l required by the div8 encoding
// convention: signatures store K1/K2/K3 pre-multiplied by Inv8 so that
// MulCofactor round-trips them back to the real point.
var Inv8 = ScalarFromUint64(8).Invert()
