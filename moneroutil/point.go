package moneroutil

import (
	"errors"

	"filippo.io/edwards25519"
)

// Point is an element of the Ed25519 curve group (order 8*l, cofactor 8).
type Point struct {
	p *edwards25519.Point
}

func wrapPoint(p *edwards25519.Point) *Point {
	return &Point{p: p}
}

// NewIdentityPoint returns the group identity.
func NewIdentityPoint() *Point {
	return wrapPoint(edwards25519.NewIdentityPoint())
}

// G is the fixed Ed25519 base point, the first-layer generator shared by
// CLSAG-GG and CLSAG-GGXG.
var G = wrapPoint(edwards25519.NewGeneratorPoint())

// X is the second, independent generator CLSAG-GGXG's layer 2 is bound to.
// It is derived the same way Monero derives its auxiliary Pedersen
// generator H from G: hash-to-point of a fixed domain label, which lands
// squarely in the main subgroup by construction (see Hp in hash.go).
var X = HashToPoint([]byte("CRYPTO_HDS_CLSAG_GENERATOR_X"))

func (p *Point) Add(other *Point) *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().Add(p.p, other.p))
}

func (p *Point) Subtract(other *Point) *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().Subtract(p.p, other.p))
}

func (p *Point) Negate() *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().Negate(p.p))
}

// ScalarMult returns s*p.
func (p *Point) ScalarMult(s *Scalar) *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().ScalarMult(s.inner(), p.p))
}

// ScalarMultG returns s*G, the scheme's first generator.
func ScalarMultG(s *Scalar) *Point {
	return wrapPoint(edwards25519.NewIdentityPoint().ScalarBaseMult(s.inner()))
}

// ScalarMultX returns s*X, the scheme's second generator (CLSAG-GGXG only).
func ScalarMultX(s *Scalar) *Point {
	return X.ScalarMult(s)
}

// MulCofactor returns 8*p, the spec's "mul8" operation, computed by three
// doublings rather than a scalar multiplication (cheaper, and correct for
// points outside the prime-order subgroup, which a general-purpose Scalar
// multiplication is not guaranteed to handle predictably).
func (p *Point) MulCofactor() *Point {
	r := edwards25519.NewIdentityPoint().Add(p.p, p.p)
	r.Add(r, r)
	r.Add(r, r)
	return wrapPoint(r)
}

func (p *Point) Equal(other *Point) bool {
	return p.p.Equal(other.p) == 1
}

func (p *Point) IsIdentity() bool {
	return p.Equal(NewIdentityPoint())
}

// Encode returns the canonical 32-byte compressed encoding.
func (p *Point) Encode() (out [32]byte) {
	copy(out[:], p.p.Bytes())
	return
}

func (p *Point) AsPublicKey() PublicKey {
	return PublicKey(p.Encode())
}

func (p *Point) AsKeyImage() KeyImage {
	return KeyImage(p.Encode())
}

// ErrInvalidPoint is returned by Decode/DecodeChecked when the supplied
// bytes are not a canonical point encoding, or (DecodeChecked only) when
// the point does not lie in the main subgroup.
var ErrInvalidPoint = errors.New("moneroutil: invalid point encoding")

// Decode parses a canonical 32-byte point encoding without checking
// subgroup membership.
func Decode(b [32]byte) (*Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(b[:])
	if err != nil {
		return nil, ErrInvalidPoint
	}
	// SetBytes also accepts non-canonical encodings of valid points.
	var canon [32]byte
	copy(canon[:], p.Bytes())
	if canon != b {
		return nil, ErrInvalidPoint
	}
	return wrapPoint(p), nil
}

// DecodeChecked parses a canonical 32-byte point encoding and rejects
// points outside the main (order-l) subgroup, required for key images and
// every signature-embedded point a verifier consumes.
//
// Membership is tested via the classic (l-1)*P + P == O trick: l-1 is a
// valid canonical Scalar (l itself is not, being congruent to 0 mod l), so
// this computes l*P using only the public constant-time scalar multiply,
// without needing a non-canonical "scalar representing l".
func DecodeChecked(b [32]byte) (*Point, error) {
	p, err := Decode(b)
	if err != nil {
		return nil, err
	}
	if !p.IsInMainSubgroup() {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

func (p *Point) IsInMainSubgroup() bool {
	lMinus1P := p.ScalarMult(lMinus1)
	total := lMinus1P.Add(p)
	return total.IsIdentity()
}

// lMinus1 is l-1, the group order minus one, little-endian. l itself
// cannot be represented as a canonical Scalar (it would be "0 mod l"); see
// IsInMainSubgroup.
var lMinus1 = mustScalarFromCanonicalBytes([32]byte{
	0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
})

func mustScalarFromCanonicalBytes(b [32]byte) *Scalar {
	s, err := ScalarFromCanonicalBytes(b)
	if err != nil {
		panic(err)
	}
	return s
}
