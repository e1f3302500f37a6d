package moneroutil

// PublicKey is the canonical 32-byte encoding of a Point used in a
// verifier-facing role (a ring member's stealth address or amount
// commitment, a pseudo-output commitment, ...). It is bit-identical to a
// KeyImage; the distinct type exists so a caller can't hand a key image to
// a function expecting a public key (or vice versa) without an explicit
// conversion.
type PublicKey [32]byte

// KeyImage is the canonical 32-byte encoding of the linking-tag Point
// `secret_x * Hp(stealth_address)`.
type KeyImage [32]byte

func (k PublicKey) Point() (*Point, error) { return Decode(k) }
func (k KeyImage) Point() (*Point, error)  { return Decode(k) }

// HashToPoint implements Hp(·): a deterministic map from arbitrary bytes
// (in this scheme, always a 32-byte public-key encoding) to a point in the
// curve's main subgroup.
//
// Monero's own hash_to_ec uses an Elligator2-style field map that the
// scalar/point layer this package wraps (filippo.io/edwards25519) does not
// expose, so this implements the standard try-and-increment construction
// instead: hash, attempt to decode the digest as a compressed point, and
// otherwise rehash and retry. A decodable digest succeeds roughly half the
// time, so the loop terminates quickly. The result is cleared into the
// main subgroup with MulCofactor.
func HashToPoint(data []byte) *Point {
	h := Keccak256(data)
	for {
		if p, err := Decode(h); err == nil {
			return p.MulCofactor()
		}
		h = Keccak256(h[:])
	}
}

// Hp is the scheme-facing name for HashToPoint applied to a stealth
// address.
func Hp(stealthAddress PublicKey) *Point {
	return HashToPoint(stealthAddress[:])
}
