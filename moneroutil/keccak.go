package moneroutil

import (
	"github.com/ebfe/keccak"
)

const (
	ChecksumLength = 4
	HashLength     = 32
)

// Hash is an opaque 32-byte digest, the output of Keccak256.
type Hash [HashLength]byte

type Checksum [ChecksumLength]byte

var NullHash = Hash{}

// Keccak256 hashes the concatenation of data using Keccak-256 (not SHA3-256;
// Monero-derived schemes use the original Keccak padding).
func Keccak256(data ...[]byte) (result Hash) {
	h := keccak.New256()
	for _, b := range data {
		h.Write(b)
	}
	r := h.Sum(nil)
	copy(result[:], r)
	return
}
