package moneroutil

import (
	"errors"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// base58Alphabet, and the chunked 11-chars-to-8-bytes / 7-chars-to-5-bytes
// grouping below, are Monero's own base58 variant (distinct from Bitcoin's
// base58check). Here it backs a generic single-payload checksummed
// encoding for displaying a PublicKey or KeyImage — a human-facing
// convenience, not part of the ring-signature core.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Lookup [256]int

func init() {
	for i := range base58Lookup {
		base58Lookup[i] = -1
	}
	for i, c := range base58Alphabet {
		base58Lookup[c] = i
	}
}

var (
	ErrBase58Length    = errors.New("moneroutil: unexpected base58 payload length")
	ErrBase58Char      = errors.New("moneroutil: invalid base58 character")
	ErrBase58Checksum  = errors.New("moneroutil: base58 checksum mismatch")
	ErrBase58ShortBody = errors.New("moneroutil: decoded base58 body too short for tag+checksum")
)

// keccakChecksum computes the 4-byte checksum EncodeBase58Check appends,
// via golang.org/x/crypto/sha3's Keccak-256 (the legacy, pre-NIST variant
// Monero also uses), kept distinct from Keccak256 in keccak.go's
// github.com/ebfe/keccak so this package exercises both Keccak
// implementations.
func keccakChecksum(data []byte) [4]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	sum := h.Sum(nil)
	var out [4]byte
	copy(out[:], sum[:4])
	return out
}

// EncodeBase58Check encodes a single byte tag (a caller-chosen role marker,
// e.g. distinguishing a PublicKey display string from a KeyImage one) and a
// 32-byte payload into Monero's base58 alphabet with a trailing 4-byte
// Keccak checksum, group-encoded 8 raw bytes at a time into 11 base58
// characters (with Monero's odd final partial group, 5 bytes into 7 chars).
func EncodeBase58Check(tag byte, payload [32]byte) string {
	body := make([]byte, 0, 1+32+4)
	body = append(body, tag)
	body = append(body, payload[:]...)
	sum := keccakChecksum(body)
	body = append(body, sum[:]...)
	return encodeBase58Groups(body)
}

// DecodeBase58Check reverses EncodeBase58Check, rejecting malformed
// characters, wrong lengths, and checksum mismatches.
func DecodeBase58Check(s string) (tag byte, payload [32]byte, err error) {
	body, err := decodeBase58Groups(s)
	if err != nil {
		return 0, payload, err
	}
	if len(body) != 1+32+4 {
		return 0, payload, ErrBase58ShortBody
	}
	tag = body[0]
	copy(payload[:], body[1:33])
	want := keccakChecksum(body[:33])
	if string(want[:]) != string(body[33:37]) {
		return 0, payload, ErrBase58Checksum
	}
	return tag, payload, nil
}

func encodeBase58Groups(data []byte) string {
	var out strings.Builder
	for i := 0; i < len(data); {
		rem := len(data) - i
		groupBytes := 8
		groupChars := 11
		if rem < 8 {
			groupBytes = rem
			groupChars = base58CharsFor(rem)
		}
		chunk := data[i : i+groupBytes]
		i += groupBytes

		val := new(big.Int).SetBytes(chunk)
		chars := make([]byte, groupChars)
		for j := groupChars - 1; j >= 0; j-- {
			m := new(big.Int)
			val.DivMod(val, big.NewInt(58), m)
			chars[j] = base58Alphabet[m.Int64()]
		}
		out.Write(chars)
	}
	return out.String()
}

func decodeBase58Groups(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrBase58Length
	}

	out := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		rem := len(s) - i
		var chunkChars, chunkBytes int
		switch {
		case rem >= 11:
			chunkChars, chunkBytes = 11, 8
		case rem == 7:
			chunkChars, chunkBytes = 7, 5
		default:
			return nil, ErrBase58Length
		}

		chunk := s[i : i+chunkChars]
		i += chunkChars

		val := big.NewInt(0)
		for _, c := range []byte(chunk) {
			idx := base58Lookup[c]
			if idx < 0 {
				return nil, ErrBase58Char
			}
			val.Mul(val, big.NewInt(58))
			val.Add(val, big.NewInt(int64(idx)))
		}

		buf := make([]byte, chunkBytes)
		val.FillBytes(buf)
		out = append(out, buf...)
	}
	return out, nil
}

// base58CharsFor returns the encoded character count for a final partial
// group of n raw bytes, matching Monero's table (n=8 -> 11 is the common
// case, handled separately; only n=5 occurs in EncodeBase58Check's fixed
// 37-byte body: 1 tag + 32 payload + 4 checksum = 37 = 4*8 + 5).
func base58CharsFor(n int) int {
	switch n {
	case 1:
		return 2
	case 2:
		return 3
	case 3:
		return 5
	case 4:
		return 6
	case 5:
		return 7
	case 6:
		return 9
	case 7:
		return 10
	default:
		return 11
	}
}
