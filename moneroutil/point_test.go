package moneroutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulCofactorEightTimesInv8RoundTrips(t *testing.T) {
	assert := assert.New(t)

	p := ScalarMultG(RandomScalar())
	div8 := p.ScalarMult(Inv8)
	assert.True(div8.MulCofactor().Equal(p))
}

func TestDecodeEncodeRoundTrips(t *testing.T) {
	assert := assert.New(t)

	p := ScalarMultG(RandomScalar())
	enc := p.Encode()

	decoded, err := Decode(enc)
	assert.NoError(err)
	assert.True(decoded.Equal(p))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	var garbage [32]byte
	for i := range garbage {
		garbage[i] = 0xff
	}
	_, err := Decode(garbage)
	assert.Error(err)
}

func TestGAndXAreInMainSubgroup(t *testing.T) {
	assert := assert.New(t)

	assert.True(G.IsInMainSubgroup())
	assert.True(X.IsInMainSubgroup())
}

func TestDecodeCheckedAcceptsMainSubgroupPoints(t *testing.T) {
	assert := assert.New(t)

	p := ScalarMultG(RandomScalar())
	decoded, err := DecodeChecked(p.AsPublicKey())
	assert.NoError(err)
	assert.True(decoded.Equal(p))
}

func TestDecodeCheckedRejectsPointOutsideMainSubgroup(t *testing.T) {
	assert := assert.New(t)

	// The identity is in the main subgroup trivially (order 1 divides l);
	// a point with a torsion component is what DecodeChecked exists to
	// reject. We take a random curve point by hashing until Hp's
	// intermediate (pre-MulCofactor) digest decodes, which lands outside
	// the prime-order subgroup roughly 7/8 of the time before clearing.
	var seed [32]byte
	seed[0] = 0x02
	h := Keccak256(seed[:])
	var raw *Point
	for {
		p, err := Decode(h)
		if err == nil {
			raw = p
			break
		}
		h = Keccak256(h[:])
	}
	if raw.IsInMainSubgroup() {
		t.Skip("sampled point happened to already lie in the main subgroup")
	}
	_, err := DecodeChecked(raw.Encode())
	assert.Error(err)
}

func TestXIsIndependentOfG(t *testing.T) {
	assert := assert.New(t)
	assert.False(X.Equal(G))
}

func TestHashToPointIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	a := HashToPoint([]byte("same input"))
	b := HashToPoint([]byte("same input"))
	assert.True(a.Equal(b))
	assert.True(a.IsInMainSubgroup())
}
