package moneroutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInv8RoundTrips(t *testing.T) {
	assert := assert.New(t)

	eight := ScalarFromUint64(8)
	one := eight.Multiply(Inv8)

	var oneBytes [32]byte
	oneBytes[0] = 1
	wantOne, err := ScalarFromCanonicalBytes(oneBytes)
	assert.NoError(err)
	assert.True(one.Equal(wantOne))
}

func TestScalarArithmeticIsConsistent(t *testing.T) {
	assert := assert.New(t)

	a := RandomScalar()
	b := RandomScalar()

	sum := a.Add(b)
	assert.True(sum.Subtract(b).Equal(a))

	product := a.Multiply(b)
	assert.True(product.Multiply(b.Invert()).Equal(a))

	assert.True(a.Negate().Negate().Equal(a))
}

func TestScalarFromWideBytesIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	digest := Hash{0x01, 0x02, 0x03}
	a := ScalarFromWideBytes(digest)
	b := ScalarFromWideBytes(digest)
	assert.True(a.Equal(b))
}

func TestScalarFromCanonicalBytesRejectsNonCanonical(t *testing.T) {
	assert := assert.New(t)

	var tooLarge [32]byte
	for i := range tooLarge {
		tooLarge[i] = 0xff
	}
	_, err := ScalarFromCanonicalBytes(tooLarge)
	assert.Error(err)
}

func TestRandomScalarIsNotConstant(t *testing.T) {
	assert := assert.New(t)

	a := RandomScalar()
	b := RandomScalar()
	assert.False(a.Equal(b))
}
