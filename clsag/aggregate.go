package clsag

import (
	"clsagring/moneroutil"
	"clsagring/transcript"
)

// aggregationCoefficients derives one aggregation coefficient per layer
// tag: given a transcript already holding the scheme's input history and
// the unreduced input hash, each coefficient is produced by appending
// (tag, inputHash) and finalizing, so each coefficient after the first
// also covers the earlier layers' (tag, inputHash) appends. The appends are
// left in the transcript on return; the challenge chain that follows is
// hashed on fresh transcripts and does not build on them.
func aggregationCoefficients(t *transcript.Transcript, inputHash moneroutil.Hash, tags ...[32]byte) []*moneroutil.Scalar {
	coeffs := make([]*moneroutil.Scalar, len(tags))
	for i, tg := range tags {
		t.Add32Chars(tg)
		t.AddHash(inputHash)
		coeffs[i] = t.CalcHash()
	}
	return coeffs
}
