package clsag

import (
	"fmt"

	"clsagring/moneroutil"
	"clsagring/transcript"
)

// buildGGInputTranscript absorbs the shared CLSAG-GG preamble into tr and
// returns the unreduced input hash. cPrimeDiv8 is the 1/8*C' point,
// already in the form both the signer and verifier absorb byte-for-byte
// identically.
func buildGGInputTranscript(tr *transcript.Transcript, m moneroutil.Hash, ring []RingElementGG, cPrimeDiv8 moneroutil.PublicKey, ki moneroutil.KeyImage) moneroutil.Hash {
	tr.AddHash(m)
	for _, elem := range ring {
		tr.AddPubKey(elem.StealthAddress)
		tr.AddPubKey(elem.AmountCommitment)
	}
	tr.AddPubKey(cPrimeDiv8)
	tr.AddKeyImage(ki)
	return tr.CalcHashNoReduce()
}

// SignCLSAGGG implements the CLSAG-GG signer. cPrime is the pseudo-output
// amount commitment at full scale (not pre-div8'd); the signature's own
// K1 is produced and stored in div8 form per the scheme's storage
// convention.
func SignCLSAGGG(m moneroutil.Hash, ring []RingElementGG, cPrime *moneroutil.Point, ki moneroutil.KeyImage, secretX, secretF *moneroutil.Scalar, pi int) (*SignatureGG, error) {
	n := len(ring)
	if n == 0 {
		return nil, ErrEmptyRing
	}
	if pi < 0 || pi >= n {
		return nil, ErrIndexOutOfRange
	}

	kiBase := moneroutil.Hp(ring[pi].StealthAddress)
	kiDecoded, err := moneroutil.Decode(ki)
	if err != nil {
		return nil, fmt.Errorf("clsag: key image: %w", err)
	}
	if !kiBase.ScalarMult(secretX).Equal(kiDecoded) {
		return nil, ErrKeyImageMismatch
	}

	k1Div8 := kiBase.ScalarMult(moneroutil.Inv8.Multiply(secretF))
	sigK1 := k1Div8.AsPublicKey()
	k1 := k1Div8.MulCofactor()

	cPrimeDiv8 := cPrime.ScalarMult(moneroutil.Inv8).AsPublicKey()

	tr := transcript.New()
	inputHash := buildGGInputTranscript(tr, m, ring, cPrimeDiv8, ki)

	mu := aggregationCoefficients(tr, inputHash, tagGGLayer0, tagGGLayer1)
	mu0, mu1 := mu[0], mu[1]

	w := make([]*moneroutil.Point, n)
	for i, elem := range ring {
		stealth, err := moneroutil.Decode(elem.StealthAddress)
		if err != nil {
			return nil, fmt.Errorf("clsag: ring[%d].stealth_address: %w", i, err)
		}
		amount, err := moneroutil.Decode(elem.AmountCommitment)
		if err != nil {
			return nil, fmt.Errorf("clsag: ring[%d].amount_commitment: %w", i, err)
		}
		w[i] = stealth.ScalarMult(mu0).Add(amount.MulCofactor().Subtract(cPrime).ScalarMult(mu1))
	}

	aggSecret := mu0.Multiply(secretX).Add(mu1.Multiply(secretF))

	kiPoint, err := moneroutil.Decode(ki)
	if err != nil {
		return nil, fmt.Errorf("clsag: key image: %w", err)
	}
	wKi := kiPoint.ScalarMult(mu0).Add(k1.ScalarMult(mu1))

	alpha := moneroutil.RandomScalar()
	// Each link of the challenge chain is hashed on a fresh transcript over
	// (tag, inputHash, commitments) only, so the signer's walk from pi+1 and
	// the verifier's walk from 0 hash identical inputs at every position.
	tr = transcript.New()
	tr.Add32Chars(tagGGChallenge)
	tr.AddHash(inputHash)
	tr.AddPoint(moneroutil.ScalarMultG(alpha))
	tr.AddPoint(kiBase.ScalarMult(alpha))
	cPrev := tr.CalcHash()

	r := make([]*moneroutil.Scalar, n)
	for i := range r {
		r[i] = moneroutil.RandomScalar()
	}

	var sigC *moneroutil.Scalar
	for j := 0; j < n-1; j++ {
		i := (pi + 1 + j) % n
		if i == 0 {
			sigC = cPrev
		}
		tr = transcript.New()
		tr.Add32Chars(tagGGChallenge)
		tr.AddHash(inputHash)
		tr.AddPoint(moneroutil.ScalarMultG(r[i]).Add(w[i].ScalarMult(cPrev)))
		tr.AddPoint(moneroutil.Hp(ring[i].StealthAddress).ScalarMult(r[i]).Add(wKi.ScalarMult(cPrev)))
		cPrev = tr.CalcHash()
	}
	if pi == 0 {
		sigC = cPrev
	}

	r[pi] = alpha.Subtract(cPrev.Multiply(aggSecret))

	return &SignatureGG{C: sigC, R: r, K1: sigK1}, nil
}

// VerifyCLSAGGG implements the CLSAG-GG verifier. cPrime is the
// div8-encoded pseudo-output amount commitment — the exact 32 bytes the
// signer absorbed when it scaled its own full-scale C' by 1/8 — not the
// full-scale point SignCLSAGGG takes; callers must convert.
func VerifyCLSAGGG(m moneroutil.Hash, ring []RingElementGG, cPrime moneroutil.PublicKey, ki moneroutil.KeyImage, sig *SignatureGG) (bool, error) {
	n := len(ring)
	if n == 0 {
		return false, ErrEmptyRing
	}
	if len(sig.R) != n {
		return false, ErrSignatureShapeMismatch
	}

	kiPoint, err := moneroutil.DecodeChecked(ki)
	if err != nil {
		return false, fmt.Errorf("clsag: key image: %w", err)
	}

	cPrimePoint, err := moneroutil.DecodeChecked(cPrime)
	if err != nil {
		return false, fmt.Errorf("clsag: pseudo-output commitment: %w", err)
	}
	cPrimePt := cPrimePoint.MulCofactor()

	k1Point, err := moneroutil.DecodeChecked(sig.K1)
	if err != nil {
		return false, fmt.Errorf("clsag: K1: %w", err)
	}
	k1 := k1Point.MulCofactor()

	tr := transcript.New()
	inputHash := buildGGInputTranscript(tr, m, ring, cPrime, ki)

	mu := aggregationCoefficients(tr, inputHash, tagGGLayer0, tagGGLayer1)
	mu0, mu1 := mu[0], mu[1]

	w := make([]*moneroutil.Point, n)
	for i, elem := range ring {
		stealth, err := moneroutil.DecodeChecked(elem.StealthAddress)
		if err != nil {
			return false, fmt.Errorf("clsag: ring[%d].stealth_address: %w", i, err)
		}
		amount, err := moneroutil.DecodeChecked(elem.AmountCommitment)
		if err != nil {
			return false, fmt.Errorf("clsag: ring[%d].amount_commitment: %w", i, err)
		}
		w[i] = stealth.ScalarMult(mu0).Add(amount.MulCofactor().Subtract(cPrimePt).ScalarMult(mu1))
	}

	wKi := kiPoint.ScalarMult(mu0).Add(k1.ScalarMult(mu1))

	cPrev := sig.C
	for i, elem := range ring {
		tr = transcript.New()
		tr.Add32Chars(tagGGChallenge)
		tr.AddHash(inputHash)
		tr.AddPoint(moneroutil.ScalarMultG(sig.R[i]).Add(w[i].ScalarMult(cPrev)))
		tr.AddPoint(moneroutil.Hp(elem.StealthAddress).ScalarMult(sig.R[i]).Add(wKi.ScalarMult(cPrev)))
		cPrev = tr.CalcHash()
	}

	return cPrev.Equal(sig.C), nil
}
