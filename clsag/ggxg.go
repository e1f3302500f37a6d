package clsag

import (
	"fmt"

	"clsagring/moneroutil"
	"clsagring/transcript"
)

// buildGGXGInputTranscript absorbs the shared CLSAG-GGXG preamble into tr
// and returns the unreduced input hash.
func buildGGXGInputTranscript(tr *transcript.Transcript, m moneroutil.Hash, ring []RingElementGGXG, cPrimeDiv8, tDiv8 moneroutil.PublicKey, ki moneroutil.KeyImage) moneroutil.Hash {
	tr.AddHash(m)
	for _, elem := range ring {
		tr.AddPubKey(elem.StealthAddress)
		tr.AddPubKey(elem.AmountCommitment)
		tr.AddPubKey(elem.ConcealingPoint)
	}
	tr.AddPubKey(cPrimeDiv8)
	tr.AddPubKey(tDiv8)
	tr.AddKeyImage(ki)
	return tr.CalcHashNoReduce()
}

// decodePubKey and decodePubKeyChecked adapt moneroutil.Decode/DecodeChecked
// (which take the unnamed [32]byte its other callers also use for KeyImage
// and Hash) to the moneroutil.PublicKey-specific function value
// ggxgAggregates requires.
func decodePubKey(k moneroutil.PublicKey) (*moneroutil.Point, error) { return moneroutil.Decode(k) }
func decodePubKeyChecked(k moneroutil.PublicKey) (*moneroutil.Point, error) {
	return moneroutil.DecodeChecked(k)
}

// ggxgAggregates computes Wg_i, Wx_i for every ring position, given the
// full-scale C' and T points. a_i = 8*amount_i, q_i = 8*concealing_i.
func ggxgAggregates(ring []RingElementGGXG, decode func(moneroutil.PublicKey) (*moneroutil.Point, error), cPrime, t *moneroutil.Point, mu0, mu1, mu2, mu3 *moneroutil.Scalar) (wg, wx []*moneroutil.Point, err error) {
	n := len(ring)
	wg = make([]*moneroutil.Point, n)
	wx = make([]*moneroutil.Point, n)
	for i, elem := range ring {
		stealth, derr := decode(elem.StealthAddress)
		if derr != nil {
			return nil, nil, fmt.Errorf("clsag: ring[%d].stealth_address: %w", i, derr)
		}
		amountPt, derr := decode(elem.AmountCommitment)
		if derr != nil {
			return nil, nil, fmt.Errorf("clsag: ring[%d].amount_commitment: %w", i, derr)
		}
		concealingPt, derr := decode(elem.ConcealingPoint)
		if derr != nil {
			return nil, nil, fmt.Errorf("clsag: ring[%d].concealing_point: %w", i, derr)
		}
		a := amountPt.MulCofactor()
		q := concealingPt.MulCofactor()

		wg[i] = stealth.ScalarMult(mu0).
			Add(a.Subtract(cPrime).ScalarMult(mu1)).
			Add(q.ScalarMult(mu3))
		wx[i] = t.Subtract(a).Subtract(q).ScalarMult(mu2)
	}
	return wg, wx, nil
}

// SignCLSAGGGXG implements the CLSAG-GGXG signer. cPrime and t are at
// full scale (not pre-div8'd); K1, K2, K3 are produced and stored in div8
// form.
func SignCLSAGGGXG(m moneroutil.Hash, ring []RingElementGGXG, cPrime, t *moneroutil.Point, ki moneroutil.KeyImage, xp, f, x, q *moneroutil.Scalar, pi int) (*SignatureGGXG, error) {
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
	if !kiBase.ScalarMult(xp).Equal(kiDecoded) {
		return nil, ErrKeyImageMismatch
	}

	div8Key := func(secret *moneroutil.Scalar) (full *moneroutil.Point, enc moneroutil.PublicKey) {
		div8 := kiBase.ScalarMult(moneroutil.Inv8.Multiply(secret))
		return div8.MulCofactor(), div8.AsPublicKey()
	}
	k1, sigK1 := div8Key(f)
	k2, sigK2 := div8Key(x)
	k3, sigK3 := div8Key(q)

	cPrimeDiv8 := cPrime.ScalarMult(moneroutil.Inv8).AsPublicKey()
	tDiv8 := t.ScalarMult(moneroutil.Inv8).AsPublicKey()

	tr := transcript.New()
	inputHash := buildGGXGInputTranscript(tr, m, ring, cPrimeDiv8, tDiv8, ki)

	mu := aggregationCoefficients(tr, inputHash, tagGGXGLayer0, tagGGXGLayer1, tagGGXGLayer2, tagGGXGLayer3)
	mu0, mu1, mu2, mu3 := mu[0], mu[1], mu[2], mu[3]

	wg, wx, err := ggxgAggregates(ring, decodePubKey, cPrime, t, mu0, mu1, mu2, mu3)
	if err != nil {
		return nil, err
	}

	wGSecret := mu0.Multiply(xp).Add(mu1.Multiply(f)).Add(mu3.Multiply(q))
	wXSecret := mu2.Multiply(x)

	kiPoint, err := moneroutil.Decode(ki)
	if err != nil {
		return nil, fmt.Errorf("clsag: key image: %w", err)
	}
	// K2 is deliberately absent from the G-side aggregate key image; it
	// only ever contributes through the X-side aggregate below.
	wGKi := kiPoint.ScalarMult(mu0).Add(k1.ScalarMult(mu1)).Add(k3.ScalarMult(mu3))
	wXKi := k2.ScalarMult(mu2)

	alphaG := moneroutil.RandomScalar()
	alphaX := moneroutil.RandomScalar()
	// As in SignCLSAGGG, each challenge link is hashed on a fresh transcript.
	tr = transcript.New()
	tr.Add32Chars(tagGGXGChallenge)
	tr.AddHash(inputHash)
	tr.AddPoint(moneroutil.ScalarMultG(alphaG))
	tr.AddPoint(kiBase.ScalarMult(alphaG))
	tr.AddPoint(moneroutil.ScalarMultX(alphaX))
	tr.AddPoint(kiBase.ScalarMult(alphaX))
	cPrev := tr.CalcHash()

	rg := make([]*moneroutil.Scalar, n)
	rx := make([]*moneroutil.Scalar, n)
	for i := range rg {
		rg[i] = moneroutil.RandomScalar()
		rx[i] = moneroutil.RandomScalar()
	}

	var sigC *moneroutil.Scalar
	for j := 0; j < n-1; j++ {
		i := (pi + 1 + j) % n
		if i == 0 {
			sigC = cPrev
		}
		stealth := ring[i].StealthAddress
		tr = transcript.New()
		tr.Add32Chars(tagGGXGChallenge)
		tr.AddHash(inputHash)
		tr.AddPoint(moneroutil.ScalarMultG(rg[i]).Add(wg[i].ScalarMult(cPrev)))
		tr.AddPoint(moneroutil.Hp(stealth).ScalarMult(rg[i]).Add(wGKi.ScalarMult(cPrev)))
		tr.AddPoint(moneroutil.ScalarMultX(rx[i]).Add(wx[i].ScalarMult(cPrev)))
		tr.AddPoint(moneroutil.Hp(stealth).ScalarMult(rx[i]).Add(wXKi.ScalarMult(cPrev)))
		cPrev = tr.CalcHash()
	}
	if pi == 0 {
		sigC = cPrev
	}

	rg[pi] = alphaG.Subtract(cPrev.Multiply(wGSecret))
	rx[pi] = alphaX.Subtract(cPrev.Multiply(wXSecret))

	return &SignatureGGXG{C: sigC, Rg: rg, Rx: rx, K1: sigK1, K2: sigK2, K3: sigK3}, nil
}

// VerifyCLSAGGGXG implements the CLSAG-GGXG verifier. cPrime and t are
// the div8-encoded commitments, mirroring VerifyCLSAGGG's calling
// convention.
func VerifyCLSAGGGXG(m moneroutil.Hash, ring []RingElementGGXG, cPrime, t moneroutil.PublicKey, ki moneroutil.KeyImage, sig *SignatureGGXG) (bool, error) {
	n := len(ring)
	if n == 0 {
		return false, ErrEmptyRing
	}
	if len(sig.Rg) != n || len(sig.Rx) != n {
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

	tPoint, err := moneroutil.DecodeChecked(t)
	if err != nil {
		return false, fmt.Errorf("clsag: extended commitment: %w", err)
	}
	tPt := tPoint.MulCofactor()

	k1Point, err := moneroutil.DecodeChecked(sig.K1)
	if err != nil {
		return false, fmt.Errorf("clsag: K1: %w", err)
	}
	k1 := k1Point.MulCofactor()

	k2Point, err := moneroutil.DecodeChecked(sig.K2)
	if err != nil {
		return false, fmt.Errorf("clsag: K2: %w", err)
	}
	k2 := k2Point.MulCofactor()

	k3Point, err := moneroutil.DecodeChecked(sig.K3)
	if err != nil {
		return false, fmt.Errorf("clsag: K3: %w", err)
	}
	k3 := k3Point.MulCofactor()

	tr := transcript.New()
	inputHash := buildGGXGInputTranscript(tr, m, ring, cPrime, t, ki)

	mu := aggregationCoefficients(tr, inputHash, tagGGXGLayer0, tagGGXGLayer1, tagGGXGLayer2, tagGGXGLayer3)
	mu0, mu1, mu2, mu3 := mu[0], mu[1], mu[2], mu[3]

	wg, wx, err := ggxgAggregates(ring, decodePubKeyChecked, cPrimePt, tPt, mu0, mu1, mu2, mu3)
	if err != nil {
		return false, err
	}

	wGKi := kiPoint.ScalarMult(mu0).Add(k1.ScalarMult(mu1)).Add(k3.ScalarMult(mu3))
	wXKi := k2.ScalarMult(mu2)

	cPrev := sig.C
	for i, elem := range ring {
		tr = transcript.New()
		tr.Add32Chars(tagGGXGChallenge)
		tr.AddHash(inputHash)
		tr.AddPoint(moneroutil.ScalarMultG(sig.Rg[i]).Add(wg[i].ScalarMult(cPrev)))
		tr.AddPoint(moneroutil.Hp(elem.StealthAddress).ScalarMult(sig.Rg[i]).Add(wGKi.ScalarMult(cPrev)))
		tr.AddPoint(moneroutil.ScalarMultX(sig.Rx[i]).Add(wx[i].ScalarMult(cPrev)))
		tr.AddPoint(moneroutil.Hp(elem.StealthAddress).ScalarMult(sig.Rx[i]).Add(wXKi.ScalarMult(cPrev)))
		cPrev = tr.CalcHash()
	}

	return cPrev.Equal(sig.C), nil
}
