// Package clsag implements the CLSAG-GG and CLSAG-GGXG ring signature
// schemes: aggregation of several parallel Schnorr relations into one
// linkable, anonymous ring argument over the Ed25519 curve. CLSAG-GG
// aggregates two layers over generator G; CLSAG-GGXG aggregates four
// layers split across G and a second, independent generator X.
package clsag

import "clsagring/moneroutil"

// RingElementGG is one candidate signer in a CLSAG-GG ring.
type RingElementGG struct {
	StealthAddress   moneroutil.PublicKey
	AmountCommitment moneroutil.PublicKey
}

// RingElementGGXG is one candidate signer in a CLSAG-GGXG ring.
type RingElementGGXG struct {
	StealthAddress   moneroutil.PublicKey
	AmountCommitment moneroutil.PublicKey
	ConcealingPoint  moneroutil.PublicKey
}

// SignatureGG is the output of SignCLSAGGG. K1 is stored pre-multiplied by
// 1/8 (the div8 convention); VerifyCLSAGGG multiplies it back by 8 before
// use.
type SignatureGG struct {
	C  *moneroutil.Scalar
	R  []*moneroutil.Scalar
	K1 moneroutil.PublicKey
}

// SignatureGGXG is the output of SignCLSAGGGXG. K1, K2, K3 are all stored
// in div8 form.
type SignatureGGXG struct {
	C  *moneroutil.Scalar
	Rg []*moneroutil.Scalar
	Rx []*moneroutil.Scalar
	K1 moneroutil.PublicKey
	K2 moneroutil.PublicKey
	K3 moneroutil.PublicKey
}
