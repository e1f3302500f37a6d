package main

import (
	"fmt"

	"clsagring/clsag"
	"clsagring/moneroutil"
)

func main() {
	demoGG()
	demoGGXG()
}

func demoGG() {
	const n, pi = 5, 2

	secretX := moneroutil.RandomScalar()
	secretF := moneroutil.RandomScalar()
	stealthPi := moneroutil.ScalarMultG(secretX)
	kiBase := moneroutil.Hp(stealthPi.AsPublicKey())
	ki := kiBase.ScalarMult(secretX).AsKeyImage()

	aPi := moneroutil.RandomScalar()
	cPrime := moneroutil.ScalarMultG(aPi.Subtract(secretF))
	amountPi := moneroutil.ScalarMultG(moneroutil.Inv8.Multiply(aPi))

	ring := make([]clsag.RingElementGG, n)
	for i := range ring {
		if i == pi {
			ring[i] = clsag.RingElementGG{StealthAddress: stealthPi.AsPublicKey(), AmountCommitment: amountPi.AsPublicKey()}
			continue
		}
		ring[i] = clsag.RingElementGG{
			StealthAddress:   moneroutil.ScalarMultG(moneroutil.RandomScalar()).AsPublicKey(),
			AmountCommitment: moneroutil.ScalarMultG(moneroutil.RandomScalar()).AsPublicKey(),
		}
	}

	m := moneroutil.Keccak256([]byte("clsag-gg demo message"))
	sig, err := clsag.SignCLSAGGG(m, ring, cPrime, ki, secretX, secretF, pi)
	if err != nil {
		fmt.Println("sign error:", err)
		return
	}

	fmt.Printf("CLSAG-GG signature: c=%x k1=%s\n", sig.C.Bytes(), moneroutil.EncodeBase58Check(0x01, [32]byte(sig.K1)))

	ok, err := clsag.VerifyCLSAGGG(m, ring, cPrime.ScalarMult(moneroutil.Inv8).AsPublicKey(), ki, sig)
	if err != nil {
		fmt.Println("verify error:", err)
		return
	}
	fmt.Println("CLSAG-GG verify:", ok)
}

func demoGGXG() {
	const n, pi = 4, 1

	xp := moneroutil.RandomScalar()
	f := moneroutil.RandomScalar()
	x := moneroutil.RandomScalar()
	q := moneroutil.RandomScalar()

	stealthPi := moneroutil.ScalarMultG(xp)
	kiBase := moneroutil.Hp(stealthPi.AsPublicKey())
	ki := kiBase.ScalarMult(xp).AsKeyImage()

	aPi := moneroutil.RandomScalar()
	cPrime := moneroutil.ScalarMultG(aPi.Subtract(f))
	amountPi := moneroutil.ScalarMultG(moneroutil.Inv8.Multiply(aPi))
	concealingPi := moneroutil.ScalarMultG(moneroutil.Inv8.Multiply(q))
	t := moneroutil.ScalarMultG(aPi.Add(q)).Add(moneroutil.ScalarMultX(x))

	ring := make([]clsag.RingElementGGXG, n)
	for i := range ring {
		if i == pi {
			ring[i] = clsag.RingElementGGXG{
				StealthAddress:   stealthPi.AsPublicKey(),
				AmountCommitment: amountPi.AsPublicKey(),
				ConcealingPoint:  concealingPi.AsPublicKey(),
			}
			continue
		}
		ring[i] = clsag.RingElementGGXG{
			StealthAddress:   moneroutil.ScalarMultG(moneroutil.RandomScalar()).AsPublicKey(),
			AmountCommitment: moneroutil.ScalarMultG(moneroutil.RandomScalar()).AsPublicKey(),
			ConcealingPoint:  moneroutil.ScalarMultG(moneroutil.RandomScalar()).AsPublicKey(),
		}
	}

	m := moneroutil.Keccak256([]byte("clsag-ggxg demo message"))
	sig, err := clsag.SignCLSAGGGXG(m, ring, cPrime, t, ki, xp, f, x, q, pi)
	if err != nil {
		fmt.Println("sign error:", err)
		return
	}

	fmt.Printf("CLSAG-GGXG signature: c=%x\n", sig.C.Bytes())

	ok, err := clsag.VerifyCLSAGGGXG(m, ring, cPrime.ScalarMult(moneroutil.Inv8).AsPublicKey(), t.ScalarMult(moneroutil.Inv8).AsPublicKey(), ki, sig)
	if err != nil {
		fmt.Println("verify error:", err)
		return
	}
	fmt.Println("CLSAG-GGXG verify:", ok)
}
