package qs

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/bfix/qsfactor/bignum"
)

// precisionBits is the working precision for the big.Float logarithms
// used to choose the smoothness bound. N may run to ~100 decimal
// digits (~335 bits), so N itself is rounded to 256 bits here; that
// still keeps ln(N) and ln(ln(N)) far more precise than the float64
// they are converted to afterwards.
const precisionBits = 256

// ChooseSmoothnessBound computes B = max(B_min, floor(exp((1/2+c) *
// sqrt(ln(N) * ln(ln(N))))) per spec.md §4.2, with tuning constant c.
// The logarithms are computed on a big.Float view of N (via
// github.com/ALTree/bigfloat) rather than on a float64 downcast of N,
// so the bound stays accurate for N up to the ~100-digit range this
// engine targets.
func ChooseSmoothnessBound(n *bignum.Int, c float64, bMin int64) int64 {
	nf := new(big.Float).SetPrec(precisionBits).Set(n.Float())
	lnN := bigfloat.Log(nf)
	lnLnN := bigfloat.Log(lnN)

	lnNf, _ := lnN.Float64()
	lnLnNf, _ := lnLnN.Float64()

	exponent := (0.5 + c) * math.Sqrt(lnNf*lnLnNf)
	b := int64(math.Exp(exponent))
	if b < bMin {
		b = bMin
	}
	return b
}
