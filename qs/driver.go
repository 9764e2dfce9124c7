//********************************************************************/
//*    PGMID.        INTEGER PRIME DECOMPOSER (DRIVER).              */
//*    REMARKS.      Orchestrates Pre -> Trial -> Probable -> Sieving */
//*                  -> Solving -> Done|Failed (spec.md §4.7).       */
//********************************************************************/

package qs

import (
	"math/rand"

	"github.com/bfix/qsfactor/bignum"
	qerrors "github.com/bfix/qsfactor/errors"
	"github.com/bfix/qsfactor/logger"
)

// Driver coordinates one factoring run: retries, sieve-window growth,
// and FactorSet aggregation (spec.md §4.7, §9).
type Driver struct {
	cfg *Config
	rng *rand.Rand
}

// NewDriver builds a Driver for cfg, drawing Miller-Rabin witnesses
// from rng. Pass a seeded rand.New(rand.NewSource(seed)) for
// deterministic tests (spec.md §8).
func NewDriver(cfg *Config, rng *rand.Rand) *Driver {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Driver{cfg: cfg, rng: rng}
}

// Factorize decomposes the decimal string n into its FactorSet,
// following the state machine of spec.md §4.7. The returned factors
// multiply to N; a prime that divides N more than once is listed once
// per power, so the factors are not pairwise coprime in general. Per the
// Open Question in spec.md §9 ("source re-adds n/factor to the final set
// without re-running primality on it"), the two factors split off by the
// sieve are not re-tested and either may be composite; this driver
// preserves that behavior rather than recursing into them (see DESIGN.md).
func (d *Driver) Factorize(n string) (FactorSet []*bignum.Int, err error) {
	// --- Pre ---
	if len(n) > d.cfg.MaxDigits {
		return nil, qerrors.New(qerrors.ErrInputInvalid, "input has %d digits, max is %d", len(n), d.cfg.MaxDigits)
	}
	N, perr := bignum.NewIntFromString(n)
	if perr != nil {
		return nil, qerrors.New(qerrors.ErrInputInvalid, "%v", perr)
	}
	if N.Cmp(bignum.ONE) <= 0 {
		return nil, qerrors.New(qerrors.ErrInputInvalid, "input must be greater than 1")
	}

	d.logf(logger.INFO, "[driver] Pre: N has %d digits (%d bits)", len(n), N.BitLen())

	// --- Trial ---
	trialBound := TrialDivisionBound(N)
	residual, factors := TrialDivide(N, trialBound)
	FactorSet = append(FactorSet, factors...)
	d.logf(logger.INFO, "[driver] Trial: stripped %d small factor(s) up to %d", len(factors), trialBound)

	// --- Probable ---
	done, failErr := d.probableCheck(&residual, &FactorSet)
	if failErr != nil {
		return nil, failErr
	}
	if done {
		return FactorSet, nil
	}

	// --- Sieving / Solving ---
	return d.sieveAndSolve(residual, FactorSet)
}

// probableCheck implements the Probable state. It mutates *residual and
// *factorSet in place and reports done=true when the run is complete
// without needing the sieve.
func (d *Driver) probableCheck(residual **bignum.Int, factorSet *[]*bignum.Int) (done bool, err error) {
	r := *residual
	if r.Equals(bignum.ONE) {
		return true, nil
	}
	if ProbablyPrime(r, d.cfg.MillerRabinReps, d.rng) {
		if len(*factorSet) > 0 {
			*factorSet = append(*factorSet, r)
			*residual = bignum.ONE
			return true, nil
		}
		d.logf(logger.WARN, "[driver] Probable: N is prime")
		if d.cfg.ExitOnProbablePrime {
			return false, qerrors.New(qerrors.ErrInputPrime, "%v", r)
		}
		// Fall through to Sieving anyway, per spec.md §7: local
		// recovery is skipped and the pipeline proceeds (and will
		// burn effort trying to factor a prime).
	}
	return false, nil
}

// sieveAndSolve implements Sieving -> Solving -> Done|Failed.
func (d *Driver) sieveAndSolve(residual *bignum.Int, factorSet []*bignum.Int) ([]*bignum.Int, error) {
	b := ChooseSmoothnessBound(residual, 0, d.cfg.MinSmoothnessBound)
	fb, early := BuildFactorBase(residual, b)
	d.logf(logger.INFO, "[driver] Sieving: B=%d, factor base size=%d, early divisors=%d", b, fb.NumPrimes(), len(early))

	for _, p := range early {
		for residual.Mod(p).Equals(bignum.ZERO) {
			residual = residual.Div(p)
			factorSet = append(factorSet, p)
		}
	}
	if residual.Equals(bignum.ONE) {
		return factorSet, nil
	}
	if done, err := d.probableCheck(&residual, &factorSet); err != nil {
		return nil, err
	} else if done {
		return factorSet, nil
	}

	siever, serr := NewSiever(residual, fb, d.cfg.Workers)
	if serr != nil {
		return nil, qerrors.New(qerrors.ErrNumericOverflow, "%v", serr)
	}

	store := NewStore()
	x0 := ceilSqrt(residual)
	window := d.cfg.InitialInterval
	staleIters := 0
	attempts := 0

	for {
		attempts++
		rels := siever.SieveWindow(x0, window)
		store.Add(rels...)
		x0 = x0.Add(bignum.NewInt(window))
		d.logf(logger.DBG, "[driver] Sieving: window=%d found=%d total=%d/%d", window, len(rels), store.Len(), fb.NumPrimes()+1)

		if store.Len() > fb.NumPrimes()+1 {
			snap := store.Snapshot()
			matrix := make([][]byte, len(snap))
			for i, r := range snap {
				matrix[i] = r.Exponents
			}
			deps := EliminateGF2(matrix, d.cfg.Workers)
			d.logf(logger.INFO, "[driver] Solving: %d relations, %d dependencies", len(snap), len(deps))

			for _, dep := range deps {
				if f, ok := SolveDependency(snap, dep, residual); ok {
					other := residual.Div(f)
					d.logf(logger.INFO, "[driver] Solving: factor found %v", f)
					return append(factorSet, f, other), nil
				}
			}
			// OnlyTrivialFactors (or NoDependencyYet if deps was
			// empty): both recover locally by sieving more.
		}

		if len(rels) == 0 {
			staleIters++
		} else {
			staleIters = 0
		}
		if staleIters >= d.cfg.GrowthStallIterations {
			if window >= d.cfg.MaxInterval {
				return nil, qerrors.New(qerrors.ErrSieveBudgetExhausted, "no progress after %d outer iterations", attempts)
			}
			window *= d.cfg.GrowthFactor
			if window > d.cfg.MaxInterval {
				window = d.cfg.MaxInterval
			}
			staleIters = 0
			d.logf(logger.INFO, "[driver] Sieving: growing window to %d", window)
		}
	}
}

// ceilSqrt returns ceil(sqrt(n)) as the default sieve starting point
// x0, per spec.md §4.4.
func ceilSqrt(n *bignum.Int) *bignum.Int {
	r := n.ISqrt()
	if r.Mul(r).Equals(n) {
		return r
	}
	return r.Add(bignum.ONE)
}

func (d *Driver) logf(level int, format string, args ...interface{}) {
	if !d.cfg.Verbose {
		return
	}
	logger.Printf(level, format+"\n", args...)
}
