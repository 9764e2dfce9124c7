package qs

// Config is the immutable set of build-time constants that parameterize
// a factoring run. It is constructed once and passed to NewDriver; no
// component mutates it afterwards.
type Config struct {
	// MaxDigits rejects CLI input with more decimal digits than this.
	MaxDigits int

	// MillerRabinReps is the number of repetitions (K) of the
	// probable-prime test used to gate the heavy sieving path.
	MillerRabinReps int

	// Verbose enables the staged trace (B, factor base size, relation
	// counts, sieve-interval growth) on the logger.
	Verbose bool

	// ExitOnProbablePrime aborts the run with ErrInputPrime as soon as
	// Miller-Rabin declares the residual N prime with no prior factors.
	// When false the pipeline proceeds into QS anyway (and will burn
	// effort failing to factor a prime).
	ExitOnProbablePrime bool

	// MinSmoothnessBound floors the smoothness-bound chooser's output.
	MinSmoothnessBound int64

	// InitialInterval is the sieve window length used for the first
	// outer iteration (L0).
	InitialInterval int64

	// MaxInterval caps how large the sieve window may grow (L_max).
	MaxInterval int64

	// GrowthStallIterations: after this many unsuccessful outer
	// iterations with few relations, the window length is multiplied
	// by GrowthFactor (up to MaxInterval).
	GrowthStallIterations int
	GrowthFactor          int64

	// Workers bounds how many goroutines the sieve and the GF(2)
	// elimination step fan out to. Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultConfig mirrors original_source/src/config.h: MAX_DIGITS=100,
// MAX_ITERATIONS=20, VERBOSE, EXIT_ON_MILLER_RABIN_FAIL,
// MIN_SMOOTHNESS_BOUND=1000, SIEVE_INTERVAL=10000,
// MAX_SIEVE_INTERVAL=10000000.
func DefaultConfig() *Config {
	return &Config{
		MaxDigits:             100,
		MillerRabinReps:       20,
		Verbose:               true,
		ExitOnProbablePrime:   true,
		MinSmoothnessBound:    1000,
		InitialInterval:       10000,
		MaxInterval:           10000000,
		GrowthStallIterations: 5,
		GrowthFactor:          10,
		Workers:               0,
	}
}
