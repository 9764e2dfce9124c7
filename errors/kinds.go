package errors

import stderrors "errors"

// Sentinel error kinds for the driver state machine. Fatal kinds each
// map to a distinct process exit code in cmd/qsfactor; the two local
// recoveries never escape the driver loop.
var (
	// ErrInputInvalid: non-digit input or input exceeding the
	// configured maximum digit length. Fatal, exit code 2.
	ErrInputInvalid = stderrors.New("input is not a valid decimal integer")

	// ErrInputPrime: Miller-Rabin judged N prime with no prior factors
	// found. Fatal when Config.ExitOnProbablePrime is set, exit code 3.
	ErrInputPrime = stderrors.New("the number is prime")

	// ErrNoDependencyYet: elimination produced no null-space vector.
	// Recovered locally by sieving more; never escapes the driver.
	ErrNoDependencyYet = stderrors.New("no linear dependency found yet")

	// ErrOnlyTrivialFactors: all dependencies collapsed to {1, N}.
	// Recovered locally by sieving more; never escapes the driver.
	ErrOnlyTrivialFactors = stderrors.New("all dependencies yielded trivial factors")

	// ErrSieveBudgetExhausted: window length hit its configured cap
	// with no progress. Fatal, exit code 4.
	ErrSieveBudgetExhausted = stderrors.New("sieve budget exhausted without progress")

	// ErrNumericOverflow: a factor-base prime no longer fits the
	// machine word width assumed by the Tonelli-Shanks path. Fatal,
	// exit code 5.
	ErrNumericOverflow = stderrors.New("factor-base prime exceeds machine word width")
)

// Exit codes associated with the fatal error kinds above.
const (
	ExitInputInvalid         = 2
	ExitInputPrime           = 3
	ExitSieveBudgetExhausted = 4
	ExitNumericOverflow      = 5
)

// ExitCode maps a fatal sentinel (or a wrapped *Error around one) to its
// process exit code. It returns 1 for anything it does not recognize.
func ExitCode(err error) int {
	switch {
	case stderrors.Is(err, ErrInputInvalid):
		return ExitInputInvalid
	case stderrors.Is(err, ErrInputPrime):
		return ExitInputPrime
	case stderrors.Is(err, ErrSieveBudgetExhausted):
		return ExitSieveBudgetExhausted
	case stderrors.Is(err, ErrNumericOverflow):
		return ExitNumericOverflow
	default:
		return 1
	}
}
