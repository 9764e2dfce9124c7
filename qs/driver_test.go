package qs

import (
	stderrors "errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/bfix/qsfactor/bignum"
	qerrors "github.com/bfix/qsfactor/errors"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Verbose = false
	cfg.Workers = 1
	return cfg
}

func factorStrings(fs []*bignum.Int) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	sort.Strings(out)
	return out
}

func checkProduct(t *testing.T, n string, factors []*bignum.Int) {
	t.Helper()
	product := bignum.ONE
	for _, f := range factors {
		product = product.Mul(f)
	}
	want, _ := bignum.NewIntFromString(n)
	if !product.Equals(want) {
		t.Fatalf("product of factors %v != %s", factors, n)
	}
}

// TestFactorizeScenarios exercises the six literal end-to-end scenarios
// from spec.md §8.
func TestFactorizeScenarios(t *testing.T) {
	cases := []struct {
		name string
		n    string
		want []string
	}{
		{"trial-division-only", "15", []string{"3", "5"}},
		{"qs-small", "8051", []string{"83", "97"}},
		{"qs-fermat", "16843009", []string{"257", "65537"}},
		{"qs-twin-ish", "1022117", []string{"1009", "1013"}},
		{"multi-factor", "6000018", []string{"2", "3", "1000003"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDriver(testConfig(), rand.New(rand.NewSource(42)))
			got, err := d.Factorize(c.n)
			if err != nil {
				t.Fatalf("Factorize(%s): %v", c.n, err)
			}
			checkProduct(t, c.n, got)
			gotStrs := factorStrings(got)
			wantStrs := append([]string(nil), c.want...)
			sort.Strings(wantStrs)
			if len(gotStrs) != len(wantStrs) {
				t.Fatalf("Factorize(%s) = %v, want %v", c.n, gotStrs, wantStrs)
			}
			for i := range gotStrs {
				if gotStrs[i] != wantStrs[i] {
					t.Fatalf("Factorize(%s) = %v, want %v", c.n, gotStrs, wantStrs)
				}
			}
		})
	}
}

// TestFactorizePrimeInput covers spec.md §8 scenario 5: a prime input
// with no prior factors fails with ErrInputPrime.
func TestFactorizePrimeInput(t *testing.T) {
	d := NewDriver(testConfig(), rand.New(rand.NewSource(7)))
	_, err := d.Factorize("9999999967")
	if err == nil {
		t.Fatal("expected ErrInputPrime for a prime input")
	}
	if !stderrors.Is(err, qerrors.ErrInputPrime) {
		t.Fatalf("got %v, want an error wrapping ErrInputPrime", err)
	}
	if qerrors.ExitCode(err) != qerrors.ExitInputPrime {
		t.Fatalf("exit code = %d, want %d", qerrors.ExitCode(err), qerrors.ExitInputPrime)
	}
}

// TestFactorizeInvalidInput covers non-digit and over-long input.
func TestFactorizeInvalidInput(t *testing.T) {
	d := NewDriver(testConfig(), rand.New(rand.NewSource(1)))
	if _, err := d.Factorize("12a45"); !stderrors.Is(err, qerrors.ErrInputInvalid) {
		t.Fatalf("expected ErrInputInvalid for non-digit input, got %v", err)
	}

	cfg := testConfig()
	cfg.MaxDigits = 3
	d2 := NewDriver(cfg, rand.New(rand.NewSource(1)))
	if _, err := d2.Factorize("12345"); !stderrors.Is(err, qerrors.ErrInputInvalid) {
		t.Fatalf("expected ErrInputInvalid for over-long input, got %v", err)
	}
}

// TestFactorizeEven covers spec.md §8 boundary for even N: trial division
// strips 1000000016 = 2^4 * 62500001 down to the prime 62500001, which the
// Probable step adds, so QS is never entered.
func TestFactorizeEven(t *testing.T) {
	d := NewDriver(testConfig(), rand.New(rand.NewSource(1)))
	got, err := d.Factorize("1000000016")
	if err != nil {
		t.Fatal(err)
	}
	checkProduct(t, "1000000016", got)
}
