// Command qsfactor reads a single decimal integer from standard input
// and prints its prime factors, using the quadratic sieve engine in
// package qs. See spec.md §6 for the external interface contract.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	qerrors "github.com/bfix/qsfactor/errors"
	"github.com/bfix/qsfactor/logger"
	"github.com/bfix/qsfactor/qs"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := qs.DefaultConfig()
	if os.Getenv("QSFACTOR_QUIET") != "" {
		cfg.Verbose = false
	}
	if cfg.Verbose {
		logger.SetLogLevel(logger.INFO)
	} else {
		logger.SetLogLevel(logger.ERROR)
	}

	fmt.Fprint(os.Stderr, "Enter a composite integer to factorize: ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)

	if line == "" || !isDecimal(line) {
		fmt.Fprintln(os.Stderr, "error: input is not a valid decimal integer")
		return qerrors.ExitInputInvalid
	}

	driver := qs.NewDriver(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	factors, err := driver.Factorize(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return qerrors.ExitCode(err)
	}

	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}
	fmt.Println(strings.Join(parts, " "))
	return 0
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
