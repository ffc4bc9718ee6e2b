// utf8range checks and benchmarks the UTF-8 validators of this module
// against a sample file.
//
// Usage:
//
//	utf8range test  [alg] [-f file]              test all or one algorithm
//	utf8range bench [alg] [-f file] [--bytes N]  benchmark all or one algorithm
//
// Each algorithm is run on the file as is, with its last byte replaced by a
// byte that cannot end valid UTF-8, and again after masking every byte to
// ASCII. Use '-' as file to read from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/biggeezerdevelopment/utf8range/internal/scanner"
)

const version = "1.0.0"

const defaultFile = "./UTF-8-demo.txt"

var errTestFailed = errors.New("test failed")

type algorithm struct {
	name string
	fn   func([]byte) bool
}

var algorithms = []algorithm{
	{"naive", scanner.ValidateNaive},
	{"range", scanner.Kernel32.Validate},
	{"range16", scanner.Kernel16.Validate},
	{"stdlib", utf8.Valid},
}

func algorithmNames() string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.name
	}
	return strings.Join(names, " ")
}

func selectAlgorithms(args []string) ([]algorithm, error) {
	if len(args) == 0 {
		return algorithms, nil
	}
	for _, a := range algorithms {
		if a.name == args[0] {
			return []algorithm{a}, nil
		}
	}
	return nil, fmt.Errorf("unknown algorithm %q, want one of: %s", args[0], algorithmNames())
}

func loadFile(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return data, nil
}

func newRootCmd() *cobra.Command {
	var file string

	root := &cobra.Command{
		Use:          "utf8range",
		Short:        "Test and benchmark UTF-8 validators",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", defaultFile, "UTF-8 sample file, '-' for stdin")

	testCmd := &cobra.Command{
		Use:   "test [alg]",
		Short: "Test all or one algorithm",
		Long:  "Test all or one algorithm.\n\n[alg] = " + algorithmNames(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algs, err := selectAlgorithms(args)
			if err != nil {
				return err
			}
			data, err := loadFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ok := true
			each(cmd.OutOrStdout(), data, algs, func(a algorithm) {
				ok = runTest(cmd.OutOrStdout(), data, a) && ok
			})
			if !ok {
				return errTestFailed
			}
			return nil
		},
	}

	var total int64
	benchCmd := &cobra.Command{
		Use:   "bench [alg]",
		Short: "Benchmark all or one algorithm",
		Long:  "Benchmark all or one algorithm.\n\n[alg] = " + algorithmNames(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algs, err := selectAlgorithms(args)
			if err != nil {
				return err
			}
			if total <= 0 {
				return fmt.Errorf("--bytes must be positive, got %d", total)
			}
			data, err := loadFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "cpu: %s, default kernel: %s\n", scanner.CPU(), scanner.Selected().Name())
			each(cmd.OutOrStdout(), data, algs, func(a algorithm) {
				runBench(cmd.OutOrStdout(), cmd.ErrOrStderr(), data, a, total)
			})
			return nil
		},
	}
	benchCmd.Flags().Int64Var(&total, "bytes", 1<<30, "approximate number of bytes to validate per algorithm")

	root.AddCommand(testCmd, benchCmd)
	return root
}

// each runs fn for every algorithm on the UTF-8 input, then again after
// changing the input to ASCII in place.
func each(w io.Writer, data []byte, algs []algorithm, fn func(algorithm)) {
	fmt.Fprintln(w, "==================== UTF8 ====================")
	for _, a := range algs {
		fn(a)
		fmt.Fprintln(w)
	}

	for i := range data {
		data[i] &= 0x7F
	}

	fmt.Fprintln(w, "==================== ASCII ====================")
	for _, a := range algs {
		fn(a)
		fmt.Fprintln(w)
	}
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "FAIL"
}

// runTest reports whether a accepts data and rejects it once the last byte
// is 0xCC. data is restored before returning.
func runTest(w io.Writer, data []byte, a algorithm) bool {
	positive := a.fn(data)
	fmt.Fprintf(w, "%s(positive): %s\n", a.name, passFail(positive))

	// Last byte can only be between 00-BF
	save := data[len(data)-1]
	data[len(data)-1] = 0xCC
	negative := !a.fn(data)
	data[len(data)-1] = save
	fmt.Fprintf(w, "%s(negative): %s\n", a.name, passFail(negative))

	return positive && negative
}

func runBench(w, progress io.Writer, data []byte, a algorithm, total int64) {
	loops := max(total/int64(len(data)), 1)

	fmt.Fprintf(progress, "bench %s... ", a.name)
	ok := true
	start := time.Now()
	for i := int64(0); i < loops; i++ {
		ok = a.fn(data) && ok
	}
	elapsed := time.Since(start).Seconds()
	fmt.Fprintln(w, passFail(ok))

	size := float64(len(data)) * float64(loops) / (1024 * 1024)
	fmt.Fprintf(w, "time: %.4f s\n", elapsed)
	fmt.Fprintf(w, "data: %.0f MB\n", size)
	if elapsed > 0 {
		fmt.Fprintf(w, "BW: %.2f MB/s\n", size/elapsed)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
