// Package main provides the cpfverify CLI: identifier verification plus
// the equivalence and throughput harnesses for the verify kernels.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/melby-md/cpf/cpf"
	"github.com/melby-md/cpf/internal/harness"
)

var version = "0.1.0"

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "cpfverify",
		Short: "Verify mod-11 check digits of CPF-style identifiers",
		Long: `cpfverify validates 11-digit identifiers whose last two digits are
mod-11 check digits (CPF / ISBN-10 style), and drives the equivalence
and throughput harnesses for the scalar and vectorized verify kernels.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cpfverify v%s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print the selected dispatch level",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dispatch level: %s\n", cpf.CurrentLevel())
			fmt.Printf("kernels: ")
			for i, impl := range harness.Impls() {
				if i > 0 {
					fmt.Print(", ")
				}
				fmt.Print(impl.Name)
			}
			fmt.Println()
		},
	})

	checkCmd := &cobra.Command{
		Use:   "check <identifier>...",
		Short: "Verify identifiers (11 digits, no punctuation)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
	rootCmd.AddCommand(checkCmd)

	eqCmd := &cobra.Command{
		Use:   "equivalence",
		Short: "Assert scalar/vector agreement over a generated corpus",
		RunE:  runEquivalence,
	}
	eqCmd.Flags().Int("count", getEnvInt("CPF_EQ_COUNT", 100000), "corpus size")
	eqCmd.Flags().Uint64("seed", 1, "corpus seed")
	rootCmd.AddCommand(eqCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure verified records per second for each kernel",
		RunE:  runBench,
	}
	benchCmd.Flags().Int("iters", getEnvInt("CPF_BENCH_ITERS", 10_000_000), "iterations per kernel")
	rootCmd.AddCommand(benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := false
	for _, id := range args {
		ok, err := cpf.VerifyString(id)
		switch {
		case err != nil:
			fmt.Printf("%s: malformed (%v)\n", id, err)
			failed = true
		case ok:
			fmt.Printf("%s: valid\n", id)
		default:
			fmt.Printf("%s: invalid check digits\n", id)
			failed = true
		}
	}
	if failed {
		cmd.SilenceUsage = true
		return fmt.Errorf("one or more identifiers failed verification")
	}
	return nil
}

func runEquivalence(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetUint64("seed")

	fmt.Printf("checking %d records (seed %d) at dispatch level %s\n",
		count, seed, cpf.CurrentLevel())
	if m := harness.Equivalence(count, seed); m != nil {
		cmd.SilenceUsage = true
		return m
	}
	fmt.Println("PASS: all kernels agree with the scalar reference")
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	iters, _ := cmd.Flags().GetInt("iters")

	for _, impl := range harness.Impls() {
		res, err := harness.Throughput(impl.Name, impl.Fn, iters)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		fmt.Printf("%-8s %12.0f records/sec  (%d iterations in %v)\n",
			res.Impl, res.OpsPerSec, res.Iters, res.Elapsed)
	}
	return nil
}
