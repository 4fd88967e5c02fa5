// Package harness drives the verify kernels against a shared corpus,
// proving scalar/vector equivalence and measuring throughput. It backs
// the cpfverify CLI; the same properties are also enforced as package
// tests under cpf.
package harness

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/melby-md/cpf/cpf"
)

// ErrTimer reports a benchmark run whose wall clock did not advance;
// the throughput figure would be meaningless. It aborts only the
// benchmark, never verification.
var ErrTimer = errors.New("harness: wall clock did not advance")

// Func is one verify implementation under test.
type Func func(cpf.Record) bool

// Impl pairs a kernel with its display name.
type Impl struct {
	Name string
	Fn   Func
}

// Impls returns every kernel compiled into this binary, reference
// first. Platform-specific kernels are appended by build-tagged files.
func Impls() []Impl {
	impls := []Impl{
		{Name: "scalar", Fn: cpf.VerifyScalar},
		{Name: "swar", Fn: cpf.VerifySWAR},
	}
	return append(impls, archImpls...)
}

// Corpus builds a deterministic mixed corpus of n records: valid
// identifiers derived with ComputeCheckDigits, single-position
// corruptions of valid identifiers, and identifiers constructed so the
// pass-1 raw remainder sweeps 0..10 (including the 10-maps-to-0 edge).
func Corpus(n int, seed uint64) []cpf.Record {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	corpus := make([]cpf.Record, 0, n)

	// Remainder sweep: digit 0 carries weight 1, so its value is the
	// pass-1 sum directly, covering residues 0..9. The final base hits
	// raw remainder 10 (9*6 = 54), the value that maps to check digit 0.
	for d := byte(0); d <= 9 && len(corpus) < n; d++ {
		base := []byte("000000000")
		base[0] = '0' + d
		corpus = append(corpus, recordFromBase(base))
	}
	if len(corpus) < n {
		corpus = append(corpus, recordFromBase([]byte("000000006")))
	}

	for len(corpus) < n {
		r := validRecord(rng)
		corpus = append(corpus, r)
		if len(corpus) == n {
			break
		}
		bad := r
		pos := rng.IntN(cpf.NumDigits)
		bad[pos] = '0' + byte(rng.IntN(10))
		corpus = append(corpus, bad)
	}
	return corpus
}

func recordFromBase(base []byte) cpf.Record {
	var r cpf.Record
	copy(r[:], base[:9])
	d1, d2 := cpf.ComputeCheckDigits(base)
	r[9] = '0' + d1
	r[10] = '0' + d2
	return r
}

func validRecord(rng *rand.Rand) cpf.Record {
	var base [9]byte
	for i := range base {
		base[i] = '0' + byte(rng.IntN(10))
	}
	return recordFromBase(base[:])
}

// Mismatch is an equivalence failure: a fatal correctness bug in the
// vector kernel, reported with the minimal offending input.
type Mismatch struct {
	Impl   string
	Record cpf.Record
	Got    bool
	Want   bool
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("harness: %s(%q) = %v, scalar reference says %v",
		m.Impl, m.Record.String(), m.Got, m.Want)
}

// Equivalence checks every compiled kernel against the scalar reference
// over a corpus of n records plus exhaustive single-digit corruptions
// of a sample. It returns the first mismatch, or nil when all kernels
// agree everywhere.
func Equivalence(n int, seed uint64) *Mismatch {
	corpus := Corpus(n, seed)
	impls := Impls()

	check := func(r cpf.Record) *Mismatch {
		want := cpf.VerifyScalar(r)
		for _, impl := range impls[1:] {
			if got := impl.Fn(r); got != want {
				return &Mismatch{Impl: impl.Name, Record: r, Got: got, Want: want}
			}
		}
		return nil
	}

	for _, r := range corpus {
		if m := check(r); m != nil {
			return m
		}
		// Padding must never influence the result.
		mut := r
		for i := cpf.NumDigits; i < cpf.RecordSize; i++ {
			mut[i] = 0xFF
		}
		if m := check(mut); m != nil {
			return m
		}
	}

	// Exhaustive corruption of a slice of the corpus.
	sample := corpus
	if len(sample) > 64 {
		sample = sample[:64]
	}
	for _, r := range sample {
		for pos := 0; pos < cpf.NumDigits; pos++ {
			for d := byte('0'); d <= '9'; d++ {
				mut := r
				mut[pos] = d
				if m := check(mut); m != nil {
					return m
				}
			}
		}
	}
	return nil
}

// Result is one implementation's throughput measurement.
type Result struct {
	Impl      string
	Iters     int
	Elapsed   time.Duration
	OpsPerSec float64
}

// Throughput verifies iters pseudo-randomly chosen corpus records with
// fn and reports steady-state records per second. Indexing is drawn
// from a fixed-seed PCG so the branch predictor cannot learn the
// sequence.
func Throughput(name string, fn Func, iters int) (Result, error) {
	corpus := Corpus(1024, 0xbe7c)
	rng := rand.New(rand.NewPCG(0xd1ce, 7))

	// Pre-draw indices so the generator is outside the timed region.
	order := make([]int, 1<<16)
	for i := range order {
		order[i] = rng.IntN(len(corpus))
	}

	sink := false
	start := time.Now()
	for i := 0; i < iters; i++ {
		sink = fn(corpus[order[i%len(order)]]) != sink
	}
	elapsed := time.Since(start)
	_ = sink

	if elapsed <= 0 {
		return Result{}, fmt.Errorf("%w after %d iterations", ErrTimer, iters)
	}
	return Result{
		Impl:      name,
		Iters:     iters,
		Elapsed:   elapsed,
		OpsPerSec: float64(iters) / elapsed.Seconds(),
	}, nil
}
