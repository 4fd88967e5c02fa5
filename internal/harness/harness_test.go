package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melby-md/cpf/cpf"
)

func TestCorpusIsDeterministic(t *testing.T) {
	a := Corpus(500, 42)
	b := Corpus(500, 42)
	require.Equal(t, a, b)

	c := Corpus(500, 43)
	assert.NotEqual(t, a, c, "different seeds should produce different corpora")
}

func TestCorpusMixesOutcomes(t *testing.T) {
	corpus := Corpus(1000, 1)
	require.Len(t, corpus, 1000)

	valid, invalid := 0, 0
	for _, r := range corpus {
		if cpf.VerifyScalar(r) {
			valid++
		} else {
			invalid++
		}
	}
	assert.Positive(t, valid, "corpus needs valid records")
	assert.Positive(t, invalid, "corpus needs corrupted records")
}

func TestCorpusSweepsRemainders(t *testing.T) {
	corpus := Corpus(16, 1)
	seen := make(map[int]bool)
	for _, r := range corpus[:11] {
		sum := 0
		for i := 0; i < 9; i++ {
			sum += int(r[i]-'0') * (i + 1)
		}
		seen[sum%11] = true
	}
	for rem := 0; rem <= 10; rem++ {
		assert.True(t, seen[rem], "raw remainder %d missing from sweep", rem)
	}
}

func TestEquivalenceHolds(t *testing.T) {
	require.Nil(t, Equivalence(5000, 99))
}

func TestEquivalenceReportsMismatch(t *testing.T) {
	// A deliberately broken kernel must be caught and reported with the
	// offending input.
	broken := func(r cpf.Record) bool { return !cpf.VerifyScalar(r) }
	corpus := Corpus(10, 1)

	var m *Mismatch
	for _, r := range corpus {
		want := cpf.VerifyScalar(r)
		if got := broken(r); got != want {
			m = &Mismatch{Impl: "broken", Record: r, Got: got, Want: want}
			break
		}
	}
	require.NotNil(t, m)
	assert.Contains(t, m.Error(), "broken")
	assert.Contains(t, m.Error(), m.Record.String())
}

func TestThroughput(t *testing.T) {
	res, err := Throughput("scalar", cpf.VerifyScalar, 200000)
	require.NoError(t, err)
	assert.Equal(t, "scalar", res.Impl)
	assert.Equal(t, 200000, res.Iters)
	assert.Positive(t, res.OpsPerSec)
}

func TestImplsIncludesReferenceFirst(t *testing.T) {
	impls := Impls()
	require.NotEmpty(t, impls)
	assert.Equal(t, "scalar", impls[0].Name)

	names := make(map[string]bool)
	for _, impl := range impls {
		names[impl.Name] = true
	}
	assert.True(t, names["swar"], "SWAR kernel should always be compiled")
}
