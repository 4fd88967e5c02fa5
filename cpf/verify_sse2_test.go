// Copyright 2025 cpf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd

package cpf

import (
	"math/rand/v2"
	"testing"
)

func TestSSE2EquivalenceRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(0xc0f, 2025))
	for i := 0; i < 200000; i++ {
		r := randomRecord(rng)
		if i%4 == 0 {
			r = validRecord(rng)
		}
		want := VerifyScalar(r)
		if got := VerifySSE2(r); got != want {
			t.Fatalf("VerifySSE2(%q) = %v, scalar says %v", r.String(), got, want)
		}
	}
}

func TestSSE2EquivalenceCorruptions(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 14))
	for i := 0; i < 500; i++ {
		r := validRecord(rng)
		for pos := 0; pos < NumDigits; pos++ {
			for d := byte('0'); d <= '9'; d++ {
				mut := r
				mut[pos] = d
				want := VerifyScalar(mut)
				if got := VerifySSE2(mut); got != want {
					t.Fatalf("VerifySSE2(%q) = %v, scalar says %v (corrupted pos %d)",
						mut.String(), got, want, pos)
				}
			}
		}
	}
}

func TestSSE2PaddingHasNoInfluence(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 42))
	for i := 0; i < 1000; i++ {
		r := randomRecord(rng)
		want := VerifyScalar(r)
		mut := r
		for j := NumDigits; j < RecordSize; j++ {
			mut[j] = byte(rng.IntN(256))
		}
		if got := VerifySSE2(mut); got != want {
			t.Fatalf("VerifySSE2(%q) changed to %v with padding % x",
				mut.String(), got, mut[NumDigits:])
		}
	}
}

func BenchmarkVerifySSE2(b *testing.B) {
	if CurrentLevel() < DispatchSSE2 {
		b.Skip("SSE2 kernel not selected")
	}
	corpus, order := benchCorpus()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = VerifySSE2(corpus[order[i%len(order)]])
	}
}
