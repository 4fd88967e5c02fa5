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

package cpf

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCountValid(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 12))

	const n = 10000
	records := make([]Record, 0, n)
	wantValid := 0
	for i := 0; i < n; i++ {
		if i%3 == 0 {
			records = append(records, validRecord(rng))
			wantValid++
		} else {
			r := validRecord(rng)
			// Flip one digit; recount in case the flip is a no-op.
			pos := rng.IntN(NumDigits)
			r[pos] = '0' + byte(rng.IntN(10))
			if VerifyScalar(r) {
				wantValid++
			}
			records = append(records, r)
		}
	}

	for _, workers := range []int{0, 1, 2, 7, 64} {
		assert.Equal(t, wantValid, CountValid(records, workers),
			"workers=%d", workers)
	}
}

func TestCountValidSmallInputs(t *testing.T) {
	require.Equal(t, 0, CountValid(nil, 4))
	require.Equal(t, 0, CountValid([]Record{}, 0))

	one := []Record{MustRecord("51386130222")}
	require.Equal(t, 1, CountValid(one, 8))
}
