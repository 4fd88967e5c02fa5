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
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CountValid verifies every record and returns how many are valid.
// Verification is stateless, so the slice is sharded across workers
// with per-shard counters merged at the end; no other coordination is
// needed. workers <= 0 uses GOMAXPROCS.
func CountValid(records []Record, workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(records) {
		workers = len(records)
	}
	if workers <= 1 {
		n := 0
		for _, r := range records {
			if Verify(r) {
				n++
			}
		}
		return n
	}

	counts := make([]int, workers)
	chunk := (len(records) + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(records))
		g.Go(func() error {
			n := 0
			for _, r := range records[lo:hi] {
				if Verify(r) {
					n++
				}
			}
			counts[w] = n
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
