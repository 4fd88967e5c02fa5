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

import "simd/archsimd"

// 128-bit kernel. One load covers the whole Record (the type guarantees
// the 16 readable bytes), one AND decodes all 16 lanes, and the weighted
// sum falls out of a single 16-bit-lane multiply per pass.
//
// The multiply trick: each uint16 lane holds two digit bytes,
// lo + hi<<8. Multiplying by a weight word with the weight bytes
// pre-swapped (hiWeight | loWeight<<8) puts
//
//	lo*loWeight + hi*hiWeight
//
// in the high byte of the 16-bit product: the hi*hiWeight<<16 term is
// truncated away and the lo*hiWeight low-byte term (at most 81) cannot
// carry. A right shift by 8 then leaves one weighted digit pair per
// lane, bounded by 162, and the horizontal sum of 8 lanes is bounded by
// 729 - comfortably inside uint16.
//
// Lane weights beyond each 9-digit window are zero, which is what makes
// the garbage in the padding bytes (and the neighboring check digit)
// numerically inert.

// Weight words per pass, one uint16 per pair of record bytes, weight
// bytes swapped as described above.
var (
	sse2WeightsPass1 = [8]uint16{0x0102, 0x0304, 0x0506, 0x0708, 0x0900, 0, 0, 0}
	sse2WeightsPass2 = [8]uint16{0x0001, 0x0203, 0x0405, 0x0607, 0x0809, 0, 0, 0}
)

// VerifySSE2 verifies a record using 128-bit vector arithmetic. It is
// behaviorally identical to VerifyScalar on every input.
func VerifySSE2(r Record) bool {
	digits := archsimd.LoadUint8x16Slice(r[:]).
		And(archsimd.BroadcastUint8x16(0x0F)).
		AsUint16x8()

	w1 := archsimd.LoadUint16x8Slice(sse2WeightsPass1[:])
	if sse2Reduce(digits.Mul(w1)) != digitValue(r[9]) {
		return false
	}

	w2 := archsimd.LoadUint16x8Slice(sse2WeightsPass2[:])
	return sse2Reduce(digits.Mul(w2)) == digitValue(r[10])
}

// sse2Reduce extracts the weighted digit pairs from the high bytes of
// the 16-bit products, sums them horizontally, and reduces mod 11.
func sse2Reduce(products archsimd.Uint16x8) byte {
	pairs := products.ShiftAllRight(8)

	var lanes [8]uint16
	pairs.StoreSlice(lanes[:])
	sum := int(lanes[0]) + int(lanes[1]) + int(lanes[2]) + int(lanes[3]) +
		int(lanes[4]) + int(lanes[5]) + int(lanes[6]) + int(lanes[7])

	return checkDigit(sum)
}
