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

import "encoding/binary"

// SWAR kernel: the 16-byte record is processed as two uint64 words of
// 8 byte lanes each. One AND decodes all 16 digits at once; the weighted
// sum of each pass is then computed with four 64-bit multiplies.
//
// The multiply trick: split a word into its even byte lanes
//
//	e = d0 + d2<<16 + d4<<32 + d6<<48
//
// (16-bit lanes, one digit per lane) and multiply by a constant packing
// the matching weights in reverse lane order
//
//	W = w6 + w4<<16 + w2<<32 + w0<<48
//
// In the product, exactly the cross terms with lane shifts summing to 48
// land in bits 48..63: d0*w0 + d2*w2 + d4*w4 + d6*w6, the dot product we
// want. Terms shifted past bit 63 vanish mod 2^64, and no lower 16-bit
// field can carry into bit 48 because each field's total is bounded by
// 3 pairs of digit*weight <= 3*81. So (e*W)>>48 is the exact dot
// product of four weighted digits. Odd lanes are handled the same way
// after a shift by 8.
//
// Lanes beyond the 9-digit window carry weight 0, so the padding bytes
// (masked to at most 15) contribute nothing. That only neutralizes their
// value; the load itself is safe because Record is 16 bytes by type.

// digitMask extracts the numeric value of 8 ASCII digit lanes at once.
const digitMask = 0x0F0F0F0F0F0F0F0F

// laneMask selects the even byte lanes of a word as 16-bit lanes.
const laneMask = 0x00FF00FF00FF00FF

// Reverse-packed weight constants. wP1 are the pass-1 weights (byte i
// weighted i+1 for i 0..8, zero beyond), wP2 the pass-2 weights (byte i
// weighted i for i 1..9, zero elsewhere). Suffixes: word 0/1 of the
// record, Even/Odd byte lanes.
const (
	wP1Lo0Even = 0x0001_0003_0005_0007 // b0,b2,b4,b6 weighted 1,3,5,7
	wP1Lo0Odd  = 0x0002_0004_0006_0008 // b1,b3,b5,b7 weighted 2,4,6,8
	wP1Hi1Even = 0x0009_0000_0000_0000 // b8 weighted 9

	wP2Lo0Even = 0x0000_0002_0004_0006 // b0,b2,b4,b6 weighted 0,2,4,6
	wP2Lo0Odd  = 0x0001_0003_0005_0007 // b1,b3,b5,b7 weighted 1,3,5,7
	wP2Hi1Even = 0x0008_0000_0000_0000 // b8 weighted 8
	wP2Hi1Odd  = 0x0009_0000_0000_0000 // b9 weighted 9
)

// dotU16x4 computes the weighted sum of the four 16-bit lanes of v
// against the reverse-packed weight constant w.
func dotU16x4(v, w uint64) int {
	return int((v * w) >> 48)
}

// VerifySWAR verifies a record with SIMD-within-a-register arithmetic.
// It is behaviorally identical to VerifyScalar on every input and is
// the fallback vector path on platforms without a 128-bit kernel.
func VerifySWAR(r Record) bool {
	lo := binary.LittleEndian.Uint64(r[0:8]) & digitMask
	hi := binary.LittleEndian.Uint64(r[8:16]) & digitMask

	loEven := lo & laneMask
	loOdd := (lo >> 8) & laneMask
	hiEven := hi & laneMask
	hiOdd := (hi >> 8) & laneMask

	sum1 := dotU16x4(loEven, wP1Lo0Even) +
		dotU16x4(loOdd, wP1Lo0Odd) +
		dotU16x4(hiEven, wP1Hi1Even)
	if checkDigit(sum1) != digitValue(r[9]) {
		return false
	}

	sum2 := dotU16x4(loEven, wP2Lo0Even) +
		dotU16x4(loOdd, wP2Lo0Odd) +
		dotU16x4(hiEven, wP2Hi1Even) +
		dotU16x4(hiOdd, wP2Hi1Odd)
	return checkDigit(sum2) == digitValue(r[10])
}
