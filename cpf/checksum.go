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

// windowLen is the number of significant digits covered by one check pass.
const windowLen = 9

// digitValue decodes an ASCII digit byte to its numeric value.
// ASCII digits share the high nibble 0x3, so masking the low nibble is
// enough. Branchless on purpose: the vector kernels apply the same mask
// to all lanes at once. Undefined for bytes outside '0'..'9'.
func digitValue(b byte) byte {
	return b & 0x0F
}

// checkDigit reduces a weighted digit sum to its check digit:
// the remainder mod 11, with remainder 10 mapped to 0.
func checkDigit(sum int) byte {
	rem := sum % 11
	if rem == 10 {
		rem = 0
	}
	return byte(rem)
}

// checkPass evaluates one pass: 9 digits weighted 1..9, summed, reduced
// mod 11, compared against one check digit byte.
func checkPass(window []byte, check byte) bool {
	sum := 0
	for i := 0; i < windowLen; i++ {
		sum += int(digitValue(window[i])) * (i + 1)
	}
	return checkDigit(sum) == digitValue(check)
}

// VerifyScalar is the reference implementation. It is the ground-truth
// oracle: every other kernel must agree with it on every input.
func VerifyScalar(r Record) bool {
	return checkPass(r[0:9], r[9]) && checkPass(r[1:10], r[10])
}

// ComputeCheckDigits derives both check digits from the 9 significant
// digits of an identifier. base must hold at least 9 ASCII digit bytes;
// only the first 9 are read.
//
// The second pass depends on the first: its window is digits 1..8 of
// base followed by the first check digit.
func ComputeCheckDigits(base []byte) (d1, d2 byte) {
	sum := 0
	for i := 0; i < windowLen; i++ {
		sum += int(digitValue(base[i])) * (i + 1)
	}
	d1 = checkDigit(sum)

	sum = 0
	for i := 1; i < windowLen; i++ {
		sum += int(digitValue(base[i])) * i
	}
	sum += int(d1) * windowLen
	d2 = checkDigit(sum)
	return d1, d2
}
