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
	"errors"
	"fmt"
)

const (
	// NumDigits is the number of significant and check digits in an
	// identifier: 9 significant digits plus 2 check digits.
	NumDigits = 11

	// RecordSize is the backing array size of a Record. It equals the
	// 128-bit vector width so a full-width load of a Record never reads
	// outside the array. Bytes NumDigits..RecordSize-1 are padding.
	RecordSize = 16
)

var (
	// ErrLength reports an identifier that is not exactly NumDigits bytes.
	ErrLength = errors.New("cpf: identifier must be exactly 11 digits")

	// ErrNotDigit reports a byte outside '0'..'9'.
	ErrNotDigit = errors.New("cpf: identifier contains a non-digit byte")
)

// Record is an identifier with the vector-width padding guarantee built
// into the type: 11 ASCII digit bytes followed by 5 padding bytes whose
// content is irrelevant to verification.
//
// Construct Records with ParseRecord or MustRecord. A Record built by
// other means must still hold ASCII digits in its first 11 bytes;
// verifying anything else is a precondition violation with an
// unspecified (but memory-safe) result.
type Record [RecordSize]byte

// ParseRecord validates shape and returns the identifier as a Record.
// The input must be exactly 11 bytes of ASCII digits, no punctuation.
// This is the only place malformed input is reported; the verify
// kernels assume it.
func ParseRecord(s string) (Record, error) {
	var r Record
	if len(s) != NumDigits {
		return r, fmt.Errorf("%w: got %d bytes", ErrLength, len(s))
	}
	for i := 0; i < NumDigits; i++ {
		if s[i] < '0' || s[i] > '9' {
			return r, fmt.Errorf("%w: %q at position %d", ErrNotDigit, s[i], i)
		}
		r[i] = s[i]
	}
	return r, nil
}

// MustRecord is ParseRecord for known-good literals; it panics on
// malformed input.
func MustRecord(s string) Record {
	r, err := ParseRecord(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the 11 digit bytes without padding.
func (r Record) String() string {
	return string(r[:NumDigits])
}
