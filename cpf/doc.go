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

// Package cpf verifies the two mod-11 check digits of 11-digit CPF-style
// identifiers (the same weighted-remainder scheme used by ISBN-10).
//
// # Record Contract
//
// Identifiers are carried in a fixed-size Record of 16 bytes: 11 ASCII
// decimal digits followed by 5 padding bytes. The array is exactly one
// 128-bit vector wide, so the data-parallel kernels can issue a single
// full-width load that is always in bounds. Padding lanes carry zero
// weight and never influence the result.
//
// # Implementations
//
// Three interchangeable kernels compute the same boolean:
//   - VerifyScalar: reference loop, ground truth for the others
//   - VerifySWAR: pure-Go lane arithmetic on two uint64 words,
//     available on every platform
//   - VerifySSE2: 128-bit vector kernel (amd64, GOEXPERIMENT=simd)
//
// Verify dispatches to the best kernel for the current platform; the
// CPF_NO_SIMD environment variable forces the scalar path.
//
// # Algorithm
//
// Each identifier carries two check passes. A pass multiplies 9 digits
// by the positional weights 1..9, reduces the sum modulo 11, maps a
// remainder of 10 to the check digit 0, and compares against one check
// digit. Pass 1 covers digits 0-8 against digit 9; pass 2 covers digits
// 1-9 against digit 10.
//
// This is a checksum, not a cryptographic digest. A matching check digit
// detects transcription errors; it proves nothing about authenticity.
package cpf
