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

// Verify reports whether both check digits of the record are correct.
// It dispatches to the fastest kernel available at the current dispatch
// level; the result is identical across kernels for every input.
//
// Verify is a pure function: no shared state, no allocation, bounded
// input-independent work per call. Callers may fan records out across
// goroutines freely (see CountValid).
func Verify(r Record) bool {
	return verifyImpl(r)
}

// VerifyString parses and verifies an identifier in one step. Unlike
// Verify it validates shape first and reports malformed input as an
// error rather than an unspecified result.
func VerifyString(s string) (bool, error) {
	r, err := ParseRecord(s)
	if err != nil {
		return false, err
	}
	return verifyImpl(r), nil
}
