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

import "os"

// DispatchLevel identifies which verify kernel Verify routes to.
type DispatchLevel int

const (
	// DispatchScalar is the reference loop, selected when CPF_NO_SIMD
	// is set.
	DispatchScalar DispatchLevel = iota

	// DispatchSWAR is the pure-Go uint64 lane kernel, the default on
	// every platform without a 128-bit kernel.
	DispatchSWAR

	// DispatchSSE2 is the 128-bit vector kernel (amd64 with
	// GOEXPERIMENT=simd; SSE2 is baseline for amd64).
	DispatchSSE2
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSWAR:
		return "swar"
	case DispatchSSE2:
		return "sse2"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentName  string
)

// CurrentLevel returns the dispatch level selected at init.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentName returns the dispatch level's name.
func CurrentName() string { return currentName }

// NoSimdEnv reports whether the CPF_NO_SIMD environment variable
// requests the scalar path. Checked once at init.
func NoSimdEnv() bool {
	v := os.Getenv("CPF_NO_SIMD")
	return v == "1" || v == "true"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentName = "scalar"
}

func setSWARMode() {
	currentLevel = DispatchSWAR
	currentName = "swar"
}
