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

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// SSE2 is baseline for amd64; the 128-bit kernel needs nothing more.
	currentLevel = DispatchSSE2
	currentName = "sse2"
}

// verifyImpl routes to the kernel for the current dispatch level.
func verifyImpl(r Record) bool {
	switch currentLevel {
	case DispatchSSE2:
		return VerifySSE2(r)
	case DispatchSWAR:
		return VerifySWAR(r)
	default:
		return VerifyScalar(r)
	}
}
