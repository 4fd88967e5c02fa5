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

//go:build !amd64 || !goexperiment.simd

package cpf

func init() {
	// Without GOEXPERIMENT=simd (or off amd64) the 128-bit kernel is not
	// compiled; the SWAR kernel is the vector path everywhere else.
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	setSWARMode()
}

// verifyImpl routes to the kernel for the current dispatch level.
func verifyImpl(r Record) bool {
	if currentLevel == DispatchSWAR {
		return VerifySWAR(r)
	}
	return VerifyScalar(r)
}
