//go:build amd64 && goexperiment.simd

package harness

import "github.com/melby-md/cpf/cpf"

var archImpls = []Impl{
	{Name: "sse2", Fn: cpf.VerifySSE2},
}
