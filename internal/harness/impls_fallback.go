//go:build !amd64 || !goexperiment.simd

package harness

// No platform kernels beyond SWAR in this build.
var archImpls []Impl
