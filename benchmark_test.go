// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio_test

import (
	"testing"

	"code.hybscloud.com/envio"
)

// BenchmarkSucceed measures the fixed cost of one interpretation.
func BenchmarkSucceed(b *testing.B) {
	m := envio.Succeed(1)
	for b.Loop() {
		_ = envio.RunValue(m)
	}
}

// BenchmarkFusedChain measures a right-nested chain where every step is fused.
func BenchmarkFusedChain(b *testing.B) {
	var step func(x int) envio.UIO[int]
	step = func(x int) envio.UIO[int] {
		if x == 100 {
			return envio.Succeed(x)
		}
		return envio.AndThen(envio.Succeed(x+1), step)
	}
	m := step(0)
	for b.Loop() {
		_ = envio.RunValue(m)
	}
}

// BenchmarkLeftNestedChain measures a chain that grows the continuation stack.
func BenchmarkLeftNestedChain(b *testing.B) {
	m := envio.Succeed(0)
	for range 100 {
		m = envio.Map(m, func(x int) int { return x + 1 })
	}
	for b.Loop() {
		_ = envio.RunValue(m)
	}
}

// BenchmarkUnwind measures failure propagation through 100 frames to a fold.
func BenchmarkUnwind(b *testing.B) {
	m := envio.Fail[int]("e")
	for range 100 {
		m = envio.Map(m, func(x int) int { return x + 1 })
	}
	folded := envio.Fold(m, func(int) bool { return true }, func(string) bool { return false })
	for b.Loop() {
		_ = envio.RunValue(folded)
	}
}

// BenchmarkProvide measures one environment scope.
func BenchmarkProvide(b *testing.B) {
	m := envio.MapEnv(envio.Environment[int](), func(n int) int { return n * 2 }).Provide(21)
	for b.Loop() {
		_ = envio.RunValue(m)
	}
}
