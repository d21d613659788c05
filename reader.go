// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

// Environment-requiring descriptions.
// RIO[R, A, E] wraps an ordinary description whose reads need an R.
// It cannot be interpreted until Provide discharges the requirement.

// RIO describes a computation that needs an environment of type R,
// then produces A or fails with E.
type RIO[R, A, E any] struct {
	io IO[A, E]
}

// Environment describes reading the environment supplied by the
// nearest enclosing Provide.
func Environment[R any]() RIO[R, R, Never] {
	return RIO[R, R, Never]{io: UIO[R]{instr: &readInstr{
		k: then(func(r R) instr {
			return &succeedInstr{value: r}
		}),
	}}}
}

// Access fuses Environment + MapEnv: reads the environment and projects it with f.
func Access[R, A any](f func(R) A) RIO[R, A, Never] {
	return RIO[R, A, Never]{io: UIO[A]{instr: &readInstr{
		k: then(func(r R) instr {
			return &succeedInstr{value: f(r)}
		}),
	}}}
}

// Provide discharges the requirement with r.
// r is visible to the reads of m while m runs and is dropped when m
// completes, whether it succeeds or fails.
func (m RIO[R, A, E]) Provide(r R) IO[A, E] {
	return IO[A, E]{instr: &provideInstr{env: r, next: m.io.instr}}
}

// AndThenEnv is [AndThen] keeping the requirement of m.
func AndThenEnv[R, A, B, E any](m RIO[R, A, E], k func(A) IO[B, E]) RIO[R, B, E] {
	return RIO[R, B, E]{io: AndThen(m.io, k)}
}

// MapEnv is [Map] keeping the requirement of m.
func MapEnv[R, A, B, E any](m RIO[R, A, E], f func(A) B) RIO[R, B, E] {
	return RIO[R, B, E]{io: Map(m.io, f)}
}

// FoldEnv is [Fold] keeping the requirement of m.
func FoldEnv[R, A, B, E any](m RIO[R, A, E], onSuccess func(A) B, onFailure func(E) B) RIO[R, B, Never] {
	return RIO[R, B, Never]{io: Fold(m.io, onSuccess, onFailure)}
}

// AndThenReq sequences an ordinary description with a continuation that
// introduces an environment requirement.
func AndThenReq[R, A, B, E any](m IO[A, E], k func(A) RIO[R, B, E]) RIO[R, B, E] {
	return RIO[R, B, E]{io: AndThen(m, func(a A) IO[B, E] {
		return k(a).io
	})}
}

// Require adds an environment requirement that m does not read.
func Require[R, A, E any](m IO[A, E]) RIO[R, A, E] {
	return RIO[R, A, E]{io: m}
}

// LiftEnv widens a requirement that cannot fail to any failure type.
func LiftEnv[E, R, A any](m RIO[R, A, Never]) RIO[R, A, E] {
	return RIO[R, A, E]{io: Lift[E](m.io)}
}
