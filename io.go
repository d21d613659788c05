// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

// Never is the failure type of computations that cannot fail.
// No type implements it, so the nil interface is its only value and a
// Never failure can never be constructed by ordinary means.
type Never interface {
	never()
}

// IO describes a computation that produces A or fails with E.
// An IO is an immutable description: building one performs no work.
// Only IO values may be interpreted; see [RunResult].
type IO[A, E any] struct {
	instr instr
}

// UIO describes a computation that cannot fail.
type UIO[A any] = IO[A, Never]

// Succeed describes a computation that yields a with no work performed.
func Succeed[A any](a A) UIO[A] {
	return UIO[A]{instr: &succeedInstr{value: a}}
}

// Pure is [Succeed] with an explicit failure type, for use in chains
// whose failure type is not Never.
//
// Example:
//
//	m := envio.Pure[string](3) // IO[int, string]
func Pure[E, A any](a A) IO[A, E] {
	return IO[A, E]{instr: &succeedInstr{value: a}}
}

// Fail describes a computation that always fails with e.
// Type inference handles E: Fail[int](errBoom) is an IO[int, error].
func Fail[A, E any](e E) IO[A, E] {
	return IO[A, E]{instr: &failInstr{err: e}}
}

// Effect defers thunk until the interpreter reaches it.
// The thunk runs in-line on the interpreting goroutine, once each time
// the interpreter reaches this node.
func Effect[A any](thunk func() A) UIO[A] {
	return UIO[A]{instr: &effectInstr{thunk: func() Erased { return thunk() }}}
}

// Attempt defers a Go-style fallible call. A non-nil error becomes a
// declared failure; otherwise the value becomes the success.
func Attempt[A any](f func() (A, error)) IO[A, error] {
	eff := &effectInstr{thunk: func() Erased {
		a, err := f()
		return attempted[A]{a: a, err: err}
	}}
	return IO[A, error]{instr: &andThenInstr{
		inner: eff,
		k: then(func(r attempted[A]) instr {
			if r.err != nil {
				return &failInstr{err: r.err}
			}
			return &succeedInstr{value: r.a}
		}),
	}}
}

// attempted carries both results of an Attempt thunk to its continuation.
type attempted[A any] struct {
	a   A
	err error
}

// Lift widens a computation that cannot fail to any failure type.
func Lift[E, A any](m UIO[A]) IO[A, E] {
	return IO[A, E]{instr: m.instr}
}
