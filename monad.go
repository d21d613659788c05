// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

// Sequencing and recovery combinators.
//
// Minimal definition: Pure and AndThen for sequencing, FoldWith for
// recovery. Map, Then, Fold, Catch and MapError are derived.

// AndThen sequences m with k. If m fails, k is never invoked and the
// failure propagates unchanged.
func AndThen[A, B, E any](m IO[A, E], k func(A) IO[B, E]) IO[B, E] {
	return IO[B, E]{instr: &andThenInstr{
		inner: m.instr,
		k: then(func(a A) instr {
			return k(a).instr
		}),
	}}
}

// Map applies a pure function to the success value of m.
// Map(m, f) is AndThen(m, func(a) Pure(f(a))) without the intermediate IO.
func Map[A, B, E any](m IO[A, E], f func(A) B) IO[B, E] {
	return IO[B, E]{instr: &andThenInstr{
		inner: m.instr,
		k: then(func(a A) instr {
			return &succeedInstr{value: f(a)}
		}),
	}}
}

// Then sequences m and n, discarding the success value of m.
func Then[A, B, E any](m IO[A, E], n IO[B, E]) IO[B, E] {
	return IO[B, E]{instr: &andThenInstr{
		inner: m.instr,
		k:     func(Erased) instr { return n.instr },
	}}
}

// FoldWith runs m and continues with onSuccess or onFailure, whichever
// matches the outcome. Only the nearest enclosing fold sees a failure.
// A failure raised by a branch propagates past this fold.
func FoldWith[A, B, E, F any](m IO[A, E], onSuccess func(A) IO[B, F], onFailure func(E) IO[B, F]) IO[B, F] {
	return IO[B, F]{instr: &foldInstr{
		inner: m.instr,
		onSuccess: then(func(a A) instr {
			return onSuccess(a).instr
		}),
		onFailure: then(func(e E) instr {
			return onFailure(e).instr
		}),
	}}
}

// Fold converts either outcome of m into a success.
// The result cannot fail: its failure type is [Never].
//
// Example:
//
//	m := envio.Fold(work,
//		func(n int) string { return "success" },
//		func(e string) string { return "fail" },
//	)
func Fold[A, B, E any](m IO[A, E], onSuccess func(A) B, onFailure func(E) B) UIO[B] {
	return UIO[B]{instr: &foldInstr{
		inner: m.instr,
		onSuccess: then(func(a A) instr {
			return &succeedInstr{value: onSuccess(a)}
		}),
		onFailure: then(func(e E) instr {
			return &succeedInstr{value: onFailure(e)}
		}),
	}}
}

// Catch recovers from a failure of m with h. Successes pass through.
func Catch[A, E, F any](m IO[A, E], h func(E) IO[A, F]) IO[A, F] {
	return FoldWith(m, Pure[F, A], h)
}

// MapError transforms the failure of m with f. Successes pass through.
func MapError[A, E, F any](m IO[A, E], f func(E) F) IO[A, F] {
	return Catch(m, func(e E) IO[A, F] {
		return Fail[A](f(e))
	})
}
