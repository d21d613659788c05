// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

// Resource safety combinators, built on FoldWith.
// Finalizers cannot fail, so a failure of use is never masked.

// Bracket acquires a resource, uses it, and releases it.
// release runs exactly once if acquire succeeds, whether use succeeds
// or fails; the outcome of use is kept. If acquire fails, neither use
// nor release runs.
func Bracket[R, A, E any](
	acquire IO[R, E],
	release func(R) UIO[struct{}],
	use func(R) IO[A, E],
) IO[A, E] {
	return AndThen(acquire, func(r R) IO[A, E] {
		return Ensuring(use(r), release(r))
	})
}

// Ensuring runs finalizer after m, whichever way m completes.
func Ensuring[A, E any](m IO[A, E], finalizer UIO[struct{}]) IO[A, E] {
	return FoldWith(m,
		func(a A) IO[A, E] {
			return Then(Lift[E](finalizer), Pure[E](a))
		},
		func(e E) IO[A, E] {
			return Then(Lift[E](finalizer), Fail[A](e))
		},
	)
}

// OnError runs cleanup only if m fails, then re-raises the failure.
func OnError[A, E any](m IO[A, E], cleanup func(E) UIO[struct{}]) IO[A, E] {
	return Catch(m, func(e E) IO[A, E] {
		return Then(Lift[E](cleanup(e)), Fail[A](e))
	})
}
