// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

// Either is the outcome of one interpretation as returned by RunResult:
// Left carries the declared failure, Right the success value.
type Either[E, A any] struct {
	failed  bool
	failure E
	value   A
}

// Left is the outcome of a computation that failed with e.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{failed: true, failure: e}
}

// Right is the outcome of a computation that succeeded with a.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{value: a}
}

// IsLeft reports whether the computation failed.
func (e Either[E, A]) IsLeft() bool { return e.failed }

// IsRight reports whether the computation succeeded.
func (e Either[E, A]) IsRight() bool { return !e.failed }

// GetRight returns the success value, or the zero value and false.
func (e Either[E, A]) GetRight() (A, bool) {
	return e.value, !e.failed
}

// GetLeft returns the failure, or the zero value and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	return e.failure, e.failed
}

// MatchEither eliminates an outcome into a single result.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.failed {
		return onLeft(e.failure)
	}
	return onRight(e.value)
}
