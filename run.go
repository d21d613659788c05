// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

import "errors"

// ErrNilFailure is returned by RunErr when a computation fails with a
// nil error.
var ErrNilFailure = errors.New("envio: computation failed with a nil error")

// Option configures a single interpretation.
type Option func(*config)

type config struct {
	tracer Tracer
	runID  string
	stats  *Stats
}

// WithTracer reports every interpreter transition to t.
func WithTracer(t Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// WithRunID sets the run id stamped on trace events.
// Without it, a traced run gets a fresh UUIDv7.
func WithRunID(id string) Option {
	return func(c *config) { c.runID = id }
}

// WithStats fills s with the statistics of the run.
func WithStats(s *Stats) Option {
	return func(c *config) { c.stats = s }
}

// execute interprets root on a pooled machine.
func execute(root instr, opts []Option) outcome {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	m := acquireMachine(newObserver(&cfg))
	out := m.interpret(root)
	releaseMachine(m)
	return out
}

// Run interprets a computation that cannot fail, for its effects only.
func Run(m UIO[struct{}], opts ...Option) {
	mustSucceed(execute(m.instr, opts))
}

// RunResult interprets m and returns its success as Right or its
// declared failure as Left.
//
// Example:
//
//	sum := envio.AndThen(envio.Succeed(3), func(a int) envio.UIO[int] {
//		return envio.AndThen(envio.Succeed(5), func(b int) envio.UIO[int] {
//			return envio.Effect(func() int { return a + b })
//		})
//	})
//	r := envio.RunResult(sum)
//	// r.GetRight() == (8, true)
func RunResult[A, E any](m IO[A, E], opts ...Option) Either[E, A] {
	out := execute(m.instr, opts)
	if out.failed {
		return Left[E, A](unbox[E](out.value))
	}
	return Right[E](unbox[A](out.value))
}

// FromEither turns an outcome back into a description that succeeds or
// fails the same way.
func FromEither[E, A any](e Either[E, A]) IO[A, E] {
	if e.failed {
		return Fail[A](e.failure)
	}
	return Pure[E](e.value)
}

// RunValue interprets a computation that cannot fail and returns its value.
func RunValue[A any](m UIO[A], opts ...Option) A {
	return unbox[A](mustSucceed(execute(m.instr, opts)))
}

// mustSucceed unwraps the outcome of a computation typed as unable to
// fail. The only Never failure is a nil one built by hand, which
// breaks the typing the combinators rely on.
func mustSucceed(out outcome) Erased {
	if out.failed {
		panic("envio: computation that cannot fail failed")
	}
	return out.value
}

// RunErr interprets m and returns its outcome the Go way.
func RunErr[A any](m IO[A, error], opts ...Option) (A, error) {
	out := execute(m.instr, opts)
	if out.failed {
		var zero A
		if err := unbox[error](out.value); err != nil {
			return zero, err
		}
		return zero, ErrNilFailure
	}
	return unbox[A](out.value), nil
}
