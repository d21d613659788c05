// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package envio provides staged computations: immutable descriptions of
// sequential, possibly failing, possibly environment-dependent work, and
// an interpreter that runs them to completion.
//
// Building a description performs no work. Descriptions are trees of
// tagged instructions; the interpreter walks a tree with an explicit
// continuation stack and an explicit environment stack, so the Go call
// depth never grows with the length of a chain.
//
// # Types
//
//   - [IO]: a description producing A or failing with E. The only runnable type.
//   - [UIO]: IO[A, Never], a description that cannot fail.
//   - [RIO]: a description requiring an environment R. Not runnable until
//     [RIO.Provide] discharges the requirement.
//   - [Never]: the failure type of computations that cannot fail.
//   - [Either]: the outcome of [RunResult].
//
// # Constructors
//
//   - [Succeed], [Pure]: a value, no work
//   - [Fail]: a declared failure
//   - [Effect]: a deferred side-effecting thunk
//   - [Attempt]: a deferred (value, error) call
//   - [Lift]: widen the failure type of a UIO
//
// # Combinators
//
//   - [AndThen], [Map], [Then]: sequencing; failures bypass continuations
//   - [FoldWith]: route success and failure to description-valued branches
//   - [Fold]: total recovery, the result is a UIO
//   - [Catch], [MapError]: recover from or transform failures
//   - [Bracket], [Ensuring], [OnError]: resource safety
//
// # Environment
//
//   - [Environment], [Access]: read the innermost provided environment
//   - [AndThenEnv], [MapEnv], [FoldEnv]: combinators that keep the requirement
//   - [AndThenReq]: introduce a requirement after an ordinary step
//   - [Require], [LiftEnv]: adjust requirement and failure type
//   - [RIO.Provide]: supply the environment for the extent of one description
//
// Provide pushes its value for the duration of the nested description and
// pops it when that description completes, on success and on failure.
// Reads see the innermost value.
//
// # Execution
//
//   - [Run]: run a UIO[struct{}] for its effects
//   - [RunResult]: run any IO, returning [Either]
//   - [RunValue]: run a UIO and return its value
//   - [RunErr]: run an IO[A, error] and return (A, error); a nil failure
//     comes back as [ErrNilFailure]
//   - [FromEither]: turn an outcome back into an IO
//
// Each entry point accepts [Option]s: [WithTracer], [WithRunID], [WithStats].
//
// # Failures and invariant violations
//
// Declared failures are values introduced by [Fail] (or [Attempt]). On a
// failure the interpreter discards pending continuations until the nearest
// enclosing fold, whose failure branch takes over; with no fold the failure
// is the outcome of the run.
//
// Internal invariant violations panic: an erased value recovered at the
// wrong type, or a read with no provided environment. The typed
// combinators make both unreachable; they are not failures and no fold
// catches them.
//
// # Example
//
//	prog := envio.Fold(
//		envio.AndThen(envio.Pure[int](3), func(a int) envio.IO[int, int] {
//			return envio.Fail[int](5)
//		}),
//		func(int) string { return "success" },
//		func(int) string { return "fail" },
//	)
//	s := envio.RunValue(prog)
//	// s == "fail"
package envio
