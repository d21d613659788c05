// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"strings"

	"code.hybscloud.com/envio"
)

// Sum adds a and b in a deferred effect.
func Sum(a, b int) envio.UIO[int] {
	return envio.AndThen(envio.Succeed(a), func(x int) envio.UIO[int] {
		return envio.AndThen(envio.Succeed(b), func(y int) envio.UIO[int] {
			return envio.Effect(func() int { return x + y })
		})
	})
}

// FailAfter succeeds with a, then fails with e.
func FailAfter(a, e int) envio.IO[int, int] {
	return envio.AndThen(envio.Pure[int](a), func(int) envio.IO[int, int] {
		return envio.Fail[int](e)
	})
}

// Recovered folds m into "success" or "fail".
func Recovered[A, E any](m envio.IO[A, E]) envio.UIO[string] {
	return envio.Fold(m,
		func(A) string { return "success" },
		func(E) string { return "fail" },
	)
}

// Square reads the environment and squares it.
func Square() envio.RIO[int, int, envio.Never] {
	return envio.MapEnv(envio.Environment[int](), func(n int) int { return n * n })
}

// Scale multiplies v by the environment, read after v is produced.
func Scale(v int) envio.RIO[int, int, envio.Never] {
	return envio.AndThenReq(envio.Succeed(v), func(x int) envio.RIO[int, int, envio.Never] {
		return envio.AndThenEnv(envio.Environment[int](), func(env int) envio.UIO[int] {
			return envio.Succeed(env * x)
		})
	})
}

// Repeat provides s to an inner description and repeats its result as
// many times as the outer int environment says.
func Repeat(s string) envio.RIO[int, string, envio.Never] {
	exclaim := envio.MapEnv(envio.Environment[string](), func(v string) string { return v + "!" })
	return envio.AndThenEnv(envio.Environment[int](), func(n int) envio.UIO[string] {
		return envio.Map(exclaim.Provide(s), func(v string) string { return strings.Repeat(v, n) })
	})
}

// ReleasedOnFailure brackets a resource whose use fails and reports how
// many times it was released.
func ReleasedOnFailure() envio.IO[int, string] {
	released := 0
	release := func(int) envio.UIO[struct{}] {
		return envio.Effect(func() struct{} {
			released++
			return struct{}{}
		})
	}
	use := func(int) envio.IO[int, string] {
		return envio.Fail[int]("use failed")
	}
	return envio.MapError(envio.Bracket(envio.Pure[string](1), release, use), func(e string) string {
		return fmt.Sprintf("%s (released %d)", e, released)
	})
}

// Count runs n sequential effects, each adding one.
func Count(n int) envio.UIO[int] {
	var step func(x int) envio.UIO[int]
	step = func(x int) envio.UIO[int] {
		if x == n {
			return envio.Succeed(x)
		}
		return envio.AndThen(envio.Effect(func() int { return x + 1 }), step)
	}
	return envio.AndThen(envio.Succeed(0), step)
}
