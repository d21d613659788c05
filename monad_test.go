// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/envio"
)

func TestSucceed(t *testing.T) {
	r := envio.RunResult(envio.Succeed(42))
	v, ok := r.GetRight()
	if !ok || v != 42 {
		t.Fatalf("RunResult(Succeed(42)) = %v, %v; want 42, true", v, ok)
	}
}

func TestFail(t *testing.T) {
	r := envio.RunResult(envio.Fail[int]("boom"))
	e, ok := r.GetLeft()
	if !ok || e != "boom" {
		t.Fatalf("RunResult(Fail(boom)) = %q, %v; want boom, true", e, ok)
	}
}

func TestSumScenario(t *testing.T) {
	m := envio.AndThen(envio.Succeed(3), func(a int) envio.UIO[int] {
		return envio.AndThen(envio.Succeed(5), func(b int) envio.UIO[int] {
			return envio.Effect(func() int { return a + b })
		})
	})

	r := envio.RunResult(m)
	v, ok := r.GetRight()
	if !ok || v != 8 {
		t.Fatalf("got %v, %v; want 8, true", v, ok)
	}
}

func TestFailScenario(t *testing.T) {
	m := envio.AndThen(envio.Pure[int](3), func(a int) envio.IO[int, int] {
		return envio.Fail[int](5)
	})

	r := envio.RunResult(m)
	e, ok := r.GetLeft()
	if !ok || e != 5 {
		t.Fatalf("got %v, %v; want failure 5", e, ok)
	}
}

func TestFoldScenario(t *testing.T) {
	var effectRan bool
	failing := envio.AndThen(envio.Pure[int](3), func(a int) envio.IO[struct{}, int] {
		return envio.AndThen(envio.Fail[struct{}](5), func(struct{}) envio.IO[struct{}, int] {
			return envio.Lift[int](envio.Effect(func() struct{} {
				effectRan = true
				return struct{}{}
			}))
		})
	})
	m := envio.Fold(failing,
		func(struct{}) string { return "success" },
		func(int) string { return "fail" },
	)

	r := envio.RunResult(m)
	v, ok := r.GetRight()
	if !ok || v != "fail" {
		t.Fatalf("got %q, %v; want fail, true", v, ok)
	}
	if effectRan {
		t.Fatal("effect after failure ran")
	}
}

func TestMap(t *testing.T) {
	m := envio.Map(envio.Succeed(3), func(u int) bool { return u > 2 })
	if !envio.RunValue(m) {
		t.Fatal("Map(Succeed(3), >2) = false, want true")
	}
}

func TestMapTypeConversion(t *testing.T) {
	m := envio.Map(envio.Succeed(42), strconv.Itoa)
	if got := envio.RunValue(m); got != "42" {
		t.Fatalf("got %q, want \"42\"", got)
	}
}

func TestThen(t *testing.T) {
	var order []int
	record := func(n int) envio.UIO[int] {
		return envio.Effect(func() int {
			order = append(order, n)
			return n
		})
	}
	m := envio.Then(record(1), envio.Then(record(2), record(3)))
	if got := envio.RunValue(m); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}
}

func TestShortCircuit(t *testing.T) {
	called := false
	m := envio.AndThen(envio.Fail[int]("e"), func(int) envio.IO[int, string] {
		called = true
		return envio.Pure[string](1)
	})
	r := envio.RunResult(m)
	if called {
		t.Fatal("continuation invoked after failure")
	}
	if e, _ := r.GetLeft(); e != "e" {
		t.Fatalf("got %q, want e", e)
	}
}

func TestFoldSuccessBranch(t *testing.T) {
	failureCalled := false
	m := envio.Fold(envio.Pure[string](2),
		func(n int) int { return n * 10 },
		func(string) int {
			failureCalled = true
			return -1
		},
	)
	if got := envio.RunValue(m); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
	if failureCalled {
		t.Fatal("failure branch invoked on success")
	}
}

func TestNearestFoldCapture(t *testing.T) {
	successCalled := false
	a := envio.Pure[string](1)
	m := envio.Fold(
		envio.AndThen(a, func(n int) envio.IO[int, string] {
			return envio.Fail[int]("bad " + strconv.Itoa(n))
		}),
		func(int) string {
			successCalled = true
			return "ok"
		},
		func(e string) string { return "handled: " + e },
	)
	if got := envio.RunValue(m); got != "handled: bad 1" {
		t.Fatalf("got %q", got)
	}
	if successCalled {
		t.Fatal("success branch invoked on failure")
	}
}

func TestFoldLocality(t *testing.T) {
	var innerCalls, outerCalls int
	inner := envio.Fold(
		envio.AndThen(envio.Pure[string](1), func(int) envio.IO[int, string] {
			return envio.Fail[int]("inner")
		}),
		func(int) string { return "ok" },
		func(e string) string {
			innerCalls++
			return "recovered: " + e
		},
	)
	outer := envio.Fold(envio.Lift[string](inner),
		func(s string) string { return s },
		func(string) string {
			outerCalls++
			return "outer"
		},
	)

	if got := envio.RunValue(outer); got != "recovered: inner" {
		t.Fatalf("got %q", got)
	}
	if innerCalls != 1 || outerCalls != 0 {
		t.Fatalf("inner=%d outer=%d, want 1 and 0", innerCalls, outerCalls)
	}
}

func TestFoldWithBranchFailurePropagates(t *testing.T) {
	inner := envio.FoldWith(envio.Fail[int]("first"),
		func(n int) envio.IO[int, string] { return envio.Pure[string](n) },
		func(e string) envio.IO[int, string] { return envio.Fail[int](e + " then second") },
	)
	outer := envio.Fold(inner,
		func(int) string { return "ok" },
		func(e string) string { return e },
	)
	if got := envio.RunValue(outer); got != "first then second" {
		t.Fatalf("got %q", got)
	}
}

func TestCatch(t *testing.T) {
	m := envio.Catch(envio.Fail[int]("error"), func(string) envio.IO[int, string] {
		return envio.Pure[string](99)
	})
	if v, ok := envio.RunResult(m).GetRight(); !ok || v != 99 {
		t.Fatalf("got %d, %v; want 99, true", v, ok)
	}
}

func TestCatchNoError(t *testing.T) {
	m := envio.Catch(envio.Pure[string](42), func(string) envio.IO[int, string] {
		t.Fatal("handler invoked without failure")
		return envio.Pure[string](0)
	})
	if v, _ := envio.RunResult(m).GetRight(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestMapError(t *testing.T) {
	m := envio.MapError(envio.Fail[int](404), func(code int) string {
		return "status " + strconv.Itoa(code)
	})
	if e, ok := envio.RunResult(m).GetLeft(); !ok || e != "status 404" {
		t.Fatalf("got %q, %v", e, ok)
	}
}

func TestRunFailingUIOPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "envio: computation that cannot fail failed" {
			t.Fatalf("recover() = %v", r)
		}
	}()
	envio.RunValue(envio.Fail[int, envio.Never](nil))
}
