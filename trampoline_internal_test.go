// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

import "testing"

// panicValue runs f and returns what it panicked with, or nil.
func panicValue(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}

func TestReadWithEmptyEnvironmentPanics(t *testing.T) {
	m := &machine{}
	read := &readInstr{k: func(v Erased) instr { return &succeedInstr{value: v} }}
	if r := panicValue(func() { m.interpret(read) }); r != "envio: read with empty environment stack" {
		t.Fatalf("panic = %v", r)
	}
}

func TestReadNotCaughtByFold(t *testing.T) {
	m := &machine{}
	root := &foldInstr{
		inner:     &readInstr{k: func(v Erased) instr { return &succeedInstr{value: v} }},
		onSuccess: func(v Erased) instr { return &succeedInstr{value: v} },
		onFailure: func(v Erased) instr { return &succeedInstr{value: "recovered"} },
	}
	if r := panicValue(func() { m.interpret(root) }); r == nil {
		t.Fatal("fold caught an empty-environment read")
	}
}

func TestUnboxMismatchPanics(t *testing.T) {
	r := panicValue(func() { unbox[int]("x") })
	if r != "envio: erased value has type string, want int" {
		t.Fatalf("panic = %v", r)
	}
}

func TestUnboxNilCompletesNillableTypes(t *testing.T) {
	if v := unbox[Never](nil); v != nil {
		t.Fatalf("unbox[Never](nil) = %v", v)
	}
	if v := unbox[error](nil); v != nil {
		t.Fatalf("unbox[error](nil) = %v", v)
	}
	if v := unbox[*int](nil); v != nil {
		t.Fatalf("unbox[*int](nil) = %v", v)
	}
	if v := unbox[[]string](nil); v != nil {
		t.Fatalf("unbox[[]string](nil) = %v", v)
	}
}

func TestUnboxNilAsValueTypePanics(t *testing.T) {
	r := panicValue(func() { unbox[int](nil) })
	if r != "envio: erased value has type <nil>, want int" {
		t.Fatalf("unbox[int](nil) panic = %v", r)
	}
	if r := panicValue(func() { unbox[struct{}](nil) }); r == nil {
		t.Fatal("unbox[struct{}](nil) did not panic")
	}
}

func TestContinuationTypeMismatchPanics(t *testing.T) {
	// A continuation built for int fed a string: a construction bug.
	root := &andThenInstr{
		inner: &succeedInstr{value: "not an int"},
		k:     then(func(n int) instr { return &succeedInstr{value: n} }),
	}
	if r := panicValue(func() { execute(root, nil) }); r == nil {
		t.Fatal("mismatched continuation did not panic")
	}
}

func TestUnknownInstructionPanics(t *testing.T) {
	m := &machine{}
	if r := panicValue(func() { m.interpret(nil) }); r != "envio: unknown instruction" {
		t.Fatalf("panic = %v", r)
	}
}

func TestUnwindDiscardsThenFrames(t *testing.T) {
	m := &machine{}
	called := false
	m.push(frame{kind: frameFold, onFailure: func(e Erased) instr { return &succeedInstr{value: e} }})
	m.push(frame{kind: frameThen, k: func(Erased) instr {
		called = true
		return nil
	}})
	next, ok := m.unwind("e")
	if !ok {
		t.Fatal("unwind found no fold frame")
	}
	if s, isSucceed := next.(*succeedInstr); !isSucceed || s.value != "e" {
		t.Fatalf("next = %#v, want succeed e", next)
	}
	if called {
		t.Fatal("unwind ran a then continuation")
	}
	if len(m.conts) != 0 {
		t.Fatalf("len(conts) = %d, want 0", len(m.conts))
	}
}

func TestUnwindLeavesScopes(t *testing.T) {
	m := &machine{}
	m.envs = append(m.envs, "outer")
	m.push(frame{kind: frameScope})
	m.envs = append(m.envs, "inner")
	m.push(frame{kind: frameScope})

	if _, ok := m.unwind("e"); ok {
		t.Fatal("unwind reported a handler")
	}
	if len(m.envs) != 0 {
		t.Fatalf("len(envs) = %d, want 0", len(m.envs))
	}
}

func TestResumeLeavesScopes(t *testing.T) {
	m := &machine{}
	m.push(frame{kind: frameThen, k: func(v Erased) instr { return &succeedInstr{value: v} }})
	m.envs = append(m.envs, 1)
	m.push(frame{kind: frameScope})

	next, ok := m.resume(2)
	if !ok {
		t.Fatal("resume found no continuation")
	}
	if s, isSucceed := next.(*succeedInstr); !isSucceed || s.value != 2 {
		t.Fatalf("next = %#v, want succeed 2", next)
	}
	if len(m.envs) != 0 || len(m.conts) != 0 {
		t.Fatalf("envs=%d conts=%d, want both empty", len(m.envs), len(m.conts))
	}
}

func TestReleaseMachineClearsReferences(t *testing.T) {
	m := acquireMachine(observer{})
	m.push(frame{kind: frameThen, k: func(Erased) instr { return nil }})
	m.envs = append(m.envs, "env")
	m.pop()

	releaseMachine(m)
	if len(m.conts) != 0 || len(m.envs) != 0 {
		t.Fatalf("envs=%d conts=%d, want both empty", len(m.envs), len(m.conts))
	}
	for i, f := range m.conts[:cap(m.conts)] {
		if f.k != nil {
			t.Fatalf("conts[%d] still holds a continuation", i)
		}
	}
	for i, e := range m.envs[:cap(m.envs)] {
		if e != nil {
			t.Fatalf("envs[%d] = %v, want nil", i, e)
		}
	}
}

func TestReleaseMachineDropsLargeStacks(t *testing.T) {
	m := &machine{conts: make([]frame, 0, maxPooledStack+1)}
	releaseMachine(m)
	if cap(m.conts) != maxPooledStack+1 {
		t.Fatalf("cap(conts) = %d, oversized machine was reset for pooling", cap(m.conts))
	}
}
