// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

import (
	"fmt"
	"reflect"
)

// Erased represents a type-erased value crossing an instruction boundary.
// Combinators box values into Erased when building the tree and recover
// the concrete type with a single checked assertion at the point of use.
type Erased = any

// instr is one node of a computation description.
// Dispatch uses type switches, not tags: instr is a pure marker interface.
type instr interface {
	instr() // unexported marker method
}

// kleisli maps the value produced by one step to the next instruction.
// It is only ever applied to a value of the type it was built for.
type kleisli func(Erased) instr

// succeedInstr yields value without performing work.
type succeedInstr struct {
	value Erased
}

func (*succeedInstr) instr() {}

// failInstr terminates with a declared failure.
type failInstr struct {
	err Erased
}

func (*failInstr) instr() {}

// effectInstr defers a side-effecting thunk until the interpreter reaches it.
type effectInstr struct {
	thunk func() Erased
}

func (*effectInstr) instr() {}

// andThenInstr runs inner, then feeds its success value to k.
// A failure of inner bypasses k.
type andThenInstr struct {
	inner instr
	k     kleisli
}

func (*andThenInstr) instr() {}

// foldInstr runs inner and routes its outcome to exactly one branch.
type foldInstr struct {
	inner     instr
	onSuccess kleisli
	onFailure kleisli
}

func (*foldInstr) instr() {}

// readInstr feeds the innermost provided environment value to k.
type readInstr struct {
	k kleisli
}

func (*readInstr) instr() {}

// provideInstr makes env visible to the reads of next for the duration of next.
type provideInstr struct {
	env  Erased
	next instr
}

func (*provideInstr) instr() {}

// unbox recovers the static type of an erased value.
//
// Nil completion convention: a nil erased value unboxes to the zero value
// of A when A is nillable, so interface-typed payloads such as Never
// round-trip. A nil for any other A, or any type mismatch, is a
// construction bug and panics.
func unbox[A any](v Erased) A {
	if a, ok := v.(A); ok {
		return a
	}
	if v == nil && nillable(reflect.TypeFor[A]()) {
		var zero A
		return zero
	}
	panic(fmt.Sprintf("envio: erased value has type %T, want %v", v, reflect.TypeFor[A]()))
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// then builds a plain continuation from a typed function.
func then[A any](f func(A) instr) kleisli {
	return func(v Erased) instr {
		return f(unbox[A](v))
	}
}
