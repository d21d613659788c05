// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

// frameKind tags an entry of the continuation stack.
type frameKind uint8

const (
	// frameThen holds a plain continuation, applied to successes only.
	frameThen frameKind = iota
	// frameFold holds a success branch and a failure branch.
	frameFold
	// frameScope marks the extent of a Provide; leaving it pops the environment.
	frameScope
)

// frame is one entry of the continuation stack.
type frame struct {
	kind      frameKind
	k         kleisli
	onFailure kleisli
}

// machine is the interpreter state for a single run.
// conts and envs are both last-in-first-out.
type machine struct {
	conts []frame
	envs  []Erased
	obs   observer
}

// outcome is the terminal state of a run.
type outcome struct {
	value  Erased
	failed bool
}

// interpret drives root to a terminal outcome.
//
// The loop consumes one instruction per iteration and never recurses,
// so the Go call depth does not depend on the length of the chain.
func (m *machine) interpret(root instr) outcome {
	cur := root
	for {
		switch in := cur.(type) {
		case *andThenInstr:
			// Peephole: a terminal inner step feeds k directly without
			// touching the stack.
			switch inner := in.inner.(type) {
			case *succeedInstr:
				m.step(OpFuse)
				cur = in.k(inner.value)
				continue
			case *effectInstr:
				m.step(OpFuse)
				cur = in.k(inner.thunk())
				continue
			}
			m.step(OpAndThen)
			m.push(frame{kind: frameThen, k: in.k})
			cur = in.inner
		case *succeedInstr:
			m.step(OpSucceed)
			next, ok := m.resume(in.value)
			if !ok {
				m.step(OpDone)
				return outcome{value: in.value}
			}
			cur = next
		case *effectInstr:
			m.step(OpEffect)
			v := in.thunk()
			next, ok := m.resume(v)
			if !ok {
				m.step(OpDone)
				return outcome{value: v}
			}
			cur = next
		case *foldInstr:
			m.step(OpFold)
			m.push(frame{kind: frameFold, k: in.onSuccess, onFailure: in.onFailure})
			cur = in.inner
		case *failInstr:
			m.step(OpFail)
			next, ok := m.unwind(in.err)
			if !ok {
				m.step(OpFailed)
				return outcome{value: in.err, failed: true}
			}
			cur = next
		case *readInstr:
			m.step(OpRead)
			if len(m.envs) == 0 {
				panic("envio: read with empty environment stack")
			}
			cur = in.k(m.envs[len(m.envs)-1])
		case *provideInstr:
			m.step(OpProvide)
			m.envs = append(m.envs, in.env)
			m.push(frame{kind: frameScope})
			cur = in.next
		default:
			panic("envio: unknown instruction")
		}
	}
}

// resume delivers a success value to the top of the continuation stack.
// Scope frames are left on the way. Returns false when the stack is
// exhausted and v is the final success.
func (m *machine) resume(v Erased) (instr, bool) {
	for len(m.conts) > 0 {
		f := m.pop()
		switch f.kind {
		case frameThen, frameFold:
			return f.k(v), true
		case frameScope:
			m.leaveScope()
		}
	}
	return nil, false
}

// unwind discards plain continuations until a fold's failure branch is
// found and applies it to e. Scope frames are left on the way. Returns
// false when the stack is exhausted and e is the final failure.
func (m *machine) unwind(e Erased) (instr, bool) {
	for len(m.conts) > 0 {
		f := m.pop()
		switch f.kind {
		case frameFold:
			return f.onFailure(e), true
		case frameScope:
			m.leaveScope()
		}
	}
	return nil, false
}

func (m *machine) push(f frame) {
	m.conts = append(m.conts, f)
	m.obs.depth(len(m.conts), len(m.envs))
}

func (m *machine) pop() frame {
	n := len(m.conts) - 1
	f := m.conts[n]
	m.conts[n] = frame{}
	m.conts = m.conts[:n]
	return f
}

func (m *machine) leaveScope() {
	if len(m.envs) == 0 {
		panic("envio: environment scope left twice")
	}
	n := len(m.envs) - 1
	m.envs[n] = nil
	m.envs = m.envs[:n]
	m.step(OpScopeExit)
}

// step reports one interpreter transition to the observer.
func (m *machine) step(op Op) {
	m.obs.step(op, len(m.conts), len(m.envs))
}
