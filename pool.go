// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

import "sync"

// Machine pool for interpreter runs.
// A released machine keeps its stack capacity but no references:
// every slot is zeroed so pooled stacks do not pin continuations or
// environment values.

// maxPooledStack bounds the stack capacity kept across runs.
// Machines that grew past it on a deep chain are left to the collector.
const maxPooledStack = 1 << 12

var machinePool = sync.Pool{New: func() any { return new(machine) }}

// acquireMachine returns an empty machine observed by obs.
func acquireMachine(obs observer) *machine {
	m := machinePool.Get().(*machine)
	m.obs = obs
	return m
}

// releaseMachine clears m and returns it to the pool.
// A machine abandoned by a panic is never released.
func releaseMachine(m *machine) {
	if cap(m.conts) > maxPooledStack || cap(m.envs) > maxPooledStack {
		return
	}
	clear(m.conts[:cap(m.conts)])
	clear(m.envs[:cap(m.envs)])
	m.conts = m.conts[:0]
	m.envs = m.envs[:0]
	m.obs = observer{}
	machinePool.Put(m)
}
