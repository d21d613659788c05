// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package envio

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Op names an interpreter transition.
type Op string

const (
	OpFuse      Op = "fuse"       // AndThen over Succeed/Effect, applied without a stack frame
	OpAndThen   Op = "and_then"   // continuation pushed, inner step next
	OpSucceed   Op = "succeed"    // value delivered to the stack
	OpEffect    Op = "effect"     // thunk run, value delivered to the stack
	OpFail      Op = "fail"       // failure unwinding the stack
	OpFold      Op = "fold"       // fold branches pushed
	OpRead      Op = "read"       // environment read
	OpProvide   Op = "provide"    // environment pushed, scope entered
	OpScopeExit Op = "scope_exit" // environment popped on leaving its scope
	OpDone      Op = "done"       // final success
	OpFailed    Op = "failed"     // final failure
)

// Event is one interpreter transition. ContDepth and EnvDepth are the
// stack depths when the transition starts, except for OpScopeExit which
// reports them after the environment was popped.
type Event struct {
	RunID     string `yaml:"run_id,omitempty"`
	Seq       int    `yaml:"seq"`
	Op        Op     `yaml:"op"`
	ContDepth int    `yaml:"cont_depth"`
	EnvDepth  int    `yaml:"env_depth"`
}

// Tracer receives interpreter transitions synchronously, on the
// interpreting goroutine.
type Tracer interface {
	Trace(ev Event)
}

// TracerFunc adapts a function to [Tracer].
type TracerFunc func(ev Event)

// Trace calls f(ev).
func (f TracerFunc) Trace(ev Event) { f(ev) }

// multiTracer fans events out in order.
type multiTracer []Tracer

func (m multiTracer) Trace(ev Event) {
	for _, t := range m {
		t.Trace(ev)
	}
}

// MultiTracer returns a Tracer that forwards each event to every non-nil
// tracer in ts, in order. It returns nil when none remain.
func MultiTracer(ts ...Tracer) Tracer {
	var out multiTracer
	for _, t := range ts {
		if t != nil {
			out = append(out, t)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return out
}

// Recorder is a Tracer that keeps every event in order.
type Recorder struct {
	Events []Event
}

// Trace appends ev.
func (r *Recorder) Trace(ev Event) {
	r.Events = append(r.Events, ev)
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

// WriteText writes one line per event. Run ids are omitted, so the
// output is deterministic for a given description.
func (r *Recorder) WriteText(w io.Writer) error {
	for _, ev := range r.Events {
		if _, err := fmt.Fprintf(w, "%04d %-10s cont=%d env=%d\n", ev.Seq, ev.Op, ev.ContDepth, ev.EnvDepth); err != nil {
			return err
		}
	}
	return nil
}

// logTracer forwards events to a structured logger.
type logTracer struct {
	logger *slog.Logger
	level  slog.Level
}

func (t *logTracer) Trace(ev Event) {
	t.logger.LogAttrs(context.Background(), t.level, "envio step",
		slog.String("run_id", ev.RunID),
		slog.Int("seq", ev.Seq),
		slog.String("op", string(ev.Op)),
		slog.Int("cont_depth", ev.ContDepth),
		slog.Int("env_depth", ev.EnvDepth),
	)
}

// LogTracer returns a Tracer logging each event at debug level.
func LogTracer(logger *slog.Logger) Tracer {
	return &logTracer{logger: logger, level: slog.LevelDebug}
}

// Stats summarizes one run.
type Stats struct {
	Steps        int `yaml:"steps"`          // instructions consumed
	MaxContDepth int `yaml:"max_cont_depth"` // deepest continuation stack
	MaxEnvDepth  int `yaml:"max_env_depth"`  // deepest environment stack
}

// observer fans interpreter transitions out to the tracer and stats.
// The zero observer does nothing.
type observer struct {
	tracer Tracer
	runID  string
	seq    int
	stats  *Stats
}

func newObserver(cfg *config) observer {
	obs := observer{tracer: cfg.tracer, runID: cfg.runID, stats: cfg.stats}
	if obs.tracer != nil && obs.runID == "" {
		obs.runID = uuid.Must(uuid.NewV7()).String()
	}
	if obs.stats != nil {
		*obs.stats = Stats{}
	}
	return obs
}

func (o *observer) step(op Op, cont, env int) {
	if o.stats != nil {
		switch op {
		case OpScopeExit, OpDone, OpFailed:
		default:
			o.stats.Steps++
		}
	}
	if o.tracer == nil {
		return
	}
	o.seq++
	o.tracer.Trace(Event{RunID: o.runID, Seq: o.seq, Op: op, ContDepth: cont, EnvDepth: env})
}

func (o *observer) depth(cont, env int) {
	if o.stats == nil {
		return
	}
	o.stats.MaxContDepth = max(o.stats.MaxContDepth, cont)
	o.stats.MaxEnvDepth = max(o.stats.MaxEnvDepth, env)
}
