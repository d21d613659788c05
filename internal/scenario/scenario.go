// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scenario holds named demonstration programs built with envio.
package scenario

import (
	"fmt"
	"slices"
	"strings"

	"code.hybscloud.com/envio"
)

// Outcome is the rendered result of one scenario run.
type Outcome struct {
	Succeeded bool   `yaml:"succeeded"`
	Value     string `yaml:"value,omitempty"`
	Failure   string `yaml:"failure,omitempty"`
}

// String renders the outcome on one line.
func (o Outcome) String() string {
	if o.Succeeded {
		return "success: " + o.Value
	}
	return "failure: " + o.Failure
}

// Scenario is a named program and the outcome it is expected to produce.
type Scenario struct {
	Name        string
	Description string
	Want        Outcome
	Run         func(opts ...envio.Option) Outcome
}

// outcomeOf renders an Either outcome.
func outcomeOf[E, A any](r envio.Either[E, A]) Outcome {
	return envio.MatchEither(r,
		func(e E) Outcome { return Outcome{Failure: fmt.Sprint(e)} },
		func(a A) Outcome { return Outcome{Succeeded: true, Value: fmt.Sprint(a)} },
	)
}

// run interprets m and renders the outcome.
func run[A, E any](m envio.IO[A, E], opts []envio.Option) Outcome {
	return outcomeOf(envio.RunResult(m, opts...))
}

var registry = []Scenario{
	{
		Name:        "sum",
		Description: "succeed(3) and succeed(5) summed in a deferred effect",
		Want:        Outcome{Succeeded: true, Value: "8"},
		Run: func(opts ...envio.Option) Outcome {
			return run(Sum(3, 5), opts)
		},
	},
	{
		Name:        "fail",
		Description: "a chain that fails with 5 after succeeding with 3",
		Want:        Outcome{Failure: "5"},
		Run: func(opts ...envio.Option) Outcome {
			return run(FailAfter(3, 5), opts)
		},
	},
	{
		Name:        "fold",
		Description: "the failing chain recovered by fold",
		Want:        Outcome{Succeeded: true, Value: "fail"},
		Run: func(opts ...envio.Option) Outcome {
			return run(Recovered(FailAfter(3, 5)), opts)
		},
	},
	{
		Name:        "map",
		Description: "succeed(3) mapped through x > 2",
		Want:        Outcome{Succeeded: true, Value: "true"},
		Run: func(opts ...envio.Option) Outcome {
			return run(envio.Map(envio.Succeed(3), func(x int) bool { return x > 2 }), opts)
		},
	},
	{
		Name:        "environment",
		Description: "the environment squared, provided with 4",
		Want:        Outcome{Succeeded: true, Value: "16"},
		Run: func(opts ...envio.Option) Outcome {
			return run(Square().Provide(4), opts)
		},
	},
	{
		Name:        "environment-req",
		Description: "succeed(2) continued by a step that requires the environment, provided with 4",
		Want:        Outcome{Succeeded: true, Value: "8"},
		Run: func(opts ...envio.Option) Outcome {
			return run(Scale(2).Provide(4), opts)
		},
	},
	{
		Name:        "nested-environment",
		Description: "a string environment provided inside an int environment",
		Want:        Outcome{Succeeded: true, Value: "hi!hi!"},
		Run: func(opts ...envio.Option) Outcome {
			return run(Repeat("hi").Provide(2), opts)
		},
	},
	{
		Name:        "bracket",
		Description: "a resource released after its use fails",
		Want:        Outcome{Failure: "use failed (released 1)"},
		Run: func(opts ...envio.Option) Outcome {
			return run(ReleasedOnFailure(), opts)
		},
	},
	{
		Name:        "deep-chain",
		Description: "100000 sequential steps over trivial effects",
		Want:        Outcome{Succeeded: true, Value: "100000"},
		Run: func(opts ...envio.Option) Outcome {
			return run(Count(100_000), opts)
		},
	},
}

// All returns every scenario in registration order.
func All() []Scenario {
	return slices.Clone(registry)
}

// Names returns the scenario names in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q (known: %s)", name, strings.Join(Names(), ", "))
}
