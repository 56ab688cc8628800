// SPDX-License-Identifier: MIT

// Package scenario runs the end-to-end container scenarios S1 to S6 and
// reports the observed state next to the expected one. The CLI prints these
// results; the tests assert on them.
package scenario

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownScenario is returned by Run for a name outside Names().
var ErrUnknownScenario = errors.New("scenario: unknown scenario")

// Check is one observed fact and the value it must have.
type Check struct {
	Label string
	Got   string
	Want  string
}

// OK reports whether the observation matches.
func (c Check) OK() bool { return c.Got == c.Want }

// Result is the outcome of one scenario.
type Result struct {
	Name   string
	Title  string
	State  string // rendered container after the scenario
	Checks []Check
}

// Passed reports whether every check holds.
func (r Result) Passed() bool {
	for _, c := range r.Checks {
		if !c.OK() {
			return false
		}
	}

	return true
}

// String renders the result as a short multi-line report.
func (r Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n  state: %s\n", r.Name, r.Title, r.State)
	for _, c := range r.Checks {
		mark := "ok"
		if !c.OK() {
			mark = "FAIL"
		}
		fmt.Fprintf(&sb, "  %-4s %s = %s", mark, c.Label, c.Got)
		if !c.OK() {
			fmt.Fprintf(&sb, " (want %s)", c.Want)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// recorder accumulates checks while a scenario runs.
type recorder struct {
	checks []Check
}

func (r *recorder) expect(label string, got, want any) {
	r.checks = append(r.checks, Check{Label: label, Got: fmt.Sprint(got), Want: fmt.Sprint(want)})
}

type definition struct {
	title string
	run   func(rec *recorder) (state string, err error)
}

var registry = map[string]definition{
	"S1": {"CDLL append sequence", runCDLLAppend},
	"S2": {"CDLL prepend onto S1", runCDLLPrepend},
	"S3": {"DLL remove-at middle", runDLLRemoveAt},
	"S4": {"CSLL pop-first on a singleton", runCSLLPopFirst},
	"S5": {"max-heap level order", runHeapOrder},
	"S6": {"AVL left-left rotation", runAVLRotation},
}

// Names returns every scenario name in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Run executes the named scenario. An error means the scenario could not
// be carried out at all; failed expectations are reported in the Result.
func Run(name string) (Result, error) {
	def, ok := registry[strings.ToUpper(name)]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	rec := &recorder{}
	state, err := def.run(rec)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", strings.ToUpper(name), err)
	}

	return Result{
		Name:   strings.ToUpper(name),
		Title:  def.title,
		State:  state,
		Checks: rec.checks,
	}, nil
}
