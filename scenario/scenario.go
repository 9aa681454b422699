// Package scenario is a tiny in-process harness: named scenarios are registered,
// executed in registration order and reported as passed or failed.
//
// *T satisfies both assert.TestingT and require.TestingT from testify, so scenario
// bodies use the same assertions as ordinary Go tests:
//
//	r.MustRegister("filter then fold", func(t *scenario.T) {
//		got := seqs.Reduce(seqs.Filter(seqs.Of(8, 7, 3), gt5), 0, add)
//		assert.Equal(t, 15, got)
//	})
package scenario

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrDuplicate   = errors.New("scenario already registered")
	ErrEmptyName   = errors.New("scenario name is empty")
	ErrNoScenarios = errors.New("no scenarios selected")
)

// Func is the body of a scenario.
type Func func(t *T)

// Scenario is a named, self-contained check.
type Scenario struct {
	Name string
	Run  Func
}

// failNow unwinds a scenario body after a fatal assertion.
type failNow struct{}

// T records the failures of a single scenario run.
type T struct {
	name     string
	failures []string
}

// Name returns the scenario name.
func (t *T) Name() string {
	return t.name
}

// Errorf records a failure and lets the scenario continue.
func (t *T) Errorf(format string, args ...any) {
	t.failures = append(t.failures, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// FailNow stops the scenario. Failures recorded so far are kept.
func (t *T) FailNow() {
	if len(t.failures) == 0 {
		t.failures = append(t.failures, "FailNow called")
	}
	panic(failNow{})
}

// Fatalf records a failure and stops the scenario.
func (t *T) Fatalf(format string, args ...any) {
	t.Errorf(format, args...)
	t.FailNow()
}

// Failed reports whether any failure has been recorded.
func (t *T) Failed() bool {
	return len(t.failures) > 0
}

// Result is the outcome of one scenario.
type Result struct {
	Name     string
	Duration time.Duration
	Failures []string
}

// Passed reports whether the scenario recorded no failure.
func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Report collects the results of a run in execution order.
type Report struct {
	Results []Result
}

// Passed returns the number of passing scenarios.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed() {
			n++
		}
	}
	return n
}

// Failed returns the number of failing scenarios.
func (r Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// OK reports whether every executed scenario passed.
func (r Report) OK() bool {
	return r.Failed() == 0
}

// execute runs fn, turning FailNow and unexpected panics into recorded failures.
func execute(name string, fn Func) (res Result) {
	t := &T{name: name}
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(failNow); !ok {
				t.Errorf("panic: %v", p)
			}
		}
		res = Result{Name: name, Duration: time.Since(start), Failures: t.failures}
	}()
	fn(t)
	return res
}
