package scenario

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
)

// Registry holds scenarios in registration order. It is not safe for concurrent use.
type Registry struct {
	scenarios []Scenario
	index     map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a scenario. Names must be unique and non-empty.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.index[name] = len(r.scenarios)
	r.scenarios = append(r.scenarios, Scenario{Name: name, Run: fn})
	return nil
}

// MustRegister is Register that panics on error. Meant for static catalogs.
func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Len returns the number of registered scenarios.
func (r *Registry) Len() int {
	return len(r.scenarios)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.scenarios))
	for i, s := range r.scenarios {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the scenario registered under name.
func (r *Registry) Lookup(name string) (Scenario, bool) {
	i, ok := r.index[name]
	if !ok {
		return Scenario{}, false
	}
	return r.scenarios[i], true
}

// RunOptions controls a Run.
type RunOptions struct {
	// Filter selects scenarios by name. Nil selects all.
	Filter *regexp.Regexp
	// FailFast stops after the first failing scenario.
	FailFast bool
	// Logger receives one event per scenario. The zero value discards output.
	Logger zerolog.Logger
}

// Run executes the selected scenarios sequentially and returns their results.
//
// The context is checked between scenarios; on cancellation the partial report is
// returned together with ctx.Err(). ErrNoScenarios is returned when the filter
// selects nothing.
func (r *Registry) Run(ctx context.Context, opts RunOptions) (Report, error) {
	var report Report
	log := opts.Logger

	selected := 0
	for _, s := range r.scenarios {
		if opts.Filter != nil && !opts.Filter.MatchString(s.Name) {
			continue
		}
		selected++

		if err := ctx.Err(); err != nil {
			return report, err
		}

		log.Debug().Str("scenario", s.Name).Msg("running")
		res := execute(s.Name, s.Run)
		report.Results = append(report.Results, res)

		if res.Passed() {
			log.Info().Str("scenario", s.Name).Dur("duration", res.Duration).Msg("pass")
			continue
		}

		log.Error().
			Str("scenario", s.Name).
			Dur("duration", res.Duration).
			Strs("failures", res.Failures).
			Msg("fail")
		if opts.FailFast {
			break
		}
	}

	if selected == 0 {
		return report, ErrNoScenarios
	}

	log.Info().
		Int("passed", report.Passed()).
		Int("failed", report.Failed()).
		Msg("run finished")
	return report, nil
}
