// Package catalog is the battery of scenarios run by rangeplay. Each scenario
// builds a small in-memory sequence, applies one or two lazy stages, forces
// evaluation and checks a literal result.
package catalog

import (
	"rangeplay/scenario"
)

// group registers a related set of scenarios.
type group func(r *scenario.Registry)

var groups = []group{
	registerPipelines,
	registerGenerators,
	registerCombinators,
	registerSets,
	registerTerminals,
	registerPuzzles,
}

// Register adds every scenario of the catalog to r.
func Register(r *scenario.Registry) {
	for _, g := range groups {
		g(r)
	}
}

// New returns a registry holding the whole catalog.
func New() *scenario.Registry {
	r := scenario.NewRegistry()
	Register(r)
	return r
}

func gt(n int) func(int) bool {
	return func(v int) bool { return v > n }
}

func add(a, b int) int {
	return a + b
}
