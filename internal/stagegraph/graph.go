package stagegraph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/specialistvlad/almanac/internal/rangemap"
)

// Graph holds every stage keyed by its source category. Each category is the
// source of at most one stage, so the graph is a set of simple chains.
type Graph struct {
	stages map[string]*rangemap.Stage
	mutex  sync.RWMutex
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		stages: make(map[string]*rangemap.Stage),
	}
}

// Add registers a stage under its source category.
func (g *Graph) Add(s *rangemap.Stage) error {
	if s.Source == "" || s.Destination == "" {
		return fmt.Errorf("stage %q has an empty category name", s.Name())
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if existing, ok := g.stages[s.Source]; ok {
		return fmt.Errorf("%w: %q (already mapped to %q)", ErrDuplicateStage, s.Source, existing.Destination)
	}
	g.stages[s.Source] = s
	return nil
}

// Lookup returns the stage leaving the given category. A missing stage means
// the category is terminal, or the chain is malformed.
func (g *Graph) Lookup(category string) (*rangemap.Stage, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	s, ok := g.stages[category]
	return s, ok
}

// Len returns the number of stages.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.stages)
}

// Categories returns every category named by a stage, sorted.
func (g *Graph) Categories() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	seen := make(map[string]struct{}, len(g.stages)*2)
	for _, s := range g.stages {
		seen[s.Source] = struct{}{}
		seen[s.Destination] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// produces reports whether some stage maps into category. Callers hold the lock.
func (g *Graph) produces(category string) bool {
	for _, s := range g.stages {
		if s.Destination == category {
			return true
		}
	}
	return false
}

// Resolve walks the chain from one category to another and returns the
// stages in the order they must be applied. Resolving a category to itself
// yields an empty path.
func (g *Graph) Resolve(from, to string) (Path, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	path := Path{from: from, to: to}
	visited := map[string]bool{from: true}

	for current := from; current != to; {
		s, ok := g.stages[current]
		if !ok {
			if g.produces(to) {
				return Path{}, fmt.Errorf("%w: no stage leaves %q on the way from %q to %q", ErrChainBroken, current, from, to)
			}
			return Path{}, fmt.Errorf("%w: no stage produces %q (chain from %q ends at %q)", ErrTargetUnreachable, to, from, current)
		}
		path.stages = append(path.stages, s)

		current = s.Destination
		if visited[current] && current != to {
			return Path{}, fmt.Errorf("%w: chain from %q loops back to %q", ErrTargetUnreachable, from, current)
		}
		visited[current] = true
	}

	return path, nil
}
