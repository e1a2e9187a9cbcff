package stagegraph

import (
	"strings"

	"github.com/specialistvlad/almanac/internal/rangemap"
)

// Path is a resolved, ordered sequence of stages between two categories.
type Path struct {
	from   string
	to     string
	stages []*rangemap.Stage
}

// From returns the starting category.
func (p Path) From() string { return p.from }

// To returns the final category.
func (p Path) To() string { return p.to }

// Stages returns the stages in application order.
func (p Path) Stages() []*rangemap.Stage { return p.stages }

// Len returns the number of stages on the path.
func (p Path) Len() int { return len(p.stages) }

// String renders the path as "seed -> soil -> ... -> location".
func (p Path) String() string {
	parts := []string{p.from}
	for _, s := range p.stages {
		parts = append(parts, s.Destination)
	}
	return strings.Join(parts, " -> ")
}
