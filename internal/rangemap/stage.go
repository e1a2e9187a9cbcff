package rangemap

// Stage maps values of the Source category into the Destination category.
// Values that no sub-mapping covers keep their numeric value.
type Stage struct {
	Source      string
	Destination string
	Mappings    []SubMapping
}

// NewStage returns a stage owning a copy of the given sub-mappings.
func NewStage(source, destination string, mappings ...SubMapping) *Stage {
	return &Stage{
		Source:      source,
		Destination: destination,
		Mappings:    append([]SubMapping(nil), mappings...),
	}
}

// Name returns the conventional "<source>-to-<destination>" label.
func (s *Stage) Name() string {
	return s.Source + "-to-" + s.Destination
}

// MapValue translates a single value. Source ranges are disjoint, so at most
// one sub-mapping can match.
func (s *Stage) MapValue(v uint64) uint64 {
	for _, m := range s.Mappings {
		if m.Source().Contains(v) {
			return m.translate(v)
		}
	}
	return v
}

// MapRange partitions r against every sub-mapping and returns the resolved
// intervals. Pieces covered by a sub-mapping are shifted by its offset; what
// is left after all sub-mappings have been tried maps to itself. The result is
// a set: its order carries no meaning, but its lengths always sum to r.Length.
func (s *Stage) MapRange(r Interval) []Interval {
	if r.Length == 0 {
		return nil
	}

	pending := []Interval{r}
	var resolved []Interval

	for _, m := range s.Mappings {
		if len(pending) == 0 {
			break
		}
		src := m.Source()
		var next []Interval
		for _, u := range pending {
			lo := max(u.Start, src.Start)
			hi := min(u.End(), src.End())
			if lo >= hi {
				next = append(next, u)
				continue
			}
			if u.Start < lo {
				next = append(next, between(u.Start, lo))
			}
			resolved = append(resolved, Interval{Start: m.translate(lo), Length: hi - lo})
			if hi < u.End() {
				next = append(next, between(hi, u.End()))
			}
		}
		pending = next
	}

	return append(resolved, pending...)
}
