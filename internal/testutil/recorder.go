package testutil

import "sync"

// StageRecorder remembers every stage application it observes. It satisfies
// traversal.Recorder and is safe for use by concurrent walks.
type StageRecorder struct {
	mu        sync.Mutex
	calls     map[string]int
	fragments map[string]int
}

// ObserveStage records one application of stage.
func (r *StageRecorder) ObserveStage(stage string, in, out int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = make(map[string]int)
		r.fragments = make(map[string]int)
	}
	r.calls[stage]++
	r.fragments[stage] += out
}

// Calls returns how many times stage was applied.
func (r *StageRecorder) Calls(stage string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[stage]
}

// Fragments returns the total output size reported for stage.
func (r *StageRecorder) Fragments(stage string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fragments[stage]
}

// Stages returns the number of distinct stages observed.
func (r *StageRecorder) Stages() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
