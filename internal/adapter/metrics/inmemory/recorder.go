// Package inmemory keeps orchestration counters in process memory and
// exposes them for the ops endpoint.
package inmemory

import (
	"sync"

	"bannermind/internal/app/ports"
)

type Recorder struct {
	mu      sync.Mutex
	success map[string]int64
	failure map[string]int64
	dropped int64
}

func NewRecorder() *Recorder {
	return &Recorder{
		success: make(map[string]int64),
		failure: make(map[string]int64),
	}
}

var _ ports.OrchestrationMetrics = (*Recorder)(nil)

func (r *Recorder) RecordSuccess(trigger string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success[trigger]++
}

func (r *Recorder) RecordFailure(trigger string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure[trigger]++
}

func (r *Recorder) RecordDrop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropped++
}

// Snapshot returns a point-in-time copy of all counters.
type Snapshot struct {
	Success map[string]int64 `json:"success"`
	Failure map[string]int64 `json:"failure"`
	Dropped int64            `json:"dropped"`
}

// SnapshotAny exists for callers that only need an opaque serializable
// view, like the ops endpoint.
func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Success: make(map[string]int64, len(r.success)),
		Failure: make(map[string]int64, len(r.failure)),
		Dropped: r.dropped,
	}
	for k, v := range r.success {
		snap.Success[k] = v
	}
	for k, v := range r.failure {
		snap.Failure[k] = v
	}
	return snap
}
