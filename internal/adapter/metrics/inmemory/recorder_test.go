package inmemory

import (
	"sync"
	"testing"

	"bannermind/internal/app/ports"
)

func TestRecorder_Counters(t *testing.T) {
	rec := NewRecorder()

	rec.RecordSuccess(ports.TriggerScheduled)
	rec.RecordSuccess(ports.TriggerScheduled)
	rec.RecordSuccess(ports.TriggerEvent)
	rec.RecordFailure(ports.TriggerEvent)
	rec.RecordDrop()
	rec.RecordDrop()

	snap := rec.Snapshot()
	if snap.Success[ports.TriggerScheduled] != 2 {
		t.Errorf("scheduled success = %d, want 2", snap.Success[ports.TriggerScheduled])
	}
	if snap.Success[ports.TriggerEvent] != 1 {
		t.Errorf("event success = %d, want 1", snap.Success[ports.TriggerEvent])
	}
	if snap.Failure[ports.TriggerEvent] != 1 {
		t.Errorf("event failure = %d, want 1", snap.Failure[ports.TriggerEvent])
	}
	if snap.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", snap.Dropped)
	}
}

func TestRecorder_SnapshotIsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSuccess(ports.TriggerManual)

	snap := rec.Snapshot()
	snap.Success[ports.TriggerManual] = 99

	if got := rec.Snapshot().Success[ports.TriggerManual]; got != 1 {
		t.Errorf("mutating snapshot leaked into recorder: got %d", got)
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec.RecordSuccess(ports.TriggerScheduled)
				rec.RecordDrop()
			}
		}()
	}
	wg.Wait()

	snap := rec.Snapshot()
	if snap.Success[ports.TriggerScheduled] != 1600 {
		t.Errorf("success = %d, want 1600", snap.Success[ports.TriggerScheduled])
	}
	if snap.Dropped != 1600 {
		t.Errorf("dropped = %d, want 1600", snap.Dropped)
	}
}
