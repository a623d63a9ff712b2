package memory

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestStore_CapacityEvictsOldestFirst(t *testing.T) {
	s := NewStore(3)
	for i := 1; i <= 5; i++ {
		s.Remember("lord-1", "camp", fmt.Sprintf("decision %d", i), "Wait")
	}

	if got := s.Len("lord-1"); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}
	ctx := s.Context("lord-1")
	if strings.Contains(ctx, "decision 1") || strings.Contains(ctx, "decision 2") {
		t.Fatalf("oldest entries not evicted:\n%s", ctx)
	}
	for i := 3; i <= 5; i++ {
		if !strings.Contains(ctx, fmt.Sprintf("decision %d", i)) {
			t.Fatalf("missing decision %d:\n%s", i, ctx)
		}
	}
}

func TestStore_DefaultCapacity(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < 10; i++ {
		s.Remember("lord-1", "camp", "decided", "Wait")
	}
	if got := s.Len("lord-1"); got != DefaultCapacity {
		t.Fatalf("len = %d, want %d", got, DefaultCapacity)
	}
}

func TestStore_EmptyContextSentinel(t *testing.T) {
	s := NewStore(5)
	if got := s.Context("unknown"); got != EmptyContext {
		t.Fatalf("context = %q", got)
	}
	s.Remember("lord-1", "camp", "decided", "Wait")
	s.Forget("lord-1")
	if got := s.Context("lord-1"); got != EmptyContext {
		t.Fatalf("context after Forget = %q", got)
	}
}

func TestStore_ContextRendering(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := at
	s := NewStore(5).WithNow(func() time.Time { return clock })

	s.Remember("lord-1", "Pravend (clear)", "raised the levy", "Recruit")
	clock = at.Add(12 * time.Minute)
	s.Remember("lord-1", "Pravend (rain)", "marched east", "Move")
	clock = at.Add(20 * time.Minute)

	ctx := s.Context("lord-1")
	lines := strings.Split(ctx, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), ctx)
	}
	if !strings.HasPrefix(lines[0], "1. [Pravend (clear)] raised the levy (action: Recruit)") {
		t.Fatalf("line 1 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "8 minutes ago") {
		t.Fatalf("most recent entry lacks relative age: %q", lines[1])
	}
	if strings.Contains(lines[0], "minutes ago") {
		t.Fatalf("only the most recent entry should carry an age: %q", lines[0])
	}
}

func TestStore_JustNowAnnotation(t *testing.T) {
	s := NewStore(5)
	s.Remember("lord-1", "camp", "decided", "Wait")
	if got := s.Context("lord-1"); !strings.Contains(got, "just now") {
		t.Fatalf("context = %q", got)
	}
}

func TestStore_ForgetAll(t *testing.T) {
	s := NewStore(5)
	s.Remember("lord-1", "camp", "decided", "Wait")
	s.Remember("lord-2", "camp", "decided", "Wait")
	s.ForgetAll()
	if s.Len("lord-1") != 0 || s.Len("lord-2") != 0 {
		t.Fatal("ForgetAll left entries behind")
	}
}

func TestStore_ConcurrentAgentsDoNotCorrupt(t *testing.T) {
	s := NewStore(5)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		agent := fmt.Sprintf("lord-%d", i%4)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Remember(agent, "camp", "decided", "Wait")
				_ = s.Context(agent)
			}
		}()
	}
	wg.Wait()
	for i := 0; i < 4; i++ {
		if got := s.Len(fmt.Sprintf("lord-%d", i)); got != 5 {
			t.Fatalf("lord-%d len = %d, want 5", i, got)
		}
	}
}
