package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlightCollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var executions atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]any, 8)
	shared := make([]bool, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			val, err, wasShared := g.Do("k", func() (any, error) {
				executions.Add(1)
				<-release
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = val
			shared[i] = wasShared
		}(i)
	}

	for !g.InFlight("k") {
		time.Sleep(time.Millisecond)
	}
	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected single execution, got %d", got)
	}
	sharedCount := 0
	for i, val := range results {
		if val != 42 {
			t.Fatalf("result %d: got %v", i, val)
		}
		if shared[i] {
			sharedCount++
		}
	}
	if sharedCount != len(results)-1 {
		t.Fatalf("expected %d shared results, got %d", len(results)-1, sharedCount)
	}
}

func TestSingleFlightIndependentKeys(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	a, _, _ := g.Do("a", func() (any, error) { return "a", nil })
	b, _, _ := g.Do("b", func() (any, error) { return "b", nil })
	if a != "a" || b != "b" {
		t.Fatalf("got a=%v b=%v", a, b)
	}
	if g.InFlight("a") || g.InFlight("b") {
		t.Fatal("no call should remain in flight")
	}
}
