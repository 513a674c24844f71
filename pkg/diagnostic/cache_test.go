package diagnostic

import (
	"reflect"
	"sync"
	"testing"
)

func TestCachedReturnsSameResult(t *testing.T) {
	cached := NewCached(New(nil))

	first := cached.Diagnose("Write a story")
	second := cached.Diagnose("Write a story")
	if first != second {
		t.Error("expected the identical cached result pointer on the second call")
	}
	if cached.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", cached.Len())
	}
}

func TestCachedDistinctInputs(t *testing.T) {
	cached := NewCached(New(nil))

	cached.Diagnose("Write a story")
	cached.Diagnose("Write a poem")
	cached.Diagnose("Write a story") // repeat

	if cached.Len() != 2 {
		t.Errorf("cache holds %d entries, want 2", cached.Len())
	}
}

func TestCachedMatchesEngine(t *testing.T) {
	engine := New(nil)
	cached := NewCached(engine)

	for _, text := range corpus {
		if !reflect.DeepEqual(cached.Diagnose(text), engine.Diagnose(text)) {
			t.Errorf("cached result for %q differs from the engine's", text)
		}
	}
}

func TestCachedConcurrentAccess(t *testing.T) {
	cached := NewCached(New(nil))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, text := range corpus {
				cached.Diagnose(text)
			}
		}()
	}
	wg.Wait()

	if cached.Len() != len(corpus) {
		t.Errorf("cache holds %d entries, want %d", cached.Len(), len(corpus))
	}
}

func TestCachedCompare(t *testing.T) {
	engine := New(nil)
	cached := NewCached(engine)

	a := "Write a story"
	b := "Write a 500-word science fiction story about AI for teenagers"
	if !reflect.DeepEqual(cached.Compare(a, b), engine.Compare(a, b)) {
		t.Error("cached comparison differs from the engine's")
	}
}

func TestCachedBatch(t *testing.T) {
	cached := NewCached(New(nil))

	results := cached.Batch(corpus)
	if len(results) != len(corpus) {
		t.Fatalf("got %d results for %d prompts", len(results), len(corpus))
	}
	for i, text := range corpus {
		if results[i] != cached.Diagnose(text) {
			t.Errorf("batch result %d is not the cached result for %q", i, text)
		}
	}
}
