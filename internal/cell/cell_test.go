package cell

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestCellBuildsOnce(t *testing.T) {
	var c Cell[int]
	calls := 0
	build := func() (int, error) {
		calls++
		return 42, nil
	}

	if c.Filled() {
		t.Fatal("zero Cell reports Filled")
	}

	for i := 0; i < 5; i++ {
		v, err := c.Get(build)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if v != 42 {
			t.Fatalf("Get() = %d, want 42", v)
		}
	}

	if calls != 1 {
		t.Errorf("build called %d times, want 1", calls)
	}
	if got := c.Attempts(); got != 1 {
		t.Errorf("Attempts() = %d, want 1", got)
	}
	if !c.Filled() {
		t.Error("Filled() = false after a successful build")
	}
}

func TestCellRetriesAfterFailure(t *testing.T) {
	var c Cell[string]
	errBoom := errors.New("boom")
	fail := true
	build := func() (string, error) {
		if fail {
			return "", errBoom
		}
		return "ok", nil
	}

	for i := 0; i < 3; i++ {
		if _, err := c.Get(build); !errors.Is(err, errBoom) {
			t.Fatalf("attempt %d: error = %v, want %v", i, err, errBoom)
		}
		if c.Filled() {
			t.Fatalf("attempt %d: failed build filled the Cell", i)
		}
	}

	fail = false
	v, err := c.Get(build)
	if err != nil || v != "ok" {
		t.Fatalf("Get() = %q, %v; want \"ok\", nil", v, err)
	}

	if got := c.Attempts(); got != 4 {
		t.Errorf("Attempts() = %d, want 4", got)
	}
	if got := c.Failures(); got != 3 {
		t.Errorf("Failures() = %d, want 3", got)
	}
}

func TestCellConcurrentGet(t *testing.T) {
	var c Cell[*int]
	var calls atomic.Int32
	start := make(chan struct{})
	build := func() (*int, error) {
		calls.Add(1)
		v := 7
		return &v, nil
	}

	const goroutines = 64
	results := make([]*int, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			v, err := c.Get(build)
			if err != nil {
				t.Errorf("Get() error = %v", err)
				return
			}
			results[i] = v
		}(i)
	}
	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("build called %d times, want 1", got)
	}
	for i, v := range results {
		if v != results[0] {
			t.Fatalf("goroutine %d got a different value pointer", i)
		}
	}
}
