package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// Split Tests
// =============================================================================

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		height int
		n      int
		want   []Band
	}{
		{"even", 8, 4, []Band{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder goes first", 10, 4, []Band{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{"more bands than rows", 3, 8, []Band{{0, 1}, {1, 2}, {2, 3}}},
		{"single band", 5, 1, []Band{{0, 5}}},
		{"empty height", 0, 4, nil},
		{"no bands", 5, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, Split(tt.height, tt.n)); d != "" {
				t.Errorf("Split(%d, %d) mismatch (-want +got):\n%s", tt.height, tt.n, d)
			}
		})
	}
}

func TestSplitCoversRows(t *testing.T) {
	for height := 1; height < 50; height++ {
		for n := 1; n < 12; n++ {
			y := 0
			for _, b := range Split(height, n) {
				if b.Y0 != y || b.Rows() <= 0 {
					t.Fatalf("Split(%d, %d): band %v after row %d", height, n, b, y)
				}
				y = b.Y1
			}
			if y != height {
				t.Fatalf("Split(%d, %d) ends at %d", height, n, y)
			}
		}
	}
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", n, pool.Workers(), runtime.GOMAXPROCS(0))
		}
		pool.Close()
	}
}

func TestPool_ForEachBandVisitsEveryRowOnce(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	const height = 1000
	var counts [height]atomic.Int32
	pool.ForEachBand(height, func(b Band) {
		for y := b.Y0; y < b.Y1; y++ {
			counts[y].Add(1)
		}
	})
	for y := range counts {
		if c := counts[y].Load(); c != 1 {
			t.Fatalf("row %d visited %d times, want 1", y, c)
		}
	}
}

func TestPool_ForEachBandDisjointWrites(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	rows := make([]int, 97)
	pool.ForEachBand(len(rows), func(b Band) {
		for y := b.Y0; y < b.Y1; y++ {
			rows[y] = y * y
		}
	})
	for y, v := range rows {
		if v != y*y {
			t.Fatalf("rows[%d] = %d, want %d", y, v, y*y)
		}
	}
}

func TestPool_ForEachBandEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	called := false
	pool.ForEachBand(0, func(Band) { called = true })
	if called {
		t.Error("ForEachBand(0) called fn")
	}
}

func TestPool_ClosedRunsInline(t *testing.T) {
	pool := NewPool(4)
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
	var total atomic.Int64
	pool.ForEachBand(64, func(b Band) { total.Add(int64(b.Rows())) })
	if total.Load() != 64 {
		t.Errorf("closed pool covered %d rows, want 64", total.Load())
	}
}

func TestPool_CloseMultipleTimes(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()
	pool.Close()
}

func TestPool_ConcurrentForEachBand(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	var total atomic.Int64
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.ForEachBand(100, func(b Band) { total.Add(int64(b.Rows())) })
		}()
	}
	wg.Wait()
	if total.Load() != 800 {
		t.Errorf("total rows = %d, want 800", total.Load())
	}
}

func TestPool_CloseDuringForEachBand(t *testing.T) {
	pool := NewPool(4)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	var total atomic.Int64
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		pool.ForEachBand(40, func(b Band) {
			once.Do(func() { close(started) })
			<-release
			total.Add(int64(b.Rows()))
		})
	}()

	<-started
	closed := make(chan struct{})
	go func() {
		pool.Close()
		close(closed)
	}()
	close(release)
	<-closed
	<-finished
	if total.Load() != 40 {
		t.Errorf("total rows = %d, want 40", total.Load())
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkPool_ForEachBand(b *testing.B) {
	pool := NewPool(0)
	defer pool.Close()

	buf := make([]byte, 3*640*480)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ForEachBand(480, func(band Band) {
			for y := band.Y0; y < band.Y1; y++ {
				row := buf[3*640*y : 3*640*(y+1)]
				for x := range row {
					row[x]++
				}
			}
		})
	}
}
