package slideconv

import (
	"sync"
	"testing"
)

func TestParallelForCoversRange(t *testing.T) {
	for _, total := range []int{0, 1, 7, 100, 1001} {
		seen := make([]int, total)
		var mu sync.Mutex
		parallelFor(total, Options{Workers: 4, MinParallelPixels: 1}, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			for i := start; i < end; i++ {
				seen[i]++
			}
		})
		for i, n := range seen {
			if n != 1 {
				t.Fatalf("total %d: index %d visited %d times", total, i, n)
			}
		}
	}
}

func TestParallelForSerialBelowThreshold(t *testing.T) {
	calls := 0
	parallelFor(10, Options{MinParallelPixels: 11}, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("got range [%d,%d)", start, end)
		}
	})
	if calls != 1 {
		t.Fatalf("got %d calls want 1", calls)
	}
}

func TestConcurrentConversions(t *testing.T) {
	const workers = 8
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func(idx int) {
			pix := make([]uint32, DefaultMinParallelPixels+idx)
			for j := range pix {
				pix[j] = 0x80804040
			}
			dst := make([]float32, len(pix)*3)
			if err := ARGBToFloat(pix, dst); err != nil {
				errCh <- err
				return
			}
			errCh <- ARGBToRGBA(pix)
		}(i)
	}
	for i := 0; i < workers; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("concurrent conversion: %v", err)
		}
	}
}
