package agent

import (
	"math/rand/v2"
	"sync"
	"testing"
)

func TestLockedRand_Bounds(t *testing.T) {
	r := NewLockedRand(rand.New(rand.NewPCG(1, 2)))

	for i := 0; i < 100; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", v)
		}
		if n := r.IntN(10); n < 0 || n >= 10 {
			t.Fatalf("IntN(10) = %d, want [0, 10)", n)
		}
	}
}

func TestLockedRand_ConcurrentUse(t *testing.T) {
	r := NewLockedRand(rand.New(rand.NewPCG(1, 2)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = r.Float64()
				_ = r.IntN(10)
			}
		}()
	}
	wg.Wait()
}
