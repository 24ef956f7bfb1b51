package renderer

import (
	"errors"
	"runtime"
	"sync"
	"testing"
)

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	if got := NewWorkerPool(0).NumWorkers(); got != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), got)
	}
	if got := NewWorkerPool(3).NumWorkers(); got != 3 {
		t.Errorf("Expected 3 workers, got %d", got)
	}
}

func TestWorkerPoolVisitsEveryTileOnce(t *testing.T) {
	tiles := NewTileGrid(100, 70, 16)
	var mu sync.Mutex
	seen := make(map[int]int)

	err := NewWorkerPool(4).Run(tiles, func(tile *Tile) error {
		mu.Lock()
		defer mu.Unlock()
		seen[tile.ID]++
		return nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(seen) != len(tiles) {
		t.Errorf("Expected %d tiles rendered, got %d", len(tiles), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("Tile %d rendered %d times", id, count)
		}
	}
}

func TestWorkerPoolReportsError(t *testing.T) {
	boom := errors.New("boom")
	err := NewWorkerPool(2).Run(NewTileGrid(10, 10, 5), func(tile *Tile) error {
		if tile.ID == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected the tile error, got %v", err)
	}
}
