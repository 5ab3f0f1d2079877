package main

import "runtime"

// MaxWorkers caps the batch worker count. Preprocessing is CPU-bound,
// so workers beyond the core count only add scheduling overhead.
const MaxWorkers = 32

// resolveWorkerCount determines the batch worker count.
// Priority: explicit flag > GOMAXPROCS (adjusted by automaxprocs for containers).
func resolveWorkerCount(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
