package distmatrix

import (
	"runtime"
	"sync/atomic"
)

var workerCount atomic.Int64

func init() {
	workerCount.Store(int64(defaultWorkerCount()))
}

func defaultWorkerCount() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Workers returns the process-wide worker-pool size used for distance
// matrix fills.
func Workers() int {
	return int(workerCount.Load())
}

// SetWorkers atomically sets the process-wide worker-pool size. Values
// less than 1 are clamped to 1. Not safe to call while a matrix build is
// in flight.
func SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	workerCount.Store(int64(n))
}
