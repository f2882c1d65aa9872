package qualpal

import "github.com/jolars/qualpal-go/internal/distmatrix"

// SetThreadCount atomically sets the process-wide worker-pool size used
// for distance-matrix fills. Not safe to call while a build is in flight.
func SetThreadCount(n int) {
	distmatrix.SetWorkers(n)
}

// ThreadCount returns the process-wide worker-pool size.
func ThreadCount() int {
	return distmatrix.Workers()
}
