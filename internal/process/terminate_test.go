package process

import "testing"

// ---------------------------------------------------------------------------
// TestTerminate - Harmless pids
// ---------------------------------------------------------------------------

func TestTerminate(t *testing.T) {
	t.Parallel()

	// 0 and negative pids must never reach the signal call; a huge pid
	// names no process.
	for _, pid := range []int{0, -1, 999999999} {
		Terminate(pid)
	}
}
