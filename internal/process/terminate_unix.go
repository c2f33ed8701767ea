//go:build !windows

package process

import "syscall"

// Terminate kills pid and every process in its group. Non-positive pids are
// ignored: -0 would signal the caller's own group.
func Terminate(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
