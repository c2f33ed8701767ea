//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// Terminate force-kills pid and its child tree with taskkill.
func Terminate(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is numeric
}
