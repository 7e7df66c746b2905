// Package proc issues process-control requests for the dashboard's kill
// mode. Requests are fire-and-forget: callers report the outcome of the
// request itself, never waiting for the process to actually die.
package proc

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// Terminate sends SIGTERM to pid. A pid that no longer exists is a no-op
// success (the process already achieved what the user wanted); killed
// reports whether a signal was actually delivered.
func Terminate(pid int32) (killed bool, err error) {
	if pid <= 0 {
		return false, fmt.Errorf("invalid pid %d", pid)
	}
	p, err := process.NewProcess(pid)
	if err != nil {
		// Process gone between selection and confirmation.
		return false, nil
	}
	if err := p.Terminate(); err != nil {
		return false, fmt.Errorf("terminate pid %d: %w", pid, err)
	}
	return true, nil
}
