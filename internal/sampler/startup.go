package sampler

import (
	"context"
	"errors"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// CheckAccess verifies at startup that at least one core metric source is
// readable. Individual sources may still degrade later; this only guards
// against an environment where the dashboard would be entirely blank.
func CheckAccess(ctx context.Context) error {
	_, cpuErr := cpu.TimesWithContext(ctx, false)
	_, memErr := mem.VirtualMemoryWithContext(ctx)
	if cpuErr != nil && memErr != nil {
		return errors.Join(errors.New("no usable metric source"), cpuErr, memErr)
	}
	return nil
}
