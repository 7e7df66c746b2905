package sampler

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/rawwerks/sysoverview/internal/model"
)

type memSampler struct{}

func NewMemory() Sampler { return memSampler{} }

func (memSampler) Name() string { return "memory" }

func (memSampler) Sample(ctx context.Context, snap *model.Snapshot) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	snap.Memory = model.Memory{
		UsedBytes:   vm.Used,
		TotalBytes:  vm.Total,
		UsedPercent: vm.UsedPercent,
	}
	// Hosts without swap are common; keep the RAM numbers regardless.
	if swap, err := mem.SwapMemoryWithContext(ctx); err == nil {
		snap.Memory.SwapUsed = swap.Used
		snap.Memory.SwapTotal = swap.Total
		snap.Memory.SwapPercent = swap.UsedPercent
	}
	return nil
}
