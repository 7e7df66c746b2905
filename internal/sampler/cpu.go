package sampler

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/rawwerks/sysoverview/internal/model"
)

// cpuSampler derives usage percentages from CPU times deltas so it never
// has to block an interval the way cpu.Percent(interval, ...) does. The
// first tick reports zero while the baseline is established.
type cpuSampler struct {
	prevTotal float64
	prevIdle  float64
	prevCore  []cpu.TimesStat
}

func NewCPU() Sampler { return &cpuSampler{} }

func (s *cpuSampler) Name() string { return "cpu" }

func (s *cpuSampler) Sample(ctx context.Context, snap *model.Snapshot) error {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil || len(times) == 0 {
		return err
	}
	cur := times[0]
	curTotal := cur.Total()
	curIdle := cur.Idle + cur.Iowait
	if s.prevTotal > 0 {
		dt := curTotal - s.prevTotal
		di := curIdle - s.prevIdle
		if dt > 0 {
			snap.CPU.Total = 100 * (1 - di/dt)
		}
	}
	s.prevTotal, s.prevIdle = curTotal, curIdle

	coreTimes, _ := cpu.TimesWithContext(ctx, true)
	perCore := make([]float64, len(coreTimes))
	for i, c := range coreTimes {
		if i >= len(s.prevCore) {
			continue
		}
		prev := s.prevCore[i]
		dt := c.Total() - prev.Total()
		di := (c.Idle + c.Iowait) - (prev.Idle + prev.Iowait)
		if dt > 0 {
			perCore[i] = 100 * (1 - di/dt)
		}
	}
	s.prevCore = coreTimes
	snap.CPU.PerCore = perCore
	snap.CPU.Count = len(coreTimes)

	// Frequency is informational; ignore failures (some VMs expose none).
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		snap.CPU.FreqMHz = infos[0].Mhz
	}
	return nil
}
