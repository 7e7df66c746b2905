package sampler

import (
	"context"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/rawwerks/sysoverview/internal/model"
)

// displayStatuses maps raw gopsutil status strings to a consistent set of
// display values across platforms.
var displayStatuses = map[string]string{
	"running":               "running",
	"sleeping":              "sleeping",
	"idle":                  "idle",
	"stopped":               "stopped",
	"zombie":                "zombie",
	"wait":                  "sleeping",
	"lock":                  "sleeping",
	"sleep":                 "sleeping",
	"disk-sleep":            "sleeping",
	"tracing-stop":          "stopped",
	"dead":                  "zombie",
	"wake-kill":             "sleeping",
	"waking":                "running",
	"parked":                "idle",
	"uninterruptible-sleep": "sleeping",
}

func normalizeStatus(raw []string, cpuPct float64) string {
	for _, r := range raw {
		key := strings.ToLower(strings.TrimSpace(r))
		if key == "" {
			continue
		}
		if mapped, ok := displayStatuses[key]; ok {
			return mapped
		}
		return key
	}
	if cpuPct > 0 {
		return "running"
	}
	return "idle"
}

// procSampler lists the top-N processes by CPU usage. Processes that exit
// or deny access between listing and detail reads are skipped for the tick.
type procSampler struct {
	topN int
}

func NewProcesses(topN int) Sampler { return procSampler{topN: topN} }

func (procSampler) Name() string { return "process" }

func (s procSampler) Sample(ctx context.Context, snap *model.Snapshot) error {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return err
	}

	rows := make([]model.Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		cpuPct, _ := p.CPUPercentWithContext(ctx)
		memPct, _ := p.MemoryPercentWithContext(ctx)
		status, _ := p.StatusWithContext(ctx)

		rows = append(rows, model.Process{
			PID:    p.Pid,
			Name:   name,
			Status: normalizeStatus(status, cpuPct),
			CPU:    cpuPct,
			Memory: float64(memPct),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CPU > rows[j].CPU })
	if len(rows) > s.topN {
		rows = rows[:s.topN]
	}
	snap.Processes = rows
	return nil
}
