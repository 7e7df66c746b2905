package sampler

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/rawwerks/sysoverview/internal/model"
)

// diskSampler reports usage for the first few real partitions. A mount that
// disappears or denies access mid-run is skipped for that tick only.
type diskSampler struct {
	max int
}

func NewDisk(max int) Sampler { return diskSampler{max: max} }

func (diskSampler) Name() string { return "disk" }

func (s diskSampler) Sample(ctx context.Context, snap *model.Snapshot) error {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return err
	}
	for _, p := range parts {
		if len(snap.Disks) >= s.max {
			break
		}
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		snap.Disks = append(snap.Disks, model.Disk{
			Device:      p.Device,
			Mount:       p.Mountpoint,
			UsedBytes:   usage.Used,
			TotalBytes:  usage.Total,
			UsedPercent: usage.UsedPercent,
		})
	}
	return nil
}
