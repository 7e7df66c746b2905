package sampler

import (
	"context"

	"github.com/shirou/gopsutil/v3/net"

	"github.com/rawwerks/sysoverview/internal/model"
)

// netSampler reads interface-wide cumulative counters and turns them into
// per-second rates via its delta tracker.
type netSampler struct {
	delta deltaTracker
}

func NewNetwork() Sampler { return &netSampler{} }

func (s *netSampler) Name() string { return "network" }

func (s *netSampler) Sample(ctx context.Context, snap *model.Snapshot) error {
	agg, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return err
	}
	if len(agg) == 0 {
		return nil
	}
	cur := counters{
		BytesSent:   agg[0].BytesSent,
		BytesRecv:   agg[0].BytesRecv,
		PacketsSent: agg[0].PacketsSent,
		PacketsRecv: agg[0].PacketsRecv,
	}
	r := s.delta.update(cur, snap.Timestamp)

	snap.Network = model.Network{
		BytesSent:       cur.BytesSent,
		BytesRecv:       cur.BytesRecv,
		PacketsSent:     cur.PacketsSent,
		PacketsRecv:     cur.PacketsRecv,
		UpBytesPerSec:   r.UpBytes,
		DownBytesPerSec: r.DownBytes,
		UpPacketsPerSec: r.UpPkts,
		DnPacketsPerSec: r.DownPkts,
	}

	// Up interfaces, loopback excluded, best-effort.
	if ifs, err := net.InterfacesWithContext(ctx); err == nil {
		for _, iface := range ifs {
			up, lo := false, false
			for _, f := range iface.Flags {
				switch f {
				case "up":
					up = true
				case "loopback":
					lo = true
				}
			}
			if up && !lo {
				snap.Network.Interfaces = append(snap.Network.Interfaces, iface.Name)
			}
		}
	}
	return nil
}
