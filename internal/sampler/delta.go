package sampler

import "time"

// counters is one cumulative reading of the interface-wide network totals.
type counters struct {
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// rates is the per-second change between two readings.
type rates struct {
	UpBytes   float64
	DownBytes float64
	UpPkts    float64
	DownPkts  float64
}

// deltaTracker converts cumulative counters into per-interval rates by
// holding the previous reading. It is owned by the network sampler and only
// touched once per tick.
type deltaTracker struct {
	prev   counters
	prevAt time.Time
	primed bool
}

// update computes rates for the reading taken at now. The first reading
// reports zero. A counter that went backwards (reset or wraparound) reports
// zero for this tick and the baseline moves to the current value.
func (d *deltaTracker) update(cur counters, now time.Time) rates {
	defer func() {
		d.prev = cur
		d.prevAt = now
		d.primed = true
	}()

	if !d.primed {
		return rates{}
	}
	elapsed := now.Sub(d.prevAt).Seconds()
	if elapsed <= 0 {
		return rates{}
	}
	return rates{
		UpBytes:   rate(cur.BytesSent, d.prev.BytesSent, elapsed),
		DownBytes: rate(cur.BytesRecv, d.prev.BytesRecv, elapsed),
		UpPkts:    rate(cur.PacketsSent, d.prev.PacketsSent, elapsed),
		DownPkts:  rate(cur.PacketsRecv, d.prev.PacketsRecv, elapsed),
	}
}

// rate treats a decreasing counter as a discontinuity and reports zero
// rather than a negative or enormous value.
func rate(cur, prev uint64, elapsed float64) float64 {
	if cur < prev {
		return 0
	}
	return float64(cur-prev) / elapsed
}
