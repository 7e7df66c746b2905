package sampler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeltaFirstSampleReportsZero(t *testing.T) {
	var d deltaTracker
	r := d.update(counters{BytesSent: 1000, BytesRecv: 2000}, time.Now())

	assert.Zero(t, r.UpBytes)
	assert.Zero(t, r.DownBytes)
	assert.Zero(t, r.UpPkts)
	assert.Zero(t, r.DownPkts)
}

func TestDeltaComputesPerSecondRate(t *testing.T) {
	var d deltaTracker
	t0 := time.Now()

	d.update(counters{BytesSent: 1000}, t0)
	r := d.update(counters{BytesSent: 1500}, t0.Add(time.Second))

	assert.InDelta(t, 500.0, r.UpBytes, 0.001)
}

func TestDeltaCounterResetReportsZeroAndRebaselines(t *testing.T) {
	var d deltaTracker
	t0 := time.Now()

	d.update(counters{BytesSent: 1000}, t0)
	d.update(counters{BytesSent: 1500}, t0.Add(time.Second))

	// Counter drops: discontinuity, zero rate, baseline moves to 10.
	r := d.update(counters{BytesSent: 10}, t0.Add(2*time.Second))
	assert.Zero(t, r.UpBytes)

	// Next tick counts from the new baseline.
	r = d.update(counters{BytesSent: 510}, t0.Add(3*time.Second))
	assert.InDelta(t, 500.0, r.UpBytes, 0.001)
}

func TestDeltaResetIsPerCounter(t *testing.T) {
	var d deltaTracker
	t0 := time.Now()

	d.update(counters{BytesSent: 1000, BytesRecv: 1000}, t0)
	r := d.update(counters{BytesSent: 10, BytesRecv: 2000}, t0.Add(time.Second))

	assert.Zero(t, r.UpBytes, "reset counter reports zero")
	assert.InDelta(t, 1000.0, r.DownBytes, 0.001, "healthy counter still reports")
}

func TestDeltaNonPositiveElapsedReportsZero(t *testing.T) {
	var d deltaTracker
	t0 := time.Now()

	d.update(counters{BytesSent: 1000}, t0)
	r := d.update(counters{BytesSent: 2000}, t0)

	assert.Zero(t, r.UpBytes)
}

func TestDeltaRatesNeverNegative(t *testing.T) {
	var d deltaTracker
	t0 := time.Now()

	seq := []counters{
		{BytesSent: 100, BytesRecv: 50, PacketsSent: 10, PacketsRecv: 5},
		{BytesSent: 300, BytesRecv: 40, PacketsSent: 12, PacketsRecv: 5},
		{BytesSent: 0, BytesRecv: 90, PacketsSent: 0, PacketsRecv: 9},
		{BytesSent: 500, BytesRecv: 100, PacketsSent: 3, PacketsRecv: 1},
	}
	for i, c := range seq {
		r := d.update(c, t0.Add(time.Duration(i)*time.Second))
		assert.GreaterOrEqual(t, r.UpBytes, 0.0)
		assert.GreaterOrEqual(t, r.DownBytes, 0.0)
		assert.GreaterOrEqual(t, r.UpPkts, 0.0)
		assert.GreaterOrEqual(t, r.DownPkts, 0.0)
	}
}
