package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0B"},
		{512, "512.0B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1024 * 1024, "1.0MB"},
		{5.5 * 1024 * 1024 * 1024, "5.5GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanBytes(tt.in))
	}
}

func TestHumanRate(t *testing.T) {
	assert.Equal(t, "500.0B/s", HumanRate(500))
	assert.Equal(t, "1.0KB/s", HumanRate(1024))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0h 5m", FormatUptime(5*time.Minute))
	assert.Equal(t, "3h 20m", FormatUptime(3*time.Hour+20*time.Minute))
	assert.Equal(t, "2d 1h 0m", FormatUptime(49*time.Hour))
}

func TestGaugeBarWidthAndClamping(t *testing.T) {
	bar := GaugeBar(50, 10)
	assert.Equal(t, 5, strings.Count(bar, gaugeFill))
	assert.Equal(t, 5, strings.Count(bar, gaugeEmpty))
	assert.Contains(t, bar, "50.0%")

	full := GaugeBar(150, 10)
	assert.Equal(t, 10, strings.Count(full, gaugeFill))
	assert.Contains(t, full, "100.0%")

	empty := GaugeBar(-5, 10)
	assert.Equal(t, 10, strings.Count(empty, gaugeEmpty))
	assert.Contains(t, empty, "0.0%")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "longn…", Truncate("longname", 6))
}
