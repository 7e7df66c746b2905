package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rawwerks/sysoverview/internal/config"
	"github.com/rawwerks/sysoverview/internal/model"
)

func TestRenderGPUsUnavailableShowsPlaceholder(t *testing.T) {
	out := renderGPUs(nil, false, config.Default())
	assert.Contains(t, out, "no NVIDIA GPU detected")
}

func TestRenderGPUsListsDevices(t *testing.T) {
	gpus := []model.GPU{
		{Name: "RTX 3080", Util: 42, MemUsedMB: 2048, MemTotalMB: 10240, TempC: 61, PowerW: 180, PowerCapW: 320},
	}
	out := renderGPUs(gpus, true, config.Default())
	assert.Contains(t, out, "RTX 3080")
	assert.Contains(t, out, "42%")
	assert.Contains(t, out, "180W/320W")
}

func TestRenderGPUsMissingPowerCap(t *testing.T) {
	gpus := []model.GPU{{Name: "Tesla K80", Util: 5}}
	out := renderGPUs(gpus, true, config.Default())
	assert.Contains(t, out, "n/a")
}

func TestRenderNetworkShowsRatesAndTotals(t *testing.T) {
	n := model.Network{
		UpBytesPerSec:   500,
		DownBytesPerSec: 2048,
		BytesSent:       1 << 20,
		BytesRecv:       1 << 30,
		PacketsSent:     1234,
		PacketsRecv:     5678,
		Interfaces:      []string{"eth0", "wlan0"},
	}
	out := renderNetwork(n)
	assert.Contains(t, out, "500.0B/s")
	assert.Contains(t, out, "2.0KB/s")
	assert.Contains(t, out, "1234")
	assert.Contains(t, out, "eth0")
}

func TestRenderProcessesHighlightsSelectionOnlyInKillMode(t *testing.T) {
	procs := procList(3)

	normal := &Selector{}
	plain := renderProcesses(procs, normal)
	assert.Contains(t, plain, "101")

	killSel := &Selector{Mode: ModeKill, Index: 1}
	highlighted := renderProcesses(procs, killSel)
	// Row content is identical; only styling differs per mode. Both must
	// carry every pid.
	for _, line := range []string{"100", "101", "102"} {
		assert.Contains(t, highlighted, line)
	}
}

func TestRenderDisksEmpty(t *testing.T) {
	out := renderDisks(nil, config.Default())
	assert.Contains(t, out, "no mounted filesystems")
}

func TestRenderDisksRows(t *testing.T) {
	disks := []model.Disk{
		{Mount: "/", UsedBytes: 50 << 30, TotalBytes: 100 << 30, UsedPercent: 50},
		{Mount: "/home", UsedBytes: 90 << 30, TotalBytes: 100 << 30, UsedPercent: 90},
	}
	out := renderDisks(disks, config.Default())
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "/")
	assert.Contains(t, lines[1], "/home")
}

func TestRenderCPUMemorySwapOnlyWhenPresent(t *testing.T) {
	snap := model.Snapshot{
		CPU:    model.CPU{Total: 25, Count: 8, FreqMHz: 3200},
		Memory: model.Memory{UsedBytes: 4 << 30, TotalBytes: 16 << 30, UsedPercent: 25},
	}
	out := renderCPUMemory(snap, config.Default())
	assert.Contains(t, out, "8 cores")
	assert.Contains(t, out, "3200 MHz")
	assert.NotContains(t, out, "Swap")

	snap.Memory.SwapTotal = 8 << 30
	snap.Memory.SwapPercent = 10
	out = renderCPUMemory(snap, config.Default())
	assert.Contains(t, out, "Swap")
}

func TestFooterShowsConfirmPromptWithTargetName(t *testing.T) {
	m := testModel(procList(3), func(int32) (bool, error) { return true, nil })
	m.sel = Selector{Mode: ModeConfirm, TargetPID: 4242, TargetName: "stress-ng"}

	out := m.footer()
	assert.Contains(t, out, "stress-ng")
	assert.Contains(t, out, "4242")
	assert.Contains(t, out, "y/n")
}
