package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rawwerks/sysoverview/internal/config"
	"github.com/rawwerks/sysoverview/internal/model"
)

const gaugeWidth = 24

func (m *Model) View() string {
	s := m.latest

	header := titleStyle.Render("System Overview") + "  " +
		subtleStyle.Render(fmt.Sprintf("%s | %s | up %s | %s",
			s.Host.OS, s.Host.User, FormatUptime(s.Host.Uptime),
			s.Timestamp.Format("Mon Jan 2 15:04:05")))

	line1 := lipgloss.JoinHorizontal(lipgloss.Top,
		card("CPU & Memory", renderCPUMemory(s, m.cfg)),
		card("GPU", renderGPUs(s.GPUs, m.gpuAvailable, m.cfg)),
		card("Network", renderNetwork(s.Network)),
	)
	line2 := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Top Processes", renderProcesses(s.Processes, &m.sel)),
		card("Disks", renderDisks(s.Disks, m.cfg)),
	)

	frame := lipgloss.JoinVertical(lipgloss.Left, header, line1, line2, m.footer())
	return frame
}

// footer shows the keymap help plus, when relevant, the one-tick status
// line and the kill confirmation prompt.
func (m *Model) footer() string {
	parts := []string{m.help.View(m.keys)}
	if m.statusText != "" {
		style := statusOKStyle
		if m.statusErr {
			style = statusErrStyle
		}
		parts = append(parts, style.Render(m.statusText))
	}
	switch m.sel.Mode {
	case ModeKill:
		parts = append(parts, warningStyle.Render("kill mode: ↑/↓ select, k confirm, n/esc cancel"))
	case ModeConfirm:
		pid, name := m.sel.TargetPID, m.sel.TargetName
		parts = append(parts, confirmStyle.Render(
			fmt.Sprintf("Terminate %s (pid %d)? y/n", name, pid)))
	}
	return strings.Join(parts, "\n")
}

func renderCPUMemory(s model.Snapshot, cfg config.Config) string {
	var b strings.Builder

	cpuGauge := severityGauge(s.CPU.Total, cfg)
	fmt.Fprintf(&b, "CPU (%d cores)  %s", s.CPU.Count, cpuGauge)
	if s.CPU.FreqMHz > 0 {
		fmt.Fprintf(&b, "  %.0f MHz", s.CPU.FreqMHz)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Memory          %s  %s / %s",
		severityGauge(s.Memory.UsedPercent, cfg),
		HumanBytes(float64(s.Memory.UsedBytes)),
		HumanBytes(float64(s.Memory.TotalBytes)))

	if s.Memory.SwapTotal > 0 {
		fmt.Fprintf(&b, "\nSwap            %s  %s / %s",
			severityGauge(s.Memory.SwapPercent, cfg),
			HumanBytes(float64(s.Memory.SwapUsed)),
			HumanBytes(float64(s.Memory.SwapTotal)))
	}
	return b.String()
}

func renderGPUs(gpus []model.GPU, available bool, cfg config.Config) string {
	if !available {
		return subtleStyle.Render("no NVIDIA GPU detected")
	}
	if len(gpus) == 0 {
		return subtleStyle.Render("gpu data unavailable this tick")
	}
	lines := make([]string, 0, len(gpus))
	for _, g := range gpus {
		util := severityStyle(Classify(g.Util, cfg.WarnPercent, cfg.CritPercent)).
			Render(fmt.Sprintf("%3.0f%%", g.Util))
		temp := severityStyle(Classify(TempPercent(g.TempC, cfg.GPUSafeTempC), cfg.WarnPercent, cfg.CritPercent)).
			Render(fmt.Sprintf("%2.0f°C", g.TempC))
		power := "n/a"
		if g.PowerCapW > 0 {
			power = fmt.Sprintf("%.0fW/%.0fW", g.PowerW, g.PowerCapW)
		}
		lines = append(lines, fmt.Sprintf("%s %s vram %4.0f/%-4.0fMB %s %s",
			Truncate(g.Name, 14), util, g.MemUsedMB, g.MemTotalMB, temp, power))
	}
	return strings.Join(lines, "\n")
}

func renderNetwork(n model.Network) string {
	var b strings.Builder
	fmt.Fprintf(&b, "↑ %-10s ↓ %-10s\n", HumanRate(n.UpBytesPerSec), HumanRate(n.DownBytesPerSec))
	fmt.Fprintf(&b, "sent %s  recv %s\n",
		HumanBytes(float64(n.BytesSent)), HumanBytes(float64(n.BytesRecv)))
	fmt.Fprintf(&b, "pkts %d / %d", n.PacketsSent, n.PacketsRecv)
	if len(n.Interfaces) > 0 {
		max := len(n.Interfaces)
		if max > 3 {
			max = 3
		}
		fmt.Fprintf(&b, "\nif: %s", strings.Join(n.Interfaces[:max], ", "))
	}
	return b.String()
}

func renderDisks(disks []model.Disk, cfg config.Config) string {
	if len(disks) == 0 {
		return subtleStyle.Render("no mounted filesystems readable")
	}
	lines := make([]string, 0, len(disks))
	for _, d := range disks {
		lines = append(lines, fmt.Sprintf("%-12s %s  %s / %s",
			Truncate(d.Mount, 12),
			severityGauge(d.UsedPercent, cfg),
			HumanBytes(float64(d.UsedBytes)),
			HumanBytes(float64(d.TotalBytes))))
	}
	return strings.Join(lines, "\n")
}

func renderProcesses(procs []model.Process, sel *Selector) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-20s %-9s %6s %6s\n", "PID", "NAME", "STATUS", "CPU%", "MEM%")
	for i, p := range procs {
		row := fmt.Sprintf("%-8d %-20s %-9s %6.1f %6.1f",
			p.PID, Truncate(p.Name, 20), p.Status, p.CPU, p.Memory)
		if sel.Mode != ModeNormal && i == sel.Index {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func severityGauge(pct float64, cfg config.Config) string {
	return severityStyle(Classify(pct, cfg.WarnPercent, cfg.CritPercent)).
		Render(GaugeBar(pct, gaugeWidth))
}

func card(title, body string) string {
	return cardStyle.Render(labelStyle.Render(title) + "\n" + body)
}
