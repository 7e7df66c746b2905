package ui

import (
	"fmt"
	"strings"
	"time"
)

// HumanBytes renders a byte count in the largest unit that keeps the value
// under 1024.
func HumanBytes(b float64) string {
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if b < 1024 {
			return fmt.Sprintf("%.1f%s", b, unit)
		}
		b /= 1024
	}
	return fmt.Sprintf("%.1fPB", b)
}

// HumanRate renders a per-second byte rate.
func HumanRate(bps float64) string { return HumanBytes(bps) + "/s" }

// FormatUptime renders a duration as d/h/m.
func FormatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// GaugeBar renders a fixed-width usage bar with the percent appended.
func GaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %5.1f%%",
		strings.Repeat(gaugeFill, filled),
		strings.Repeat(gaugeEmpty, width-filled),
		pct)
}

// Truncate shortens s to at most n runes, ellipsized.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
