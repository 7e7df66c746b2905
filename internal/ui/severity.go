package ui

// Severity buckets a usage percentage for coloring. The same bands apply
// to CPU, memory, swap, disk, GPU utilization, and GPU temperature
// expressed as a percent of its safe maximum.
type Severity int

const (
	SeverityGood Severity = iota
	SeverityWarning
	SeverityCritical
)

// Classify maps a percentage onto a severity band: below warn is good,
// warn through crit inclusive is warning, above crit is critical.
func Classify(pct, warn, crit float64) Severity {
	switch {
	case pct > crit:
		return SeverityCritical
	case pct >= warn:
		return SeverityWarning
	default:
		return SeverityGood
	}
}

// TempPercent expresses a temperature as a percentage of its safe maximum
// so it can share the usage severity bands.
func TempPercent(tempC, safeMaxC float64) float64 {
	if safeMaxC <= 0 {
		return 0
	}
	return tempC / safeMaxC * 100
}
