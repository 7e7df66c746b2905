package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want Severity
	}{
		{0, SeverityGood},
		{59, SeverityGood},
		{59.9, SeverityGood},
		{60, SeverityWarning},
		{85, SeverityWarning},
		{85.1, SeverityCritical},
		{86, SeverityCritical},
		{100, SeverityCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.pct, 60, 85), "pct=%v", tt.pct)
	}
}

func TestTempPercent(t *testing.T) {
	assert.InDelta(t, 50.0, TempPercent(45, 90), 0.001)
	assert.InDelta(t, 100.0, TempPercent(90, 90), 0.001)
	assert.Zero(t, TempPercent(45, 0), "invalid safe max yields zero, not a panic")
}

func TestGPUTempSharesBands(t *testing.T) {
	// 81C of a 90C safe max is 90% -> critical; 55C is ~61% -> warning.
	assert.Equal(t, SeverityCritical, Classify(TempPercent(81, 90), 60, 85))
	assert.Equal(t, SeverityWarning, Classify(TempPercent(55, 90), 60, 85))
	assert.Equal(t, SeverityGood, Classify(TempPercent(50, 90), 60, 85))
}
