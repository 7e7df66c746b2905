package model

import "time"

// CPU aggregates instantaneous CPU usage.
type CPU struct {
	Total   float64   `json:"total"`    // percent 0-100
	PerCore []float64 `json:"per_core"` // per-core percent
	FreqMHz float64   `json:"freq_mhz"`
	Count   int       `json:"count"`
}

// Memory captures RAM and swap usage in bytes for precision.
type Memory struct {
	UsedBytes   uint64  `json:"used_bytes"`
	TotalBytes  uint64  `json:"total_bytes"`
	UsedPercent float64 `json:"used_percent"`
	SwapUsed    uint64  `json:"swap_used"`
	SwapTotal   uint64  `json:"swap_total"`
	SwapPercent float64 `json:"swap_percent"`
}

// GPU holds a single device snapshot.
type GPU struct {
	Name       string  `json:"name"`
	Util       float64 `json:"util"` // percent
	MemUsedMB  float64 `json:"mem_used_mb"`
	MemTotalMB float64 `json:"mem_total_mb"`
	TempC      float64 `json:"temp_c"`
	PowerW     float64 `json:"power_w"`
	PowerCapW  float64 `json:"power_cap_w"`
}

// Network carries cumulative interface-wide counters plus the per-second
// rates derived from the previous tick.
type Network struct {
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`

	UpBytesPerSec   float64 `json:"up_bytes_per_sec"`
	DownBytesPerSec float64 `json:"down_bytes_per_sec"`
	UpPacketsPerSec float64 `json:"up_packets_per_sec"`
	DnPacketsPerSec float64 `json:"dn_packets_per_sec"`

	Interfaces []string `json:"interfaces"` // names of interfaces that are up
}

// Disk is one mounted filesystem.
type Disk struct {
	Device      string  `json:"device"`
	Mount       string  `json:"mount"`
	UsedBytes   uint64  `json:"used_bytes"`
	TotalBytes  uint64  `json:"total_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// Process is one row of the top-processes table.
type Process struct {
	PID    int32   `json:"pid"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	CPU    float64 `json:"cpu"`
	Memory float64 `json:"memory"`
}

// Host identifies the machine the snapshot was taken on.
type Host struct {
	OS     string        `json:"os"` // e.g. "linux x86_64"
	Uptime time.Duration `json:"uptime"`
	User   string        `json:"user"`
}

// Snapshot is the immutable bundle of all metrics captured in one tick.
// A new one replaces it every interval; nothing mutates it after the
// sampler registry hands it out.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Host      Host      `json:"host"`
	CPU       CPU       `json:"cpu"`
	Memory    Memory    `json:"memory"`
	GPUs      []GPU     `json:"gpus"`
	Network   Network   `json:"network"`
	Disks     []Disk    `json:"disks"`
	Processes []Process `json:"processes"` // sorted by CPU, highest first
}

// Zero returns an empty snapshot for initialization.
func Zero() Snapshot { return Snapshot{Timestamp: time.Now()} }
