// Package sampler gathers host metrics into per-tick snapshots.
// Each source is an independent Sampler; the Registry fans them out
// concurrently every tick and merges best-effort results, so one slow or
// broken source never stalls the dashboard.
package sampler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rawwerks/sysoverview/internal/model"
)

// perSamplerTimeout bounds a single source read. A sampler that misses the
// deadline contributes nothing this tick and the loop moves on.
const perSamplerTimeout = 800 * time.Millisecond

// Sampler reads one metric source into the snapshot under construction.
// Implementations must be safe to call once per tick from the registry
// goroutine pool and must honor ctx cancellation.
type Sampler interface {
	Name() string
	Sample(ctx context.Context, snap *model.Snapshot) error
}

// Registry holds the registered samplers for the session.
type Registry struct {
	samplers []Sampler
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{log: log}
}

// Register adds a sampler. Registration order does not matter; results are
// merged into disjoint snapshot sections.
func (r *Registry) Register(s Sampler) {
	r.samplers = append(r.samplers, s)
	r.log.Info("registered sampler", zap.String("name", s.Name()))
}

// Snapshot runs every sampler concurrently and returns the merged result.
// Per-source failures are logged and leave that section zero-valued; the
// returned snapshot is complete as far as the host allowed.
func (r *Registry) Snapshot(ctx context.Context, now time.Time) model.Snapshot {
	snap := model.Snapshot{Timestamp: now}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, s := range r.samplers {
		wg.Add(1)
		go func(s Sampler) {
			defer wg.Done()
			sctx, cancel := context.WithTimeout(ctx, perSamplerTimeout)
			defer cancel()

			local := model.Snapshot{Timestamp: now}
			if err := s.Sample(sctx, &local); err != nil {
				r.log.Warn("sampler failed", zap.String("name", s.Name()), zap.Error(err))
				return
			}
			mu.Lock()
			merge(&snap, &local, s.Name())
			mu.Unlock()
		}(s)
	}
	wg.Wait()
	return snap
}

// merge copies the section a sampler owns into the tick snapshot. Sections
// are keyed by sampler name so two sources can never write the same field.
func merge(dst, src *model.Snapshot, name string) {
	switch name {
	case "cpu":
		dst.CPU = src.CPU
	case "memory":
		dst.Memory = src.Memory
	case "gpu":
		dst.GPUs = src.GPUs
	case "network":
		dst.Network = src.Network
	case "disk":
		dst.Disks = src.Disks
	case "process":
		dst.Processes = src.Processes
	case "host":
		dst.Host = src.Host
	}
}
