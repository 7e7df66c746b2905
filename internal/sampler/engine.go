package sampler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rawwerks/sysoverview/internal/model"
)

// Engine drives the registry on a fixed interval and emits snapshots.
type Engine struct {
	Interval time.Duration

	reg *Registry
	log *zap.Logger
}

func NewEngine(reg *Registry, interval time.Duration, log *zap.Logger) *Engine {
	return &Engine{Interval: interval, reg: reg, log: log}
}

// Stream returns a channel that receives snapshots until ctx is done.
// The first snapshot is taken immediately so the dashboard has data on its
// first frame; time.Ticker keeps subsequent ticks drift-free regardless of
// how long sampling takes.
func (e *Engine) Stream(ctx context.Context) <-chan model.Snapshot {
	ch := make(chan model.Snapshot)
	go func() {
		defer close(ch)

		emit := func(t time.Time) bool {
			snap := e.reg.Snapshot(ctx, t)
			select {
			case ch <- snap:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit(time.Now()) {
			return
		}
		ticker := time.NewTicker(e.Interval)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				if !emit(t) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Once runs a single collection pass, used by the snapshot subcommand.
func (e *Engine) Once(ctx context.Context) model.Snapshot {
	e.log.Debug("one-shot snapshot")
	return e.reg.Snapshot(ctx, time.Now())
}
