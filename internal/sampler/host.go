package sampler

import (
	"context"
	"fmt"
	"os/user"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/rawwerks/sysoverview/internal/model"
)

type hostSampler struct{}

func NewHost() Sampler { return hostSampler{} }

func (hostSampler) Name() string { return "host" }

func (hostSampler) Sample(ctx context.Context, snap *model.Snapshot) error {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return err
	}
	snap.Host = model.Host{
		OS:     fmt.Sprintf("%s %s", info.Platform, info.KernelArch),
		Uptime: time.Duration(info.Uptime) * time.Second,
	}
	if u, err := user.Current(); err == nil {
		snap.Host.User = u.Username
	}
	return nil
}
