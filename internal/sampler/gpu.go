package sampler

import (
	"bufio"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rawwerks/sysoverview/internal/model"
)

const gpuQueryTimeout = 400 * time.Millisecond

var gpuQueryArgs = []string{
	"--query-gpu=name,utilization.gpu,memory.used,memory.total,temperature.gpu,power.draw,power.limit",
	"--format=csv,noheader,nounits",
}

// gpuSampler shells out to nvidia-smi. Driver presence is resolved exactly
// once by ProbeGPU; a host without the driver never runs the query again
// for the rest of the session.
type gpuSampler struct{}

// ProbeGPU checks once at startup whether nvidia-smi answers. The result
// is the session-wide capability flag: callers only register the GPU
// sampler when it returns true.
func ProbeGPU() bool {
	out, err := runCmd(gpuQueryTimeout, "nvidia-smi", gpuQueryArgs...)
	return err == nil && strings.TrimSpace(out) != ""
}

func NewGPU() Sampler { return gpuSampler{} }

func (gpuSampler) Name() string { return "gpu" }

func (gpuSampler) Sample(ctx context.Context, snap *model.Snapshot) error {
	out, err := runCmdContext(ctx, "nvidia-smi", gpuQueryArgs...)
	if err != nil {
		return err
	}
	snap.GPUs = parseGPUs(out)
	return nil
}

// parseGPUs reads one CSV line per device. Fields that nvidia-smi reports
// as "[N/A]" parse to zero and render as absent.
func parseGPUs(out string) []model.GPU {
	var gpus []model.GPU
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		parts := strings.Split(sc.Text(), ",")
		if len(parts) < 7 {
			continue
		}
		gpus = append(gpus, model.GPU{
			Name:       strings.TrimSpace(parts[0]),
			Util:       parseFloat(parts[1]),
			MemUsedMB:  parseFloat(parts[2]),
			MemTotalMB: parseFloat(parts[3]),
			TempC:      parseFloat(parts[4]),
			PowerW:     parseFloat(parts[5]),
			PowerCapW:  parseFloat(parts[6]),
		})
	}
	return gpus
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func runCmd(timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return runCmdContext(ctx, name, args...)
}

func runCmdContext(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return string(out), err
}
