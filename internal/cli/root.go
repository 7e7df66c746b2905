// Package cli wires configuration, logging, and the sampler engine into
// the sysoverview commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rawwerks/sysoverview/internal/config"
	"github.com/rawwerks/sysoverview/internal/logger"
	"github.com/rawwerks/sysoverview/internal/sampler"
	"github.com/rawwerks/sysoverview/internal/ui"
)

var (
	configFlag   string
	intervalFlag time.Duration
	topFlag      int
	noGPUFlag    bool
	logFileFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "sysoverview",
	Short: "Terminal dashboard for live host metrics",
	Long: `sysoverview polls CPU, memory, GPU, network, disk, and process metrics
once per second and renders them as a colored panel dashboard.

Press k to enter kill mode, select a process with the arrow keys, press k
again and confirm with y to send it SIGTERM. Press q to quit.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
	rootCmd.PersistentFlags().DurationVar(&intervalFlag, "interval", 0, "refresh interval (default 1s)")
	rootCmd.PersistentFlags().IntVar(&topFlag, "top", 0, "number of processes to show (default 10)")
	rootCmd.PersistentFlags().BoolVar(&noGPUFlag, "no-gpu", false, "disable GPU sampling")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write debug logs to this file")

	rootCmd.AddCommand(snapshotCmd, initCmd, versionCmd)
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file with command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = intervalFlag
	}
	if cmd.Flags().Changed("top") {
		cfg.TopProcesses = topFlag
	}
	if noGPUFlag {
		cfg.EnableGPU = false
	}
	if logFileFlag != "" {
		cfg.LogFile = logFileFlag
	}
	if cfg.Interval < config.MinInterval {
		cfg.Interval = config.MinInterval
	}
	return cfg, nil
}

// buildEngine assembles the sampler registry for the session. The GPU
// driver is probed exactly once here; a negative probe keeps the sampler
// unregistered so no failing query ever runs again.
func buildEngine(cfg config.Config, log *zap.Logger) (*sampler.Engine, bool) {
	reg := sampler.NewRegistry(log)
	reg.Register(sampler.NewCPU())
	reg.Register(sampler.NewMemory())
	reg.Register(sampler.NewDisk(cfg.MaxDisks))
	reg.Register(sampler.NewNetwork())
	reg.Register(sampler.NewProcesses(cfg.TopProcesses))
	reg.Register(sampler.NewHost())

	gpuAvailable := false
	if cfg.EnableGPU {
		gpuAvailable = sampler.ProbeGPU()
		log.Info("gpu probe", zap.Bool("available", gpuAvailable))
		if gpuAvailable {
			reg.Register(sampler.NewGPU())
		}
	}
	return sampler.NewEngine(reg, cfg.Interval, log), gpuAvailable
}

func runDashboard(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()
	if err := sampler.CheckAccess(ctx); err != nil {
		return err
	}

	eng, gpuAvailable := buildEngine(cfg, log)
	return ui.Run(cfg, eng, gpuAvailable, log)
}
