// Package config carries runtime options for sysoverview and loads them
// from YAML config files with environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the config file looked up in the working directory.
	ConfigFileName = "sysoverview.yaml"
	// GlobalConfigDir is the directory for the global config, under $HOME.
	GlobalConfigDir = ".config/sysoverview"

	// MinInterval is the floor for the refresh interval; anything faster
	// just burns CPU re-reading procfs.
	MinInterval = 250 * time.Millisecond
)

// Config carries runtime options for the dashboard.
type Config struct {
	Interval     time.Duration `mapstructure:"interval" yaml:"interval"`
	TopProcesses int           `mapstructure:"top_processes" yaml:"top_processes"`
	MaxDisks     int           `mapstructure:"max_disks" yaml:"max_disks"`
	EnableGPU    bool          `mapstructure:"gpu" yaml:"gpu"`
	GPUSafeTempC float64       `mapstructure:"gpu_safe_temp_c" yaml:"gpu_safe_temp_c"`
	WarnPercent  float64       `mapstructure:"warn_percent" yaml:"warn_percent"`
	CritPercent  float64       `mapstructure:"crit_percent" yaml:"crit_percent"`
	LogFile      string        `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interval:     time.Second,
		TopProcesses: 10,
		MaxDisks:     5,
		EnableGPU:    true,
		GPUSafeTempC: 90,
		WarnPercent:  60,
		CritPercent:  85,
		LogFile:      "",
	}
}

// Load reads the config file at path, or searches the standard locations
// when path is empty. A missing file is not an error; defaults are used.
// Environment variables prefixed SYSOVERVIEW_ override file values,
// e.g. SYSOVERVIEW_INTERVAL=2s or SYSOVERVIEW_GPU=false.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetDefault("interval", cfg.Interval)
	v.SetDefault("top_processes", cfg.TopProcesses)
	v.SetDefault("max_disks", cfg.MaxDisks)
	v.SetDefault("gpu", cfg.EnableGPU)
	v.SetDefault("gpu_safe_temp_c", cfg.GPUSafeTempC)
	v.SetDefault("warn_percent", cfg.WarnPercent)
	v.SetDefault("crit_percent", cfg.CritPercent)
	v.SetDefault("log_file", cfg.LogFile)

	v.SetEnvPrefix("SYSOVERVIEW")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, err
		}
	} else if found := find(); found != "" {
		v.SetConfigFile(found)
		if err := v.ReadInConfig(); err != nil {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg.sanitized(), nil
}

// sanitized clamps values that would make the dashboard useless.
func (c Config) sanitized() Config {
	if c.Interval < MinInterval {
		c.Interval = MinInterval
	}
	if c.TopProcesses < 1 {
		c.TopProcesses = 1
	}
	if c.MaxDisks < 1 {
		c.MaxDisks = 1
	}
	if c.GPUSafeTempC <= 0 {
		c.GPUSafeTempC = Default().GPUSafeTempC
	}
	if c.WarnPercent <= 0 || c.WarnPercent >= 100 {
		c.WarnPercent = Default().WarnPercent
	}
	if c.CritPercent <= c.WarnPercent || c.CritPercent >= 100 {
		c.CritPercent = Default().CritPercent
	}
	return c
}

// find locates the config file: sysoverview.yaml in the working directory,
// then ~/.config/sysoverview/sysoverview.yaml. Empty string when neither exists.
func find() string {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, ConfigFileName)
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}
	return ""
}

// WriteDefault writes the default configuration as YAML to path, creating
// parent directories as needed. Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return os.ErrExist
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	def := Default()
	// Durations marshal as nanosecond integers; write the human form instead.
	out := struct {
		Interval     string  `yaml:"interval"`
		TopProcesses int     `yaml:"top_processes"`
		MaxDisks     int     `yaml:"max_disks"`
		EnableGPU    bool    `yaml:"gpu"`
		GPUSafeTempC float64 `yaml:"gpu_safe_temp_c"`
		WarnPercent  float64 `yaml:"warn_percent"`
		CritPercent  float64 `yaml:"crit_percent"`
		LogFile      string  `yaml:"log_file"`
	}{
		Interval:     def.Interval.String(),
		TopProcesses: def.TopProcesses,
		MaxDisks:     def.MaxDisks,
		EnableGPU:    def.EnableGPU,
		GPUSafeTempC: def.GPUSafeTempC,
		WarnPercent:  def.WarnPercent,
		CritPercent:  def.CritPercent,
		LogFile:      def.LogFile,
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
