package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rawwerks/sysoverview/internal/config"
	"github.com/rawwerks/sysoverview/internal/logger"
)

// snapshotCmd takes one collection pass and prints it as JSON, which is
// handy for debugging samplers without starting the TUI.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one JSON metrics snapshot and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.LogFile)
		if err != nil {
			return err
		}
		defer log.Sync()

		eng, _ := buildEngine(cfg, log)
		snap := eng.Once(cmd.Context())

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	},
}

// initCmd writes a starter config file with the built-in defaults.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  "Create ~/.config/sysoverview/sysoverview.yaml (or the --config path) with default settings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, config.GlobalConfigDir, config.ConfigFileName)
		}
		if err := config.WriteDefault(path); err != nil {
			if os.IsExist(err) {
				return fmt.Errorf("config already exists at %s", path)
			}
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sysoverview %s (%s)\n", versionString, commitString)
	},
}

var (
	versionString = "dev"
	commitString  = "none"
)

// SetVersionInfo receives build metadata from main's ldflags variables.
func SetVersionInfo(version, commit string) {
	versionString = version
	commitString = commit
}
