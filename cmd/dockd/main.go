// Package main implements dockd, the dock applet engine.
// dockd reconciles live windows against pinned application slots and
// per-workspace saved configurations. Run without arguments it opens an
// interactive inspector that simulates window-manager events.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/dockd/dockd/internal/settings"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	debugMode            bool
	multiInd             bool
	allWorkspaces        bool
	currentWorkspaceOnly bool
	perWorkspacePins     bool
	dockFixedSize        int
	popupDelay           int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dockd",
		Short: "Dock applet engine",
		Long: `dockd - dock applet engine

Tracks running windows, maps them to launchable applications, and
reconciles them against pinned dock slots with per-workspace saved
configurations. The default command opens an interactive inspector
that simulates window-manager events.`,
		Example: `  # Open the interactive inspector
  dockd

  # Per-workspace pinned configurations with multi-window indicators
  dockd --per-workspace-pins --multi-ind

  # Replay a scripted event scenario and print the resulting dock
  dockd play scenario.toml

  # Show where settings are stored
  dockd config path`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInspector()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&multiInd, "multi-ind", false, "Show one indicator per window (max 4)")
	rootCmd.PersistentFlags().BoolVar(&allWorkspaces, "all-workspaces", false, "Show unpinned running apps from all workspaces")
	rootCmd.PersistentFlags().BoolVar(&currentWorkspaceOnly, "current-workspace-only", false, "Restrict indicators to windows on the active workspace")
	rootCmd.PersistentFlags().BoolVar(&perWorkspacePins, "per-workspace-pins", false, "Use per-workspace saved configurations instead of one global pin set")
	rootCmd.PersistentFlags().IntVar(&dockFixedSize, "dock-fixed-size", 0, "Max visible slots before overflow (-1 unbounded, 0 keep setting)")
	rootCmd.PersistentFlags().IntVar(&popupDelay, "popup-delay", 0, "Hover popup delay in ms (0 keeps setting)")

	playCmd := &cobra.Command{
		Use:   "play <scenario.toml>",
		Short: "Replay a scripted event scenario",
		Long: `Replay a scripted window/workspace event scenario through the
engine and print the dock snapshot after each step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScenario(args[0])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dockd settings",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := settings.Path()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			return showSettings()
		},
	})

	rootCmd.AddCommand(playCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}
