// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llbbl/textile-showcase/greeting"
	"github.com/llbbl/textile-showcase/internal/config"
	"github.com/llbbl/textile-showcase/internal/logging"
	"github.com/llbbl/textile-showcase/internal/render"
)

// Version is set at build time with -ldflags
var Version = "dev"

// Flag variables
var style string

// cfg is populated by PersistentPreRun.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "textile-showcase",
	Short:        "Print the textile-showcase greeting",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Bad config degrades to defaults; it must never block the greeting.
		loaded, err := config.Load()
		cfg = loaded
		logging.SetupLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			logging.WithComponent("config").Warn("ignoring invalid configuration, using defaults", "error", err)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := render.ParseStyle(style)
		if err != nil {
			return err
		}

		log := logging.WithComponent("cmd")
		log.Debug("printing greeting", "style", s)

		out := cmd.OutOrStdout()
		if s == render.Plain {
			// A bare run is the entry routine, invoked once.
			if out == os.Stdout {
				greeting.Main()
				return nil
			}
			return greeting.Fprint(out)
		}

		if _, err := fmt.Fprint(out, render.Render(s, greeting.Message)); err != nil {
			return fmt.Errorf("writing greeting: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "textile-showcase version %s\n", Version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&style, "style", "s", string(render.Plain), "Output style: plain or banner")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the configuration loaded by the last command run.
func GetConfig() *config.Config {
	return cfg
}
