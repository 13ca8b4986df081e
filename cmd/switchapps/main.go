// Command switchapps installs and removes double-clickable shortcuts for
// macOS session actions (login window, sleep, logout, user switching).
//
// Action definitions live under the repository root as
// <DisplayName>.action directories; built bundles land under the install
// root as <DisplayName>.app.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmc/switchapps"
	"github.com/tmc/switchapps/bundle"
	"github.com/tmc/switchapps/debug"
	"github.com/tmc/switchapps/internal/trash"
	"github.com/tmc/switchapps/lifecycle"
)

var version = "dev"

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	if errors.Is(err, switchapps.ErrAborted) {
		fmt.Fprintln(os.Stderr, "aborted")
		return
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func newRootCmd() *cobra.Command {
	var (
		debugFlag  bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "switchapps",
		Short: "Manage shortcut apps for macOS session actions",
		Long: `switchapps builds and installs double-clickable app bundles for macOS
session actions such as opening the login window, sleeping, or logging
out. Actions are defined by directories under the repository root; files
a definition does not supply fall back to the shared Default.action
definition.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(debugFlag)
		},
	}
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable verbose tracing")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	newManager := func() (*lifecycle.Manager, error) {
		cfg, err := switchapps.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if cfg.Debug {
			debug.Init(true)
		}
		cfg.Debug = cfg.Debug || debugFlag
		return lifecycle.NewManager(cfg, bundle.Osacompile{}, &trash.Mover{}, confirmOnStdin), nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "install <action>",
			Short: "Build and install the bundle for an action",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newManager()
				if err != nil {
					return err
				}
				path, err := m.Install(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "installed %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "uninstall <action>",
			Short: "Remove the installed bundle for an action",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newManager()
				if err != nil {
					return err
				}
				if err := m.Uninstall(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "uninstalled %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List actions and their installed state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newManager()
				if err != nil {
					return err
				}
				statuses, err := m.List()
				if err != nil {
					return err
				}
				for _, s := range statuses {
					mark := " "
					if s.Installed {
						mark = "*"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, s.ID)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Populate the repository with the starter definitions",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := switchapps.LoadConfig(configPath)
				if err != nil {
					return err
				}
				if err := switchapps.SeedRepository(cfg.RepoRoot); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", cfg.RepoRoot)
				return nil
			},
		},
	)
	return root
}

// confirmOnStdin blocks for a y/N answer on stdin. Anything but an
// explicit yes declines.
func confirmOnStdin(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
