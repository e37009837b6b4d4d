// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd wires the persistent configuration flags and the three benchmark commands.
func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		configPath string
		flagged    Config
	)

	root := &cobra.Command{
		Use:   "csrbench",
		Short: "Benchmark a Compressed Sparse Row matrix",
		Long: `csrbench plans and allocates a rows x cols CSR matrix, fills it with
about rows*cols*density random entries and times the requested operation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				if err := LoadConfig(configPath, &cfg); err != nil {
					return err
				}
			}
			applyFlags(cmd.Flags(), flagged, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return a.init(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
	bindFlags(root.PersistentFlags(), &flagged, DefaultConfig())

	root.AddCommand(
		&cobra.Command{
			Use:   "populate",
			Short: "Create and populate a matrix, optionally dumping it",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return a.runPopulate() },
		},
		&cobra.Command{
			Use:   "multiply",
			Short: "Time repeated SpMV with a fresh random operand each iteration",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return a.runMultiply() },
		},
		&cobra.Command{
			Use:   "insert",
			Short: "Time ordered insertions at random coordinates",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return a.runInsert() },
		},
	)
	return root
}
