package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/distmap"
)

var (
	cfg    Config
	logger *distmap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "distmap",
	Short: "Distance-matrix preprocessing for surrogate map generation",
	Long: `distmap converts dense pairwise-distance text matrices into
memory-mapped sorted-distance and argsort-index arrays, computes
Euclidean matrices from coordinate tables, and reduces dense matrices
to parcellated form.

Configuration defaults are read from DISTMAP_* environment variables
(a .env file in the working directory is honored).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(); err != nil {
			return err
		}
		logger, err = newLogger(cfg)
		return err
	},
}

func Execute() error {
	return rootCmd.Execute()
}
