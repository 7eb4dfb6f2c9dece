package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quietfern/catwalk"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and play the animation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log.Info("starting animation",
			"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
			"trees", cfg.TreeCount)
		return catwalk.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
