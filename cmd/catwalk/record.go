package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quietfern/catwalk"
)

var (
	flagSeconds float64
	flagFormats []string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a clip of the animation and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if flagSeconds > 0 {
			cfg.Capture.Seconds = flagSeconds
		}
		if len(flagFormats) > 0 {
			cfg.Capture.Formats = flagFormats
		}
		log.Info("recording clip",
			"seconds", cfg.Capture.Seconds,
			"fps", cfg.Capture.FPS,
			"formats", cfg.Capture.Formats)
		path, err := catwalk.Record(cfg)
		if err != nil {
			return err
		}
		log.Info("clip saved", "path", path)
		return nil
	},
}

func init() {
	recordCmd.Flags().Float64Var(&flagSeconds, "seconds", 0, "recording duration, overrides config")
	recordCmd.Flags().StringSliceVar(&flagFormats, "format", nil,
		"clip format preference, first supported wins (apng, gif)")
	rootCmd.AddCommand(recordCmd)
}
