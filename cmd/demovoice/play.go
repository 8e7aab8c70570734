package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/config"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/player"
)

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "play <clip>",
		Short:   "Play one generated clip through the speakers",
		Example: "  demovoice play 01.wav",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			clip := args[0]
			if filepath.Dir(clip) == "." {
				clip = filepath.Join(cfg.OutputDir, clip)
			}
			return player.Play(clip)
		},
	}
}
