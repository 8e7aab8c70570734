package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/config"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/script"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/timing"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/video"
)

func newComposeCommand(logger *zap.SugaredLogger) *cobra.Command {
	var (
		slidesDir  string
		output     string
		captions   bool
		scriptPath string
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Assemble the demo video from generated clips and slide images",
		Long: "Reads durations.json from the output directory, pairs each clip " +
			"with its slide (01.wav with 01.png), and concatenates the scenes " +
			"into one mp4 with ffmpeg.",
		Example: `  demovoice compose --slides output/slides --output output/demo.mp4
  demovoice compose --captions`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if slidesDir != "" {
				cfg.SlidesDir = slidesDir
			}
			if captions {
				cfg.EnableCaptions = true
			}
			if scriptPath != "" {
				cfg.ScriptPath = scriptPath
			}

			table := script.Default()
			if cfg.ScriptPath != "" {
				table, err = script.Load(cfg.ScriptPath)
				if err != nil {
					return err
				}
			}
			texts := make(map[string]string, len(table))
			for _, e := range table {
				texts[e.Filename] = e.Text
			}

			record, err := timing.Load(filepath.Join(cfg.OutputDir, timing.RecordFile))
			if err != nil {
				return fmt.Errorf("load durations (run generate first?): %w", err)
			}

			var scenes []video.Scene
			for _, filename := range record.Filenames() {
				slide, err := video.FindSlide(cfg.SlidesDir, filename)
				if err != nil {
					return err
				}
				ms, _ := record.Get(filename)
				scenes = append(scenes, video.Scene{
					Slide:       slide,
					Clip:        filepath.Join(cfg.OutputDir, filename),
					Text:        texts[filename],
					DurationSec: float64(ms) / 1000,
				})
			}

			logger.Infow("composing demo video",
				"scenes", len(scenes),
				"output", output,
				"captions", cfg.EnableCaptions)

			err = video.Compose(scenes, output, video.ComposeOptions{
				EnableCaptions:  cfg.EnableCaptions,
				CaptionFontSize: cfg.CaptionFontSize,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Demo video written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&slidesDir, "slides", "", "directory of slide images (default output/slides)")
	cmd.Flags().StringVar(&output, "output", "output/demo.mp4", "output video path")
	cmd.Flags().BoolVar(&captions, "captions", false, "burn narration lines onto the slides")
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON narration table used for caption text")
	return cmd
}
