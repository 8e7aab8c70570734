package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/config"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/generator"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/script"
	"github.com/peytondmurray/nebi-video-demo-automation/internal/tts"
)

func newGenerateCommand(logger *zap.SugaredLogger) *cobra.Command {
	var (
		engine     string
		voice      string
		speed      float64
		outputDir  string
		scriptPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render every narration line into a clip and record durations",
		Example: `  demovoice generate
  demovoice generate --engine openai --voice alloy
  demovoice generate --script my-script.json --out output/audio`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if engine != "" {
				cfg.Engine = engine
			}
			if voice != "" {
				cfg.Voice = voice
			}
			if speed != 0 {
				cfg.Speed = speed
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
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

			provider, err := tts.NewProvider(tts.EngineType(cfg.Engine), cfg)
			if err != nil {
				return fmt.Errorf("engine %q: %w", cfg.Engine, err)
			}

			_, err = generator.Run(cmd.Context(), cfg, table, provider, logger)
			return err
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "", "TTS engine: kokoro|openai|elevenlabs")
	cmd.Flags().StringVar(&voice, "voice", "", "voice identifier (default am_puck)")
	cmd.Flags().Float64Var(&speed, "speed", 0, "speech speed multiplier (default 1.0)")
	cmd.Flags().StringVar(&outputDir, "out", "", "output directory (default output/audio)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON narration table (default: built-in demo script)")
	return cmd
}
