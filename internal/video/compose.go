// Package video assembles the narrated demo video: one still slide per
// narration clip, scene lengths driven by the recorded clip durations.
package video

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Scene pairs one slide image with one narration clip.
type Scene struct {
	Slide string // path to the still image
	Clip  string // path to the narration WAV
	Text  string // narration line, burned in when captions are enabled
	// DurationSec is the scene length, taken from the duration record so
	// video pacing matches the narration exactly.
	DurationSec float64
}

type ComposeOptions struct {
	EnableCaptions  bool
	CaptionFontSize int
}

// Compose renders each scene as a still-image video part with its narration
// clip, then concatenates the parts into output. Parts and burned slides are
// temporary and removed on success.
func Compose(scenes []Scene, output string, opts ComposeOptions) error {
	if len(scenes) == 0 {
		return fmt.Errorf("no scenes to compose")
	}

	tempDir := filepath.Dir(output)
	runID := uuid.New().String()[:8]
	var videoParts []string
	var tempImages []string

	for i, scene := range scenes {
		currentImg := scene.Slide
		if opts.EnableCaptions && scene.Text != "" {
			burnedImgPath := filepath.Join(tempDir, fmt.Sprintf("burned_%s_%d.png", runID, i))
			err := DrawCaption(scene.Slide, burnedImgPath, scene.Text, opts.CaptionFontSize)
			if err != nil {
				fmt.Printf("Warning: Failed to draw caption for scene %d: %v\n", i, err)
			} else {
				currentImg = burnedImgPath
				tempImages = append(tempImages, burnedImgPath)
			}
		}

		partPath := filepath.Join(tempDir, fmt.Sprintf("part_%s_%d.mp4", runID, i))

		if scene.DurationSec <= 0 {
			return fmt.Errorf("scene %d (%s): non-positive duration", i, scene.Clip)
		}

		// pad ensures even dimensions for libx264
		vf := "pad=ceil(iw/2)*2:ceil(ih/2)*2"

		// Loop the still for exactly the clip duration
		input1 := ffmpeg.Input(currentImg, ffmpeg.KwArgs{"loop": 1, "t": scene.DurationSec})
		input2 := ffmpeg.Input(scene.Clip)

		err := ffmpeg.Output([]*ffmpeg.Stream{input1, input2}, partPath, ffmpeg.KwArgs{
			"c:v":     "libx264",
			"tune":    "stillimage",
			"c:a":     "aac",
			"b:a":     "192k",
			"pix_fmt": "yuv420p",
			"vf":      vf,
		}).
			OverWriteOutput().
			Run()

		if err != nil {
			return fmt.Errorf("failed to create part %d: %v", i, err)
		}
		videoParts = append(videoParts, partPath)
	}

	// Concatenate all parts
	concatListPath := filepath.Join(tempDir, fmt.Sprintf("concat_%s.txt", runID))
	file, err := os.Create(concatListPath)
	if err != nil {
		return err
	}

	for _, part := range videoParts {
		file.WriteString(fmt.Sprintf("file '%s'\n", filepath.Base(part)))
	}
	file.Close()

	err = ffmpeg.Input(concatListPath, ffmpeg.KwArgs{"f": "concat", "safe": 0}).
		Output(output, ffmpeg.KwArgs{"c": "copy"}).
		OverWriteOutput().
		Run()

	if err != nil {
		return fmt.Errorf("failed to concat videos: %w", err)
	}

	// Cleanup
	for _, part := range videoParts {
		os.Remove(part)
	}
	for _, tmp := range tempImages {
		os.Remove(tmp)
	}
	os.Remove(concatListPath)

	return nil
}

// FindSlide locates the slide image matching a clip filename: "01.wav" pairs
// with "01.png" (or .jpg/.jpeg) in slidesDir.
func FindSlide(slidesDir, clipFilename string) (string, error) {
	base := strings.TrimSuffix(clipFilename, filepath.Ext(clipFilename))
	for _, ext := range []string{".png", ".jpg", ".jpeg"} {
		p := filepath.Join(slidesDir, base+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no slide found for %s in %s", clipFilename, slidesDir)
}
