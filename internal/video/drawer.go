package video

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// DrawCaption draws the narration line onto the slide at srcPath and saves
// the result to dstPath.
func DrawCaption(srcPath, dstPath, text string, fontSize int) error {
	// 1. Load Slide
	imgFile, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer imgFile.Close()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return err
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)

	// 2. Load Font
	fontPath := GetBestFontPath()
	if fontPath == "" {
		return fmt.Errorf("no suitable font found for captions")
	}

	b, err := os.ReadFile(fontPath)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %v", fontPath, err)
	}

	loadedFont, err := truetype.Parse(b)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	// 3. Setup Context
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(loadedFont)
	c.SetFontSize(float64(fontSize))
	c.SetClip(rgba.Bounds())
	c.SetDst(rgba)
	c.SetSrc(image.NewUniform(color.White))

	// 4. Measure & Wrap Text
	opts := truetype.Options{Size: float64(fontSize), DPI: 72}
	face := truetype.NewFace(loadedFont, &opts)

	// Max width: 90% of slide width
	maxWidth := int(float64(rgba.Bounds().Dx()) * 0.9)
	paddingX := (rgba.Bounds().Dx() - maxWidth) / 2

	lines := wrapWords(face, text, maxWidth)

	// 5. Draw Lines (Bottom Up)
	lineHeight := int(float64(fontSize) * 1.5)
	totalHeight := len(lines) * lineHeight
	startY := rgba.Bounds().Dy() - totalHeight - 50 // Bottom margin

	for i, line := range lines {
		// Center text
		lineWidth := measureStringWidth(face, line)
		x := (rgba.Bounds().Dx() - lineWidth) / 2
		if x < paddingX {
			x = paddingX
		}

		y := startY + (i+1)*lineHeight
		pt := freetype.Pt(x, y)

		// Shadow
		c.SetSrc(image.NewUniform(color.Black))
		offset := 2
		for dy := -offset; dy <= offset; dy++ {
			for dx := -offset; dx <= offset; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				c.DrawString(line, freetype.Pt(pt.X.Ceil()+dx, pt.Y.Ceil()+dy))
			}
		}

		// Text
		c.SetSrc(image.NewUniform(color.White))
		c.DrawString(line, pt)
	}

	// 6. Save
	outFile, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	return png.Encode(outFile, rgba)
}

// wrapWords breaks text into lines no wider than maxWidth, on word
// boundaries. A single word wider than maxWidth gets its own line.
func wrapWords(face font.Face, text string, maxWidth int) []string {
	var lines []string
	var currentLine string

	for _, word := range strings.Fields(text) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measureStringWidth(face, testLine) > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

func measureStringWidth(face font.Face, text string) int {
	width := 0
	for _, x := range text {
		awidth, _ := face.GlyphAdvance(x)
		width += awidth.Ceil()
	}
	return width
}
