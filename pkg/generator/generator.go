// Package generator renders the Initium application icons.
//
// Every icon follows the same pipeline: paint a vertical gradient on a
// square canvas, stamp a translucent circle in the middle, then encode the
// canvas in the format named by the output file extension.
package generator

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidSize is returned when an icon side length is not positive.
	ErrInvalidSize = errors.New("invalid icon size")
	// ErrMissingOutputDir is returned when the directory an output file
	// would live in does not exist. Nothing is written in that case.
	ErrMissingOutputDir = errors.New("missing output directory")
	// ErrUnsupportedFormat is returned for output extensions with no encoder.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Raster names one square PNG produced by Run.
type Raster struct {
	Size int    // Side length in pixels
	Name string // File name relative to Config.Dir
}

// Config holds parameters for icon generation.
type Config struct {
	GradientStart string  // Hex "#rrggbb" of row 0
	GradientEnd   string  // Hex "#rrggbb" the gradient heads towards
	CircleColor   string  // Hex "#rrggbb" of the circle
	CircleAlpha   uint8   // Alpha of the circle pixels
	CircleRatio   float64 // Circle radius as a fraction of the side length

	Dir             string   // Output directory, must exist
	Rasters         []Raster // Generated in order
	ContainerSource string   // Raster re-encoded into the icon container
	Container       string   // Icon container file name

	Logger *zerolog.Logger // Debug events; nil disables logging
}

// DefaultConfig returns the Initium icon set: a #667eea to #764ba2
// gradient with a white circle, written under icons/.
func DefaultConfig() Config {
	return Config{
		GradientStart: "#667eea",
		GradientEnd:   "#764ba2",
		CircleColor:   "#ffffff",
		CircleAlpha:   200,
		CircleRatio:   0.3,

		Dir: "icons",
		Rasters: []Raster{
			{Size: 32, Name: "icon.png"},
			{Size: 128, Name: "icon-128x128.png"},
			{Size: 256, Name: "icon-256x256.png"},
			{Size: 512, Name: "icon-512x512.png"},
		},
		ContainerSource: "icon.png",
		Container:       "icon.ico",
	}
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return c.Logger
}

// Render paints a size x size icon in memory.
//
// Row i gets the color start + (end-start) * i/size with each channel
// truncated to an integer, so the last row stops one step short of the end
// color. Pixels within CircleRatio*size of (size/2, size/2) are then
// replaced, not blended, by the circle color.
func Render(cfg Config, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	start, err := ParseHexNRGBA(cfg.GradientStart, 255)
	if err != nil {
		return nil, fmt.Errorf("gradient start: %w", err)
	}
	end, err := ParseHexNRGBA(cfg.GradientEnd, 255)
	if err != nil {
		return nil, fmt.Errorf("gradient end: %w", err)
	}
	fill, err := ParseHexNRGBA(cfg.CircleColor, cfg.CircleAlpha)
	if err != nil {
		return nil, fmt.Errorf("circle color: %w", err)
	}

	img := newCanvas(size)
	fillGradient(img, start, end)

	c := circle{cx: size / 2, cy: size / 2, r: int(float64(size) * cfg.CircleRatio)}
	c.fill(img, fill)

	cfg.logger().Debug().
		Int("size", size).
		Int("center", c.cx).
		Int("radius", c.r).
		Msg("rendered icon")
	return img, nil
}

// CreateIcon renders a size x size icon and writes it to filename. The
// encoder is chosen from the file extension (see formats). A confirmation
// line is printed to w once the file is on disk.
func CreateIcon(w io.Writer, cfg Config, size int, filename string) error {
	img, err := Render(cfg, size)
	if err != nil {
		return err
	}

	if err := writeImage(cfg, filename, img); err != nil {
		return err
	}

	fmt.Fprintf(w, "✅ %s created (%dx%d)\n", filename, size, size)
	return nil
}
