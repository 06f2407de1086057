// png.go — Image file writer and reader.
package generator

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
)

// writeImage encodes img to output using the encoder for its extension.
// The parent directory must already exist.
func writeImage(cfg Config, output string, img image.Image) error {
	enc, err := encoderFor(output)
	if err != nil {
		return err
	}
	if err := checkDir(filepath.Dir(output)); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := enc(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}

	cfg.logger().Debug().
		Str("path", output).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("wrote image")
	return nil
}

// readImage decodes the image stored at path in any registered format.
func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// checkDir reports ErrMissingOutputDir unless dir exists and is a directory.
func checkDir(dir string) error {
	fi, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissingOutputDir, dir)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrMissingOutputDir, dir)
	}
	return nil
}
