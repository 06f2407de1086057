// ico.go — Windows icon container export.
package generator

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ExportContainer loads the raster at src and re-encodes it as an icon
// container at dst. The image is not resized, so the container holds a
// single frame with the same pixels as src.
func ExportContainer(w io.Writer, cfg Config, src, dst string) error {
	if ext := strings.ToLower(filepath.Ext(dst)); ext != ".ico" {
		return fmt.Errorf("%w %q: icon container must be .ico", ErrUnsupportedFormat, ext)
	}

	img, err := readImage(src)
	if err != nil {
		return err
	}

	if err := writeImage(cfg, dst, img); err != nil {
		return err
	}

	fmt.Fprintf(w, "✅ %s created\n", dst)
	return nil
}
