// interface.go — Output formats keyed by file extension.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
)

// Encoder writes img to w in a single file format.
type Encoder func(w io.Writer, img image.Image) error

// formats maps a lower-case file extension to its encoder.
var formats = map[string]Encoder{
	".png": png.Encode,
	".bmp": bmp.Encode,
	".ico": ico.Encode,
}

// encoderFor returns the encoder matching the extension of output.
func encoderFor(output string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(output))
	enc, ok := formats[ext]
	if !ok {
		return nil, fmt.Errorf("%w %q: use .png, .bmp or .ico", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}
