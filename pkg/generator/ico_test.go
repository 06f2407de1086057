package generator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
)

func writeSource(t *testing.T, dir string) string {
	t.Helper()
	src := filepath.Join(dir, "icon.png")
	if err := CreateIcon(&bytes.Buffer{}, DefaultConfig(), 32, src); err != nil {
		t.Fatal(err)
	}
	return src
}

func TestExportContainer(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir)
	dst := filepath.Join(dir, "icon.ico")

	var out bytes.Buffer
	if err := ExportContainer(&out, DefaultConfig(), src, dst); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "✅ "+dst+" created\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 22 {
		t.Fatalf("container too short: %d bytes", len(data))
	}
	if typ := binary.LittleEndian.Uint16(data[2:4]); typ != 1 {
		t.Errorf("type = %d, want 1 (icon)", typ)
	}
	if n := binary.LittleEndian.Uint16(data[4:6]); n != 1 {
		t.Errorf("frames = %d, want 1", n)
	}
	if data[6] != 32 || data[7] != 32 {
		t.Errorf("frame size = %dx%d, want 32x32", data[6], data[7])
	}

	f, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := ico.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds().Size() != image.Pt(32, 32) {
		t.Fatalf("frame bounds = %v", got.Bounds())
	}

	want := decodePNG(t, src)
	gb, wb := got.Bounds(), want.Bounds()
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			g := nrgbaAt(got, gb.Min.X+x, gb.Min.Y+y)
			w := nrgbaAt(want, wb.Min.X+x, wb.Min.Y+y)
			if g != w {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestExportContainerMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "icon.ico")

	err := ExportContainer(&bytes.Buffer{}, DefaultConfig(), filepath.Join(dir, "icon.png"), dst)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want not-exist error", err)
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("container should not exist: %v", err)
	}
}

func TestExportContainerWrongExtension(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir)

	err := ExportContainer(&bytes.Buffer{}, DefaultConfig(), src, filepath.Join(dir, "icon.png.bak"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v, want ErrUnsupportedFormat", err)
	}
}
