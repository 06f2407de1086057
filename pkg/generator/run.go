// run.go — Full icon set generation.
package generator

import (
	"io"
	"path/filepath"
)

// Run writes every raster in cfg.Rasters to cfg.Dir, in order, and then
// exports cfg.ContainerSource as the icon container. The output directory
// is checked first so a missing directory produces no files at all. The
// first failure stops the run and leaves earlier files in place.
func Run(w io.Writer, cfg Config) error {
	if err := checkDir(cfg.Dir); err != nil {
		return err
	}

	for _, r := range cfg.Rasters {
		if err := CreateIcon(w, cfg, r.Size, filepath.Join(cfg.Dir, r.Name)); err != nil {
			return err
		}
	}

	src := filepath.Join(cfg.Dir, cfg.ContainerSource)
	dst := filepath.Join(cfg.Dir, cfg.Container)
	return ExportContainer(w, cfg, src, dst)
}
