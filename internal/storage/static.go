// Package storage selects the filesystem static assets are served from.
package storage

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// Static asset modes.
const (
	ModeEmbed = "embed"
	ModeDisk  = "disk"
)

// StaticFS returns the filesystem rooted at the static asset directory.
// In embed mode it is the "static" subtree of embedded; in disk mode it is
// dir on the local disk, so stylesheets can be edited without a rebuild.
// Both are read-only.
func StaticFS(mode string, embedded fs.FS, dir string) (fs.FS, error) {
	var base afero.Fs
	switch mode {
	case ModeEmbed, "":
		sub, err := fs.Sub(embedded, "static")
		if err != nil {
			return nil, fmt.Errorf("storage: embedded static dir: %w", err)
		}
		base = afero.FromIOFS{FS: sub}
	case ModeDisk:
		base = afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	default:
		return nil, fmt.Errorf("storage: unknown static mode %q", mode)
	}
	return afero.NewIOFS(base), nil
}
