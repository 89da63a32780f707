package bundle

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/shaharia-lab/reskin/internal/resource"
)

// PackageID is the package byte of identifiers issued by bundle tables
const PackageID uint8 = 0x80

// Archive extensions recognized by Load
var archiveExtensions = map[string]bool{
	".pak": true,
	".zip": true,
}

// Table is the resource table of an opened bundle with the manifest it came from
type Table struct {
	*resource.Table
	Manifest *Manifest
}

// Load opens the bundle at path and returns its resources
func Load(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle %s: %w", path, err)
	}

	if info.IsDir() {
		t, err := LoadFS(os.DirFS(path))
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", path, err)
		}
		return t, nil
	}

	if !archiveExtensions[strings.ToLower(filepath.Ext(path))] {
		return nil, fmt.Errorf("bundle %s: not a directory or a .pak/.zip archive", path)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle archive %s: %w", path, err)
	}
	defer r.Close()

	t, err := LoadFS(r)
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", path, err)
	}
	return t, nil
}

// LoadFS reads a bundle rooted at fsys
func LoadFS(fsys fs.FS) (*Table, error) {
	m, err := readManifest(fsys)
	if err != nil {
		return nil, err
	}

	t, err := m.Table(fsys, PackageID)
	if err != nil {
		return nil, err
	}
	return &Table{Table: t, Manifest: m}, nil
}
