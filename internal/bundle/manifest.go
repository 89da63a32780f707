// Package bundle opens external theme bundles: a directory or a zip archive
// (.pak, .zip) holding a manifest and the files it references.
package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/shaharia-lab/reskin/internal/resource"
	"gopkg.in/yaml.v3"
)

// ManifestNames are the manifest files looked up at the bundle root, in order
var ManifestNames = []string{"theme.yaml", "theme.yml", "theme.toml"}

// ErrNoManifest is returned when a bundle has none of the ManifestNames
var ErrNoManifest = errors.New("bundle has no manifest")

// Manifest declares the resources of a bundle. Drawables map a resource name
// to a file path relative to the bundle root.
type Manifest struct {
	Package   string            `yaml:"package" toml:"package"`
	Name      string            `yaml:"name,omitempty" toml:"name,omitempty"`
	Strings   map[string]string `yaml:"strings,omitempty" toml:"strings,omitempty"`
	Colors    map[string]string `yaml:"colors,omitempty" toml:"colors,omitempty"`
	Drawables map[string]string `yaml:"drawables,omitempty" toml:"drawables,omitempty"`
}

// ParseManifest decodes data as YAML or TOML depending on the extension of name
func ParseManifest(name string, data []byte) (*Manifest, error) {
	var m Manifest
	switch path.Ext(name) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", name)
	}

	if m.Package == "" {
		return nil, fmt.Errorf("%s: package is required", name)
	}
	return &m, nil
}

func readManifest(fsys fs.FS) (*Manifest, error) {
	for _, name := range ManifestNames {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return ParseManifest(name, data)
	}
	return nil, ErrNoManifest
}

// Table builds the resource table of the bundle, reading drawables from fsys
func (m *Manifest) Table(fsys fs.FS, pkgID uint8) (*resource.Table, error) {
	table := resource.NewTable(m.Package, pkgID)

	for _, name := range sortedKeys(m.Strings) {
		if _, err := table.PutString(name, m.Strings[name]); err != nil {
			return nil, fmt.Errorf("string %q: %w", name, err)
		}
	}

	for _, name := range sortedKeys(m.Colors) {
		c, err := resource.ParseColor(m.Colors[name])
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		if _, err := table.PutColor(name, c); err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
	}

	for _, name := range sortedKeys(m.Drawables) {
		file := path.Clean(m.Drawables[name])
		if !fs.ValidPath(file) {
			return nil, fmt.Errorf("drawable %q: path %q escapes the bundle", name, m.Drawables[name])
		}
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("drawable %q: %w", name, err)
		}
		if _, err := table.PutDrawable(name, resource.Drawable{
			Name:      path.Base(file),
			MediaType: mediaType(file),
			Data:      data,
		}); err != nil {
			return nil, fmt.Errorf("drawable %q: %w", name, err)
		}
	}

	return table, nil
}

func mediaType(file string) string {
	if t := mime.TypeByExtension(path.Ext(file)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
