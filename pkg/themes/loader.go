package themes

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-viewkit/pkg/render"
)

// Store holds the manifests loaded from theme files keyed by theme name.
type Store struct {
	manifests map[string]*theme.Manifest
}

// LoadFS walks the provided filesystem and parses JSON/YAML theme files. When
// fsys is nil or holds no theme files, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{manifests: make(map[string]*theme.Manifest)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isThemeFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("themes: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// LoadFile parses a single theme document from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("themes: read %s: %w", path, err)
	}
	store := &Store{manifests: make(map[string]*theme.Manifest)}
	if err := store.add(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Manifest returns the manifest for the named theme.
func (s *Store) Manifest(name string) (*theme.Manifest, bool) {
	if s == nil {
		return nil, false
	}
	manifest, ok := s.manifests[strings.TrimSpace(name)]
	return manifest, ok
}

// Names lists the loaded themes in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any themes.
func (s *Store) Empty() bool {
	return s == nil || len(s.manifests) == 0
}

// Merge copies every manifest from other into s. Themes already present are
// replaced.
func (s *Store) Merge(other *Store) {
	if s == nil || other == nil {
		return
	}
	for name, manifest := range other.manifests {
		s.manifests[name] = manifest
	}
}

// Selector builds a go-theme selector over the loaded manifests.
func (s *Store) Selector(defaultTheme, defaultVariant string) (*render.StaticSelector, error) {
	selector := render.NewStaticSelector(defaultTheme, defaultVariant)
	for _, name := range s.Names() {
		if err := selector.Add(s.manifests[name]); err != nil {
			return nil, fmt.Errorf("themes: add %q: %w", name, err)
		}
	}
	return selector, nil
}

func (s *Store) add(data []byte, source string) error {
	file, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	manifest := file.Manifest()
	if manifest.Name == "" {
		return fmt.Errorf("themes: file %s defines an empty theme name", source)
	}
	if _, exists := s.manifests[manifest.Name]; exists {
		return fmt.Errorf("themes: duplicate theme %q (file %s)", manifest.Name, source)
	}
	s.manifests[manifest.Name] = manifest
	return nil
}

func parseDocument(data []byte, source string) (File, error) {
	var doc File
	if len(strings.TrimSpace(string(data))) == 0 {
		return File{}, fmt.Errorf("themes: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return File{}, fmt.Errorf("themes: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return File{}, fmt.Errorf("themes: parse %s: %w", source, err)
	}
	return doc, nil
}

func isThemeFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
