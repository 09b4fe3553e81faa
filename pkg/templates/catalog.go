package templates

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-readmegen/pkg/model"
	"github.com/goliatone/go-readmegen/pkg/rendererr"
)

// Entry is a catalogued template and the file it was loaded from.
type Entry struct {
	Template model.Template
	Source   string
}

// Catalog holds templates keyed by metadata id.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// LoadFS walks fsys and decodes every JSON/YAML file as a template. A nil
// filesystem yields an empty catalog.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	catalog := NewCatalog()
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocument(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("templates: read %s: %w", path, err)
		}
		tpl, err := DecodeTemplate(data, path)
		if err != nil {
			return fmt.Errorf("templates: load %s: %w", path, err)
		}
		return catalog.add(tpl, path)
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

// Add registers tpl under its metadata id.
func (c *Catalog) Add(tpl model.Template) error {
	return c.add(tpl, "")
}

func (c *Catalog) add(tpl model.Template, source string) error {
	id := tpl.ID()
	if id == "" {
		return fmt.Errorf("templates: template from %q has no metadata id", source)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[id]; ok {
		return fmt.Errorf("templates: duplicate template %q (%s and %s)", id, existing.Source, source)
	}
	c.entries[id] = Entry{Template: tpl, Source: source}
	return nil
}

// Get returns the template registered under id, or TEMPLATE_NOT_FOUND.
func (c *Catalog) Get(id string) (model.Template, error) {
	entry, ok := c.Lookup(id)
	if !ok {
		return model.Template{}, rendererr.TemplateNotFound(strings.TrimSpace(id))
	}
	return entry.Template, nil
}

// GetVersion returns the template registered under id when its version equals
// version, or TEMPLATE_VERSION_MISMATCH.
func (c *Catalog) GetVersion(id, version string) (model.Template, error) {
	tpl, err := c.Get(id)
	if err != nil {
		return model.Template{}, err
	}
	if want := strings.TrimSpace(version); want != "" && want != tpl.Version() {
		return model.Template{}, rendererr.TemplateVersionMismatch(tpl.ID(), want, tpl.Version())
	}
	return tpl, nil
}

// Lookup returns the entry registered under id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[strings.TrimSpace(id)]
	return entry, ok
}

// List returns the metadata of every template sorted by id.
func (c *Catalog) List() []model.Metadata {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Metadata, 0, len(c.entries))
	for _, entry := range c.entries {
		if entry.Template.Metadata != nil {
			out = append(out, *entry.Template.Metadata)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len reports the number of catalogued templates.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func isDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
