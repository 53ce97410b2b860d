package statistics

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownStatistic is returned when a statistic name has no definition.
var ErrUnknownStatistic = errors.New("unknown statistic")

// Definition names one published statistic and the calculator that produces it.
// The name is used verbatim on every result node.
type Definition struct {
	Name        string `yaml:"name"`
	Calculator  string `yaml:"calculator"`
	Description string `yaml:"description"`
	Fingerprint string `yaml:"-"` // SHA-256 of the raw YAML file
}

// rawDefinition is the on-disk YAML shape.
type rawDefinition struct {
	Name        string `yaml:"name"`
	Calculator  string `yaml:"calculator"`
	Description string `yaml:"description"`
}

// CatalogRepository enumerates the statistics available for calculation.
type CatalogRepository interface {
	// Get returns the definition with the given name, or ErrUnknownStatistic.
	Get(ctx context.Context, name string) (*Definition, error)

	// List returns all definitions, optionally filtered by calculator kind.
	List(ctx context.Context, calculator string) ([]Definition, error)

	// Definitions returns all definitions sorted by name.
	Definitions() []Definition
}

// FileSystemCatalog loads statistic definitions from *.yaml files in a directory.
// Each file holds exactly one definition. Definitions are loaded once at startup.
type FileSystemCatalog struct {
	dir         string
	definitions map[string]Definition
}

// NewFileSystemCatalog creates a catalog and eagerly loads every definition from dir.
// Returns an error if any file is malformed or names an unknown calculator.
func NewFileSystemCatalog(dir string) (*FileSystemCatalog, error) {
	c := &FileSystemCatalog{
		dir:         dir,
		definitions: make(map[string]Definition),
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCatalog builds an in-memory catalog from already validated definitions.
func NewCatalog(defs []Definition) (*FileSystemCatalog, error) {
	c := &FileSystemCatalog{definitions: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		if err := c.add(def); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *FileSystemCatalog) load() error {
	info, err := os.Stat(c.dir)
	if os.IsNotExist(err) {
		return nil // no definitions directory: zero statistics configured
	}
	if err != nil {
		return fmt.Errorf("statistics dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("statistics path %q is not a directory", c.dir)
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("reading statistics dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(c.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading statistic file %s: %w", path, err)
		}

		var raw rawDefinition
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing statistic file %s: %w", path, err)
		}
		if raw.Name == "" {
			continue // skip empty / comment-only files
		}

		if err := c.add(Definition{
			Name:        raw.Name,
			Calculator:  raw.Calculator,
			Description: raw.Description,
			Fingerprint: fmt.Sprintf("%x", sha256.Sum256(data)),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (c *FileSystemCatalog) add(def Definition) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("statistic name must not be empty")
	}
	if !ValidKind(def.Calculator) {
		return fmt.Errorf("statistic %q: unsupported calculator %q", def.Name, def.Calculator)
	}
	if _, exists := c.definitions[def.Name]; exists {
		return fmt.Errorf("statistic %q: duplicate name (check multiple YAML files)", def.Name)
	}
	c.definitions[def.Name] = def
	return nil
}

// Get returns the definition with the given name.
func (c *FileSystemCatalog) Get(_ context.Context, name string) (*Definition, error) {
	def, ok := c.definitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatistic, name)
	}
	return &def, nil
}

// List returns all definitions, optionally filtered by calculator kind.
func (c *FileSystemCatalog) List(_ context.Context, calculator string) ([]Definition, error) {
	var out []Definition
	for _, def := range c.Definitions() {
		if calculator != "" && def.Calculator != calculator {
			continue
		}
		out = append(out, def)
	}
	return out, nil
}

// Definitions returns all definitions sorted by name.
func (c *FileSystemCatalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.definitions))
	for _, def := range c.definitions {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
