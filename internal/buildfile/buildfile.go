// Package buildfile reads saved builds used by check mode.
//
// A build file is YAML mapping component types to catalog ids:
//
//	selections:
//	  CPU: cpu-7600
//	  Motherboard: mb-b650
package buildfile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rfhold/partpick/internal/backend"
	"github.com/rfhold/partpick/internal/build"
	"github.com/rfhold/partpick/internal/catalog"
)

var (
	ErrEmptyBuild  = errors.New("build file selects no parts")
	ErrUnknownPart = errors.New("part not found in catalog")
)

// File is a decoded build file
type File struct {
	Name       string
	Selections map[catalog.ComponentType]string
}

type document struct {
	Name       string            `yaml:"name"`
	Selections map[string]string `yaml:"selections"`
}

// Load reads and parses a build file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading build file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a build file. Type names are matched case-insensitively.
func Parse(data []byte) (*File, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing build file: %w", err)
	}

	f := &File{
		Name:       doc.Name,
		Selections: make(map[catalog.ComponentType]string, len(doc.Selections)),
	}
	for name, id := range doc.Selections {
		t, err := catalog.ParseComponentType(name)
		if err != nil {
			return nil, fmt.Errorf("parsing build file: %w", err)
		}
		if _, dup := f.Selections[t]; dup {
			return nil, fmt.Errorf("parsing build file: %s selected twice", t)
		}
		if id == "" {
			return nil, fmt.Errorf("parsing build file: %s has an empty id", t)
		}
		f.Selections[t] = id
	}
	if len(f.Selections) == 0 {
		return nil, ErrEmptyBuild
	}
	return f, nil
}

// Resolve looks up every selected id in the catalog and returns a session
// holding the full components. Each type is listed once. Types whose id
// cannot be resolved are skipped and reported in the returned problems.
func (f *File) Resolve(ctx context.Context, reader backend.CatalogReader) (*build.Session, []error) {
	s := build.NewSession()
	var problems []error
	for _, t := range catalog.AllTypes() {
		id, ok := f.Selections[t]
		if !ok {
			continue
		}
		items, err := reader.ListComponents(ctx, t)
		if err != nil {
			problems = append(problems, fmt.Errorf("listing %s: %w", t, err))
			continue
		}
		c, found := findByID(items, id)
		if !found {
			problems = append(problems, fmt.Errorf("%w: %s %q", ErrUnknownPart, t, id))
			continue
		}
		s.Select(t, c)
	}
	return s, problems
}

func findByID(items []catalog.Component, id string) (catalog.Component, bool) {
	for _, c := range items {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Component{}, false
}
