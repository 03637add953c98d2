package stub

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rfhold/partpick/internal/catalog"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Fixture is the YAML document the stub serves from
type Fixture struct {
	// Parts are raw catalog records; keys follow the wire format
	Parts []map[string]any `yaml:"parts"`
	// Evaluation is the canned verdict returned by POST /api/evaluate
	Evaluation CannedEvaluation `yaml:"evaluation"`
}

// CannedEvaluation is returned for every evaluate call
type CannedEvaluation struct {
	IsValid         bool     `yaml:"is_valid"`
	Issues          []string `yaml:"issues"`
	EstimatedPowerW float64  `yaml:"estimated_power_w"`
}

// DefaultFixture returns the embedded sample catalog
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture)
}

// LoadFixture reads a fixture file
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes a fixture document
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

// Components converts the fixture records into catalog components
func (f *Fixture) Components() ([]catalog.Component, error) {
	out := make([]catalog.Component, 0, len(f.Parts))
	seen := make(map[string]bool, len(f.Parts))
	for i, rec := range f.Parts {
		c, err := catalog.ComponentFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		if c.ID == "" {
			return nil, fmt.Errorf("part %d: missing _id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("part %d: duplicate _id %q", i, c.ID)
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out, nil
}
