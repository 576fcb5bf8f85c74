// Package catalog holds the content model browsed by plura: categorized
// movie, TV and anime items loaded from a local JSON or YAML file, and the
// in-memory personal list.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sample.json
var sampleData []byte

// Catalog maps category ids to their items, per view
type Catalog struct {
	Movies map[string][]Item `json:"movies,omitempty" yaml:"movies,omitempty"`
	TV     map[string][]Item `json:"tv,omitempty" yaml:"tv,omitempty"`
	Anime  map[string][]Item `json:"anime,omitempty" yaml:"anime,omitempty"`
}

// Format is a catalog file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the codec from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported catalog format: %s (use .json, .yaml or .yml)", path)
}

// Sample returns the catalog bundled with the binary
func Sample() *Catalog {
	c, err := Parse(sampleData, FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog data
func Parse(data []byte, format Format) (*Catalog, error) {
	var c Catalog

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format: %q", format)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// section returns the category table of a view
func (c *Catalog) section(v View) map[string][]Item {
	switch v {
	case Movies:
		return c.Movies
	case Shows:
		return c.TV
	case Anime:
		return c.Anime
	}
	return nil
}

// Items returns the items of one category. Unknown categories are empty.
func (c *Catalog) Items(v View, category string) []Item {
	if c == nil {
		return nil
	}
	return c.section(v)[category]
}

// Count returns the number of items across all categories
func (c *Catalog) Count() int {
	n := 0
	for _, v := range Views {
		for _, items := range c.section(v) {
			n += len(items)
		}
	}
	return n
}

// Validate checks category names and item fields. Ids must be unique within
// a category since they key the on-screen cards.
func (c *Catalog) Validate() error {
	for _, v := range Views {
		sec := c.section(v)
		if len(sec) == 0 {
			continue
		}

		known := make(map[string]bool)
		for _, cat := range Categories(v) {
			known[cat.ID] = true
		}

		for cat, items := range sec {
			if !known[cat] {
				return fmt.Errorf("unknown category %q in %s", cat, v)
			}

			seen := make(map[int]bool, len(items))
			for i, it := range items {
				if it.ID <= 0 {
					return fmt.Errorf("%s/%s item %d: id must be positive", v, cat, i)
				}
				if seen[it.ID] {
					return fmt.Errorf("%s/%s: duplicate item id %d", v, cat, it.ID)
				}
				seen[it.ID] = true

				if strings.TrimSpace(it.Title) == "" {
					return fmt.Errorf("%s/%s item %d: missing title", v, cat, it.ID)
				}
				if it.Type != Movie && it.Type != TV {
					return fmt.Errorf("%s/%s item %d: invalid type %q (must be movie or tv)", v, cat, it.ID, it.Type)
				}
				if it.Rating < 0 || it.Rating > 10 {
					return fmt.Errorf("%s/%s item %d: rating %.1f out of range", v, cat, it.ID, it.Rating)
				}
			}
		}
	}
	return nil
}
