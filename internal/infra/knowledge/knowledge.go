// Package knowledge loads the planner knowledge base: interest activities,
// budget tiers, nearby places and destination detail panels.
package knowledge

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/travel-planner/internal/domain/destination"
	"github.com/yanqian/travel-planner/internal/domain/planner"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// Document is the full knowledge base as supplied by a source.
type Document struct {
	planner.CatalogData `yaml:",inline"`
	Destinations        map[string]destination.Detail `yaml:"destinations"`
	Featured            []string                      `yaml:"featured"`
}

// Source produces a knowledge Document.
type Source interface {
	Load(ctx context.Context) (Document, error)
}

// Parse decodes a YAML knowledge document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse knowledge document: %w", err)
	}
	return doc, nil
}

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// Load implements Source.
func (EmbeddedSource) Load(context.Context) (Document, error) {
	return Parse(embeddedCatalog)
}

// FileSource reads a YAML document from disk.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load(context.Context) (Document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Document{}, fmt.Errorf("read knowledge file: %w", err)
	}
	return Parse(data)
}

var (
	_ Source = EmbeddedSource{}
	_ Source = FileSource{}
)
