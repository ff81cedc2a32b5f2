package knowledge

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embeddedData embed.FS

var embeddedFiles = []string{
	"data/archetypes.yaml",
	"data/industries.yaml",
	"data/policies.yaml",
}

var (
	defaultBase *Base
	defaultOnce sync.Once
)

// Default returns the base built from the embedded tables.
// It panics if the embedded data is malformed, which only a broken build can cause.
func Default() *Base {
	defaultOnce.Do(func() {
		doc, err := embeddedDocument()
		if err != nil {
			panic(fmt.Sprintf("knowledge: embedded data: %v", err))
		}
		defaultBase = New(doc)
	})
	return defaultBase
}

func embeddedDocument() (Document, error) {
	var merged Document
	for _, name := range embeddedFiles {
		data, err := embeddedData.ReadFile(name)
		if err != nil {
			return Document{}, fmt.Errorf("read %s: %w", name, err)
		}
		doc, err := ParseDocument(data)
		if err != nil {
			return Document{}, fmt.Errorf("parse %s: %w", name, err)
		}
		merged = Merge(merged, doc)
	}
	return merged, nil
}

// ParseDocument decodes a YAML knowledge document. Unknown fields are rejected.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, err
	}
	return doc, nil
}

// Load returns the embedded base merged with the overlay file at overlayPath.
// An empty overlayPath yields the embedded base.
func Load(fs afero.Fs, overlayPath string) (*Base, error) {
	if overlayPath == "" {
		return Default(), nil
	}
	data, err := afero.ReadFile(fs, overlayPath)
	if err != nil {
		return nil, fmt.Errorf("read knowledge overlay %s: %w", overlayPath, err)
	}
	overlay, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse knowledge overlay %s: %w", overlayPath, err)
	}
	return New(Merge(Default().Document(), overlay)), nil
}

// Merge applies overlay on top of base. Entries with a known id replace the
// base entry in place; new ids are appended. Policies are replaced per
// (archetype, industry) pair.
func Merge(base, overlay Document) Document {
	out := Document{
		Archetypes: mergeByID(base.Archetypes, overlay.Archetypes, func(a Archetype) string { return a.ID }),
		Industries: mergeByID(base.Industries, overlay.Industries, func(i Industry) string { return i.ID }),
		Policies:   make(Policies, len(base.Policies)+len(overlay.Policies)),
	}
	for _, src := range []Policies{base.Policies, overlay.Policies} {
		for agent, byIndustry := range src {
			if out.Policies[agent] == nil {
				out.Policies[agent] = make(map[string]Policy, len(byIndustry))
			}
			maps.Copy(out.Policies[agent], byIndustry)
		}
	}
	return out
}

func mergeByID[T any](base, overlay []T, id func(T) string) []T {
	out := make([]T, 0, len(base)+len(overlay))
	pos := make(map[string]int, len(base)+len(overlay))
	for _, list := range [][]T{base, overlay} {
		for _, item := range list {
			if i, ok := pos[id(item)]; ok {
				out[i] = item
				continue
			}
			pos[id(item)] = len(out)
			out = append(out, item)
		}
	}
	return out
}
