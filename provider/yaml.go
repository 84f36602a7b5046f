package provider

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/inuse/pkg"
)

// ParseYAML parses YAML-formatted input into a new Document.
//
// The document root must be a mapping of section names to mappings of
// keys to scalar values. Non-string scalars are stored using their
// canonical string form.
func ParseYAML(r io.Reader) (*Document, error) {
	doc := NewDocument()
	if err := doc.parseYAML(r); err != nil {
		return nil, err
	}

	return doc, nil
}

// loadYAML parses the YAML file at path into the receiver, merging with
// any sections already present.
func (d *Document) loadYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}
	defer f.Close()

	return d.parseYAML(f)
}

func (d *Document) parseYAML(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}

	// MapSlice preserves the mapping order of the source document, and
	// UseOrderedMap keeps nested mappings ordered as well.
	var root yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(
		data, &root, yaml.UseOrderedMap(),
	); err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}

	for _, section := range root {
		name := scalarString(section.Key)
		d.addSection(name)

		body, ok := section.Value.(yaml.MapSlice)
		if !ok {
			if section.Value == nil {
				continue
			}

			return pkg.ErrReadInput.Wrapf(
				"section [%s] is not a mapping", name,
			)
		}

		for _, item := range body {
			d.set(name, scalarString(item.Key), scalarString(item.Value))
		}
	}

	return nil
}

// scalarString renders a decoded YAML scalar as its string form.
func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
