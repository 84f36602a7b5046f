package provider

import (
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ardnew/inuse/pkg"
	"github.com/ardnew/inuse/resolve"
)

// Document is an ordered collection of configuration sections parsed from
// one or more input files. It implements [resolve.Provider].
//
// Section names, key names, and declaration order are preserved exactly
// as written. Duplicate keys within a section keep their first position
// but take the last value seen.
type Document struct {
	order    []string
	sections map[string][]resolve.Entry
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{
		sections: map[string][]resolve.Entry{},
	}
}

// Load parses each path into a single merged Document, dispatching on
// file extension: ".yml" and ".yaml" parse as YAML, everything else as
// INI. Later files override earlier ones per section and key.
func Load(paths ...string) (*Document, error) {
	if len(paths) == 0 {
		return nil, pkg.ErrNoSources
	}

	doc := NewDocument()

	for _, path := range paths {
		if err := doc.LoadFile(path); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// LoadFile parses the file at path into the receiver, merging with any
// sections already present. The format is dispatched on file extension
// the same way [Load] does.
func (d *Document) LoadFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return d.loadYAML(path)
	default:
		return d.loadINI(path)
	}
}

// MergeINI parses INI-formatted input into the receiver. The name labels
// parse errors.
func (d *Document) MergeINI(r io.Reader, name string) error {
	return d.parseINI(r, name)
}

// MergeYAML parses YAML-formatted input into the receiver.
func (d *Document) MergeYAML(r io.Reader) error {
	return d.parseYAML(r)
}

// Entries returns the ordered raw key/value pairs of the named section.
func (d *Document) Entries(section string) ([]resolve.Entry, error) {
	entries, ok := d.sections[section]
	if !ok {
		return nil, pkg.ErrSectionNotFound.Wrapf("[%s]", section)
	}

	return slices.Clone(entries), nil
}

// Sections returns every section name in declaration order.
func (d *Document) Sections() []string {
	return slices.Clone(d.order)
}

// Has reports whether the named section exists.
func (d *Document) Has(section string) bool {
	_, ok := d.sections[section]

	return ok
}

// addSection records the section if unseen, preserving encounter order.
func (d *Document) addSection(name string) {
	if _, ok := d.sections[name]; ok {
		return
	}

	d.order = append(d.order, name)
	d.sections[name] = nil
}

// set stores a key/value pair in the named section. An existing key keeps
// its position and takes the new value.
func (d *Document) set(section, key, value string) {
	d.addSection(section)

	entries := d.sections[section]
	for i, e := range entries {
		if e.Key == key {
			entries[i].Value = value

			return
		}
	}

	d.sections[section] = append(entries, resolve.Entry{
		Key:   key,
		Value: value,
	})
}
