package resolve

// Entry is one raw key/value pair from a configuration section, in the
// order the section provider returned it.
type Entry struct {
	Key   string
	Value string
}

// Provider supplies raw section contents to the [Engine].
//
// Implementations own the on-disk (or in-memory) format entirely; the
// engine never sees anything but ordered key/value strings. The provider
// package implements this interface for INI and YAML sources.
type Provider interface {
	// Entries returns the ordered raw key/value pairs of the named
	// section. An unknown section name fails with an error matching
	// [pkg.ErrSectionNotFound].
	Entries(section string) ([]Entry, error)

	// Sections returns the names of every section the provider knows,
	// in source order. It is used only by whole-view materialization.
	Sections() []string
}
