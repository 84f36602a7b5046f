package provider

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ardnew/inuse/pkg"
)

// ParseINI parses INI-formatted input into a new Document.
func ParseINI(r io.Reader) (*Document, error) {
	doc := NewDocument()
	if err := doc.parseINI(r, "input"); err != nil {
		return nil, err
	}

	return doc, nil
}

// loadINI parses the INI file at path into the receiver, merging with any
// sections already present.
func (d *Document) loadINI(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}
	defer f.Close()

	return d.parseINI(f, path)
}

// parseINI scans INI-formatted input line by line.
//
// Recognized syntax:
//   - [section] headers, names preserved verbatim (including case and
//     internal whitespace)
//   - key delimiters ":" and "=", whichever appears first
//   - keys with no delimiter, stored with an empty value
//   - full-line comments beginning with "#" or ";"
//   - continuation lines (indented, non-empty) appended to the previous
//     value with a newline
func (d *Document) parseINI(r io.Reader, name string) error {
	var (
		section string
		lastKey string
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			lastKey = ""

			continue
		}

		if trimmed[0] == '#' || trimmed[0] == ';' {
			continue
		}

		// Indented lines continue the previous value.
		if (line[0] == ' ' || line[0] == '\t') && lastKey != "" {
			entries := d.sections[section]
			for i := range entries {
				if entries[i].Key == lastKey {
					entries[i].Value += "\n" + trimmed

					break
				}
			}

			continue
		}

		if trimmed[0] == '[' {
			end := strings.IndexByte(trimmed, ']')
			if end < 0 {
				return pkg.ErrReadInput.Wrapf(
					"%s:%d: unterminated section header", name, lineNo,
				)
			}

			section = trimmed[1:end]
			lastKey = ""

			d.addSection(section)

			continue
		}

		if section == "" {
			return pkg.ErrReadInput.Wrapf(
				"%s:%d: key before any section header", name, lineNo,
			)
		}

		key, value := splitKeyValue(trimmed)
		d.set(section, key, value)
		lastKey = key
	}

	if err := scanner.Err(); err != nil {
		return pkg.ErrReadInput.Wrap(err)
	}

	return nil
}

// splitKeyValue splits a line at the first ":" or "=" delimiter. A line
// with no delimiter is a bare key with an empty value.
func splitKeyValue(line string) (key, value string) {
	idx := strings.IndexAny(line, ":=")
	if idx < 0 {
		return strings.TrimSpace(line), ""
	}

	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
}
