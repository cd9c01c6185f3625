package lessons

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed manifest.cue
var manifestSource []byte

// Entry is the manifest record for one lesson.
type Entry struct {
	Name   string
	Title  string
	Expect []string
}

// Manifest holds the expected transcript of every lesson, keyed by name.
type Manifest struct {
	names   []string
	entries map[string]Entry
}

// LoadManifest compiles and validates the embedded manifest.
func LoadManifest() (*Manifest, error) {
	return ParseManifest(manifestSource, "manifest.cue")
}

// ParseManifest compiles CUE manifest source. filename is used in error positions.
func ParseManifest(src []byte, filename string) (*Manifest, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	lessonsVal := v.LookupPath(cue.ParsePath("lessons"))
	if !lessonsVal.Exists() {
		return nil, fmt.Errorf("manifest %s: lessons is required", filename)
	}

	iter, err := lessonsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	m := &Manifest{entries: make(map[string]Entry)}
	for iter.Next() {
		name := iter.Selector().String()
		entry, err := parseEntry(name, iter.Value())
		if err != nil {
			return nil, err
		}
		m.names = append(m.names, name)
		m.entries[name] = entry
	}
	return m, nil
}

func parseEntry(name string, v cue.Value) (Entry, error) {
	entry := Entry{Name: name}

	title, err := v.LookupPath(cue.ParsePath("title")).String()
	if err != nil {
		return Entry{}, fmt.Errorf("lesson %s: title: %w", name, formatCUEError(err))
	}
	entry.Title = title

	list, err := v.LookupPath(cue.ParsePath("expect")).List()
	if err != nil {
		return Entry{}, fmt.Errorf("lesson %s: expect: %w", name, formatCUEError(err))
	}
	entry.Expect = []string{}
	for i := 0; list.Next(); i++ {
		line, err := list.Value().String()
		if err != nil {
			return Entry{}, fmt.Errorf("lesson %s: expect[%d]: %w", name, i, formatCUEError(err))
		}
		entry.Expect = append(entry.Expect, line)
	}
	return entry, nil
}

// Names returns manifest lesson names in declaration order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Entry returns the record for name.
func (m *Manifest) Entry(name string) (Entry, bool) {
	e, ok := m.entries[name]
	return e, ok
}

// formatCUEError flattens a CUE error list into one error with positions.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 && positions[0].IsValid() {
		pos := positions[0]
		return fmt.Errorf("%s:%d:%d: %s", pos.Filename(), pos.Line(), pos.Column(), first.Error())
	}
	return first
}
