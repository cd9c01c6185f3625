// Package lessons holds the JavaScript review lessons.
//
// Each lesson is a Go demonstration of one topic from the original review
// script. The expected transcript of every lesson lives in manifest.cue;
// a lesson whose output drifts from its transcript fails with a reason
// naming the first differing line.
package lessons

import (
	"fmt"

	"github.com/roach88/jsreview/internal/harness"
)

// catalog lists the lessons in the order they are registered.
var catalog = []struct {
	name string
	body harness.Body
}{
	{"numbers", numbers},
	{"strings", jsStrings},
	{"otherTypes", otherTypes},
	{"variables", variables},
	{"operators", operators},
	{"controlStructures", controlStructures},
	{"objects", objects},
	{"arrays", arrays},
	{"functions", functions},
	{"customObjects", customObjects},
	{"closures", closures},
	{"oop", oop},
}

// Names returns the built-in lesson names in registration order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.name
	}
	return names
}

// Register loads the manifest and registers every built-in lesson on reg.
//
// Every lesson must have a manifest entry and every manifest entry must
// belong to a lesson; either mismatch is a configuration error.
func Register(reg *harness.Registry) error {
	manifest, err := LoadManifest()
	if err != nil {
		return fmt.Errorf("load lesson manifest: %w", err)
	}
	return RegisterWith(reg, manifest)
}

// RegisterWith registers the built-in lessons using the given manifest.
func RegisterWith(reg *harness.Registry, manifest *Manifest) error {
	known := make(map[string]bool, len(catalog))
	for _, c := range catalog {
		known[c.name] = true
	}
	for _, name := range manifest.Names() {
		if !known[name] {
			return fmt.Errorf("manifest entry %q has no lesson", name)
		}
	}

	for _, c := range catalog {
		entry, ok := manifest.Entry(c.name)
		if !ok {
			return fmt.Errorf("lesson %q has no manifest entry", c.name)
		}
		body := expectTranscript(c.body, entry.Expect)
		if err := reg.Register(c.name, body, harness.WithTitle(entry.Title)); err != nil {
			return err
		}
	}
	return nil
}

// expectTranscript wraps body so the lines it writes are checked against
// expected once it returns.
func expectTranscript(body harness.Body, expected []string) harness.Body {
	return func(out *harness.Sink) error {
		start := out.Len()
		if err := body(out); err != nil {
			return err
		}
		return compareTranscript(expected, out.Snapshot()[start:])
	}
}

// compareTranscript returns a *harness.Failure describing the first
// difference between expected and got, or nil if they match.
func compareTranscript(expected, got []string) error {
	for i := 0; i < len(expected) && i < len(got); i++ {
		if expected[i] != got[i] {
			return harness.Fail("line %d: got %q, want %q", i+1, got[i], expected[i])
		}
	}
	if len(got) != len(expected) {
		return harness.Fail("transcript has %d lines, want %d", len(got), len(expected))
	}
	return nil
}
