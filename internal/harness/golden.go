package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares the canonical snapshot of report against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./... -update
func AssertGolden(t *testing.T, name string, report *Report) error {
	t.Helper()

	data, err := report.Snapshot()
	if err != nil {
		return err
	}

	newGoldie(t).Assert(t, name, data)
	return nil
}

// AssertGoldenTranscript compares lines, one per row with a trailing newline,
// against testdata/golden/{name}.golden.
func AssertGoldenTranscript(t *testing.T, name string, lines []string) {
	t.Helper()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	newGoldie(t).Assert(t, name, []byte(b.String()))
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
