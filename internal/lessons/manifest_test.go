package lessons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest()
	require.NoError(t, err)

	assert.ElementsMatch(t, Names(), m.Names())

	e, ok := m.Entry("closures")
	require.True(t, ok)
	assert.Equal(t, "Closures", e.Title)
	assert.Equal(t, []string{rule, "Closures", rule, "7"}, e.Expect)

	e, ok = m.Entry("variables")
	require.True(t, ok)
	assert.Equal(t, []string{rule, "Variables", rule}, e.Expect)

	_, ok = m.Entry("bogus")
	assert.False(t, ok)
}

func TestParseManifest(t *testing.T) {
	src := `
#Lesson: {
	title: string & !=""
	expect: [...string]
}
lessons: [string]: #Lesson
lessons: hello: {
	title: "Hello"
	expect: ["hello, world"]
}
lessons: empty: {
	title: "Empty"
	expect: []
}
`
	m, err := ParseManifest([]byte(src), "test.cue")
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "empty"}, m.Names())

	e, ok := m.Entry("hello")
	require.True(t, ok)
	assert.Equal(t, Entry{Name: "hello", Title: "Hello", Expect: []string{"hello, world"}}, e)

	e, ok = m.Entry("empty")
	require.True(t, ok)
	assert.Equal(t, []string{}, e.Expect)
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "syntax error",
			src:  `lessons: {`,
		},
		{
			name: "missing lessons",
			src:  `other: 1`,
			want: "lessons is required",
		},
		{
			name: "empty title rejected by schema",
			src: `
#Lesson: {
	title: string & !=""
	expect: [...string]
}
lessons: [string]: #Lesson
lessons: x: {title: "", expect: []}
`,
		},
		{
			name: "non-string line",
			src:  `lessons: x: {title: "X", expect: [1]}`,
			want: "expect[0]",
		},
		{
			name: "incomplete value",
			src:  `lessons: x: {title: string, expect: []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.src), "test.cue")
			require.Error(t, err)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}
