package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"independent-director/pkg/models"
)

func TestParseIDArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain array", input: `["3", "2"]`, want: []string{"3", "2"}},
		{name: "json fence", input: "```json\n[\"4\", \"1\"]\n```", want: []string{"4", "1"}},
		{name: "bare fence", input: "```\n[\"5\"]\n```", want: []string{"5"}},
		{name: "surrounding whitespace", input: "  [\"1\"]  ", want: []string{"1"}},
		{name: "empty array", input: `[]`, want: []string{}},
		{name: "prose instead of json", input: "Here are the matches: 3 and 2", want: nil},
		{name: "object instead of array", input: `{"ids": ["3"]}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseIDArray(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectorLines(t *testing.T) {
	out := directorLines([]models.Director{
		{ID: "1", Name: "Asha Menon", Industry: "Healthcare", Age: 54, YearsOfExperience: 12, SectorsServed: []string{"Pharma", "Hospitals"}},
		{ID: "2", Name: "Ravi Iyer", Industry: "Banking"},
	})

	assert.Contains(t, out, "ID: 1, Name: Asha Menon")
	assert.Contains(t, out, "Sectors Served: Pharma, Hospitals")
	assert.Contains(t, out, "ID: 2, Name: Ravi Iyer")
	assert.Equal(t, 2, len(splitLines(out)))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
