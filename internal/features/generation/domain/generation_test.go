package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormats(t *testing.T) {
	set, unknown := ParseFormats([]string{" Persona", "examples", "persona", "tables", ""})

	assert.Equal(t, NewFormatSet(FormatPersona, FormatExamples), set)
	assert.Equal(t, []string{"tables"}, unknown)
	assert.True(t, set.Has(FormatPersona))
	assert.False(t, set.Has(FormatConstraints))
}

func TestParseFormatsOrderDoesNotMatter(t *testing.T) {
	a, _ := ParseFormats([]string{"constraints", "persona", "examples"})
	b, _ := ParseFormats([]string{"examples", "constraints", "persona"})
	assert.Equal(t, a, b)
}
