package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterQuery(t *testing.T) {
	assert.Empty(t, parseFilterQuery("   "))
	assert.Equal(t, filterQuery{
		{field: "type", value: "pre"},
		{field: "number", value: "42"},
		{value: "zypper"},
		{value: "#"},
		{value: ":x"},
	}, parseFilterQuery(" Type:PRE #42  Zypper # :x"))
}

func TestFilterQueryMatches(t *testing.T) {
	cells := []string{"\x1b[32m42\x1b[0m", "pre", "zypper in vim"}
	fields := map[string]string{"number": "42", "type": "pre", "important": "yes"}

	type scenario struct {
		needle   string
		expected bool
	}

	scenarios := []scenario{
		{"", true},
		{"vim", true},
		{"VIM zypper", true},
		{"vim emacs", false},
		{"#42", true},
		{"#4", false},
		{"type:pre vim", true},
		{"type:post", false},
		{"important:yes", true},
		{"user:root", false},
	}

	for _, s := range scenarios {
		t.Run(s.needle, func(t *testing.T) {
			assert.Equal(t, s.expected, parseFilterQuery(s.needle).matches(cells, fields))
		})
	}
}
