package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "ada lovelace", want: "AL"},
		{name: "three words", in: "Jean Claude Van", want: "JC"},
		{name: "single word", in: "Plato", want: "P"},
		{name: "hyphenated", in: "anne-marie", want: "AM"},
		{name: "cyrillic", in: "иван петров", want: "ИП"},
		{name: "blank", in: "   ", want: "?"},
		{name: "empty", in: "", want: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.in))
		})
	}
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, "No bio yet", OrPlaceholder("  ", "No bio yet"))
	assert.Equal(t, "Go mentor", OrPlaceholder("Go mentor", "No bio yet"))
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", FullName(" Ada ", "Lovelace"))
	assert.Equal(t, "Ada", FullName("Ada", ""))
	assert.Equal(t, "", FullName("", " "))
}
