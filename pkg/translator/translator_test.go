package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "toza JSON",
			input: `{"uz": "Divan"}`,
			want:  `{"uz": "Divan"}`,
		},
		{
			name:  "json markdown blok",
			input: "```json\n{\"uz\": \"Divan\"}\n```",
			want:  `{"uz": "Divan"}`,
		},
		{
			name:  "oddiy markdown blok",
			input: "```\n{\"uz\": \"Divan\"}\n```",
			want:  `{"uz": "Divan"}`,
		},
		{
			name:  "atrofida bo'shliq",
			input: "  {\"uz\": \"Divan\"}  ",
			want:  `{"uz": "Divan"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.input))
		})
	}
}

func TestCreateFallback(t *testing.T) {
	m := createFallback("Divan")
	assert.Equal(t, "Divan", m["uz"])
	assert.Equal(t, "Divan", m["cyr"])
	assert.Equal(t, "Divan", m["ru"])
	assert.Equal(t, "Divan", m["en"])

	assert.Empty(t, createFallback(""))
}

func TestFillMissing(t *testing.T) {
	m := map[string]string{"uz": "Divan", "ru": "Диван"}
	fillMissing(m, "Divan")

	assert.Equal(t, "Диван", m["ru"])
	// Tushib qolgan tillar uz matn bilan to'ldiriladi
	assert.Equal(t, "Divan", m["cyr"])
	assert.Equal(t, "Divan", m["en"])
}
