package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("HS_TEST_HOST", "db.internal")
	t.Setenv("HS_TEST_PORT", "5432")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "host: {{.HS_TEST_HOST}}",
			expected: "host: db.internal",
		},
		{
			name:     "multiple variables on one line",
			input:    "dsn: {{.HS_TEST_HOST}}:{{.HS_TEST_PORT}}",
			expected: "dsn: db.internal:5432",
		},
		{
			name:     "missing variable expands to empty",
			input:    "token: '{{.HS_TEST_DOES_NOT_EXIST}}'",
			expected: "token: ''",
		},
		{
			name:     "dollar signs untouched",
			input:    `pattern: "^secret.*$"`,
			expected: `pattern: "^secret.*$"`,
		},
		{
			name:     "plain yaml passes through",
			input:    "server:\n  port: 8700",
			expected: "server:\n  port: 8700",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnv_MalformedTemplateReturnsOriginal(t *testing.T) {
	input := []byte("value: {{.UNCLOSED")
	assert.Equal(t, input, ExpandEnv(input))
}
