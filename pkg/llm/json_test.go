package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"fence with trailing prose trimmed", "```json\n[1,2]\n```", "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSON(tt.in))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Queries []string `json:"queries"`
	}
	err := DecodeJSON("openai", "```json\n{\"queries\":[\"a\",\"b\"]}\n```", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Queries)
}

func TestDecodeJSONDataErrors(t *testing.T) {
	var out map[string]any

	err := DecodeJSON("openai", "not json at all", &out)
	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindData, pe.Kind)

	err = DecodeJSON("openai", "   ", &out)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindData, pe.Kind)
}

func TestGenerateSchema(t *testing.T) {
	type reply struct {
		Names []string `json:"names" jsonschema_description:"Names found verbatim"`
	}
	schema := GenerateSchema[reply]()
	require.NotNil(t, schema)
}

func TestSchemaInstruction(t *testing.T) {
	type reply struct {
		Score float64 `json:"score"`
	}
	line := SchemaInstruction(GenerateSchema[reply]())
	assert.Contains(t, line, "must conform to this JSON schema")
	assert.Contains(t, line, `"score"`)

	assert.Empty(t, SchemaInstruction(func() {}))
}
