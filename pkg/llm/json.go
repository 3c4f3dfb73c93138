package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// CleanJSON strips markdown code fences that chat models wrap around JSON
// payloads despite json_object instructions.
func CleanJSON(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DecodeJSON parses a (possibly fenced) JSON completion into target.
// Failures are data errors: the provider answered, the payload did not
// match the contract.
func DecodeJSON(provider, text string, target any) error {
	cleaned := CleanJSON(text)
	if cleaned == "" {
		return &ProviderError{
			Provider: provider,
			Kind:     KindData,
			Message:  "empty completion where JSON was required",
		}
	}
	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return &ProviderError{
			Provider: provider,
			Kind:     KindData,
			Message:  fmt.Sprintf("completion is not valid JSON: %v", err),
			Err:      err,
		}
	}
	return nil
}

// GenerateSchema reflects a JSON schema for T, for providers that support
// schema-constrained outputs.
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// SchemaInstruction renders a schema as a system-line constraint for
// backends without native schema-constrained decoding.
func SchemaInstruction(schema any) string {
	b, err := json.Marshal(schema)
	if err != nil {
		return ""
	}
	return "The JSON object must conform to this JSON schema:\n" + string(b)
}
