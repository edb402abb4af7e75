// Package filter narrows structured command output with JMESPath.
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Apply runs a JMESPath expression over a JSON document and returns the
// result as indented JSON. An empty expression returns the input.
func Apply(jsonStr, expression string) (string, error) {
	if expression == "" {
		return jsonStr, nil
	}

	var data any
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}

	if result == nil {
		return "null\n", nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output) + "\n", nil
}

// IsValid checks if an expression is valid JMESPath syntax
func IsValid(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}
