package tools

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ErrorResult is the wire shape of a failed call.
type ErrorResult struct {
	Error string `json:"error"`
}

// Render encodes v as indented UTF-8 JSON. Non-ASCII and HTML characters are
// written as-is.
func Render(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
