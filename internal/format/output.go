package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Texter is implemented by payloads with a human-readable rendering.
type Texter interface {
	WriteText(w io.Writer) error
}

// Write writes v as json (default), edn, or text. Text falls back to JSON for
// payloads that do not implement Texter.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "text":
		if t, ok := v.(Texter); ok {
			return t.WriteText(w)
		}
		return WriteJSON(w, v, true)
	default:
		return fmt.Errorf("unknown format: %s (expected json|edn|text)", format)
	}
}

// Valid reports whether format is accepted by Write.
func Valid(format string) bool {
	switch format {
	case "", "json", "edn", "text":
		return true
	}
	return false
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
