package format

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN renders v as EDN. Values go through encoding/json first so struct
// tags decide field names; object keys become kebab-case keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	e := &ednWriter{pretty: pretty}
	e.value(x, 0)
	e.buf.WriteByte('\n')
	_, err = w.Write(e.buf.Bytes())
	return err
}

type ednWriter struct {
	buf    bytes.Buffer
	pretty bool
}

func (e *ednWriter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		e.buf.WriteString("nil")
	case bool:
		e.buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		e.buf.WriteString(t.String())
	case string:
		e.buf.WriteString(strconv.Quote(t))
	case []any:
		e.open('[')
		for i, x := range t {
			e.sep(i, depth+1)
			e.value(x, depth+1)
		}
		e.close(']', len(t), depth)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.open('{')
		for i, k := range keys {
			e.sep(i, depth+1)
			e.buf.WriteString(Keyword(k))
			e.buf.WriteByte(' ')
			e.value(t[k], depth+1)
		}
		e.close('}', len(keys), depth)
	default:
		e.buf.WriteString("nil")
	}
}

func (e *ednWriter) open(c byte) { e.buf.WriteByte(c) }

func (e *ednWriter) sep(i, depth int) {
	switch {
	case e.pretty:
		e.buf.WriteByte('\n')
		e.buf.WriteString(strings.Repeat("  ", depth))
	case i > 0:
		e.buf.WriteByte(' ')
	}
}

func (e *ednWriter) close(c byte, n, depth int) {
	if e.pretty && n > 0 {
		e.buf.WriteByte('\n')
		e.buf.WriteString(strings.Repeat("  ", depth))
	}
	e.buf.WriteByte(c)
}

// Keyword turns a JSON field name into an EDN keyword: insertAt -> :insert-at.
func Keyword(s string) string {
	var b strings.Builder
	b.WriteByte(':')
	prevLower := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}
