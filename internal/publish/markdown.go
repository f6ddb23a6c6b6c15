// Package publish renders outlines as markdown documents.
package publish

import (
	"bytes"
	"strings"

	"slipbox/internal/model"
	"slipbox/internal/store"
)

type RenderOptions struct {
	// Title becomes the document heading; empty means no heading.
	Title string
	// Addresses prefixes each bullet with the item's address in code span.
	Addresses bool
}

// RenderOutlineMarkdown renders items (in outline order) as a nested bullet
// list. Depth is relative to the first item, so subtrees render flush left.
func RenderOutlineMarkdown(items []model.Item, opt RenderOptions) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	if t := strings.TrimSpace(opt.Title); t != "" {
		writeLn("# " + t)
		writeLn("")
	}
	if len(items) == 0 {
		writeLn("_(empty)_")
		return buf.String()
	}

	base := items[0].Depth()
	for _, it := range items {
		level := it.Depth() - base
		if level < 0 {
			level = 0
		}
		line := strings.Repeat("  ", level) + "- "
		if opt.Addresses {
			line += "`" + it.Address + "` "
		}
		line += escapeInline(it.Label)
		writeLn(line)
	}
	return buf.String()
}

// RenderSubtreeMarkdown renders key and its descendants.
func RenderSubtreeMarkdown(s *store.Store, key string, opt RenderOptions) (string, error) {
	start, end, ok := s.SubtreeSpan(key)
	if !ok {
		return "", store.NotFoundError{Kind: "item", Key: key}
	}
	items := s.Items()[start:end]
	if opt.Title == "" {
		opt.Title = items[0].Label
		items = items[1:]
		if len(items) == 0 {
			return "# " + strings.TrimSpace(opt.Title) + "\n", nil
		}
	}
	return RenderOutlineMarkdown(items, opt), nil
}

// escapeInline keeps labels from turning into markdown structure.
func escapeInline(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := strings.NewReplacer(
		`\`, `\\`,
		"`", "\\`",
		"*", `\*`,
		"_", `\_`,
		"[", `\[`,
		"]", `\]`,
	)
	return r.Replace(s)
}
