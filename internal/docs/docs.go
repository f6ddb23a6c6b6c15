// Package docs holds the embedded markdown topics shown by `slipbox docs` and
// the TUI help overlay.
package docs

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

type Topic struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Topics lists topic names, sorted.
func Topics() []string {
	paths, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if name := strings.TrimSuffix(path.Base(p), ".md"); name != "" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Index returns every topic with the title taken from its first heading.
func Index() []Topic {
	names := Topics()
	out := make([]Topic, 0, len(names))
	for _, name := range names {
		body, _ := Get(name)
		out = append(out, Topic{Name: name, Title: title(body, name)})
	}
	return out
}

func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" || strings.ContainsAny(topic, "/\\") {
		return "", false
	}
	b, err := contentFS.ReadFile(path.Join("content", topic+".md"))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func title(body, fallback string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
