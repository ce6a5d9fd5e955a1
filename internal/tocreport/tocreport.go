// Package tocreport builds per-book contents summaries from the legacy
// markdown tree: every list link becomes a bullet, nested by how deep
// the link chain goes. The reports are review artifacts, not site
// content.
package tocreport

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openpali/tipitaka-tools/internal/config"
	"github.com/openpali/tipitaka-tools/internal/mdutil"
	"github.com/openpali/tipitaka-tools/internal/translit"
)

// maxDepth bounds link following; the legacy tree never nests deeper.
const maxDepth = 6

type entry struct {
	title string
	level int
}

type Generator struct {
	SourceDir string
	OutputDir string
	Locale    string
	Converter *translit.Converter
	Logger    *slog.Logger
}

// GenerateBook writes the contents report for one book reference.
func (g *Generator) GenerateBook(ref string) error {
	book, ok := config.BookForRef(ref)
	if !ok {
		return fmt.Errorf("unknown book reference %q", ref)
	}
	mainFile := filepath.Join(g.SourceDir, book.Code+".md")
	data, err := os.ReadFile(mainFile)
	if err != nil {
		return fmt.Errorf("book root file: %w", err)
	}

	visited := map[string]bool{mainFile: true}
	entries := g.follow(data, filepath.Dir(mainFile), 0, visited)
	if len(entries) == 0 {
		g.Logger.Warn("no contents entries found", "book", book.Code)
		return nil
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: Contents %s\n", book.Code)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "## %s\n\n", g.convert(book.Name))
	for _, e := range entries {
		b.WriteString(strings.Repeat("  ", e.level))
		b.WriteString("- ")
		b.WriteString(e.title)
		b.WriteByte('\n')
	}

	out := filepath.Join(g.OutputDir, book.Code+"-toc.md")
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("report dir: %w", err)
	}
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	g.Logger.Info("contents report written", "book", book.Code, "entries", len(entries), "path", out)
	return nil
}

// GenerateAll reports every book that has a root file, skipping the
// rest silently.
func (g *Generator) GenerateAll() error {
	var generated int
	for _, code := range config.SortedCodes() {
		if _, err := os.Stat(filepath.Join(g.SourceDir, code+".md")); err != nil {
			continue
		}
		if err := g.GenerateBook(code); err != nil {
			g.Logger.Error("report failed", "book", code, "error", err)
			continue
		}
		generated++
	}
	if generated == 0 {
		return fmt.Errorf("no book root files under %s", g.SourceDir)
	}
	return nil
}

// follow collects one file's contents links and descends into each
// linked file.
func (g *Generator) follow(data []byte, dir string, level int, visited map[string]bool) []entry {
	if level >= maxDepth {
		return nil
	}
	var entries []entry
	for _, link := range mdutil.ListLinks(data) {
		if skipLink(link) {
			continue
		}
		entries = append(entries, entry{title: g.convert(link.Text), level: level})

		target := filepath.Join(dir, filepath.FromSlash(link.Target))
		if !strings.HasSuffix(target, ".md") || visited[target] {
			continue
		}
		sub, err := os.ReadFile(target)
		if err != nil {
			continue
		}
		visited[target] = true
		entries = append(entries, g.follow(sub, filepath.Dir(target), level+1, visited)...)
	}
	return entries
}

// skipLink filters site chrome out of the link list: breadcrumbs,
// previous/next navigation and anything external.
func skipLink(l mdutil.Link) bool {
	if l.Text == "Home" || strings.HasPrefix(l.Text, "Go to ") {
		return true
	}
	return l.Target == "" || strings.HasPrefix(l.Target, "/") ||
		strings.HasPrefix(l.Target, "#") || strings.Contains(l.Target, "://")
}

func (g *Generator) convert(text string) string {
	if g.Converter == nil {
		return text
	}
	return g.Converter.Convert(text, g.Locale)
}
