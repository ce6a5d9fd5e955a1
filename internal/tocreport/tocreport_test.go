package tocreport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openpali/tipitaka-tools/internal/logging"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestGenerateBook(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeTree(t, src, map[string]string{
		"1V.md": strings.Join([]string{
			"[Home](/) > 1V",
			"# Pārājikapāḷi",
			"",
			"* [Verañjakaṇḍaṃ](1V/1.md)",
			"* [Paṭhamapārājikaṃ](1V/2.md)",
			"[Go to next page](1V/1.md)",
		}, "\n"),
		"1V/1.md": "# Verañjakaṇḍaṃ\n\n* [Paṭhamabhāga](1/1.md)\n",
		"1V/2.md": "# Paṭhamapārājikaṃ\n\nno further links here\n",
		"1V/1/1.md": "# Paṭhamabhāga\n\nleaf text\n",
	})

	g := &Generator{
		SourceDir: src,
		OutputDir: out,
		Locale:    "romn",
		Logger:    logging.Discard(),
	}
	if err := g.GenerateBook("1V"); err != nil {
		t.Fatalf("GenerateBook: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "1V-toc.md"))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "## Pārājikapāḷi") {
		t.Fatalf("book heading missing:\n%s", text)
	}
	if !strings.Contains(text, "- Verañjakaṇḍaṃ\n  - Paṭhamabhāga\n- Paṭhamapārājikaṃ") {
		t.Fatalf("nesting wrong:\n%s", text)
	}
	if strings.Contains(text, "Home") || strings.Contains(text, "Go to") {
		t.Fatalf("site chrome leaked into report:\n%s", text)
	}
}

func TestGenerateBookUnknownRef(t *testing.T) {
	g := &Generator{SourceDir: t.TempDir(), OutputDir: t.TempDir(), Logger: logging.Discard()}
	if err := g.GenerateBook("nope"); err == nil {
		t.Fatalf("expected error for unknown reference")
	}
}

func TestGenerateAllRequiresBooks(t *testing.T) {
	g := &Generator{SourceDir: t.TempDir(), OutputDir: t.TempDir(), Logger: logging.Discard()}
	if err := g.GenerateAll(); err == nil {
		t.Fatalf("expected error when no book files exist")
	}
}
