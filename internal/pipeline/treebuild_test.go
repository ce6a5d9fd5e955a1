package pipeline

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/openpali/tipitaka-tools/internal/config"
	"github.com/openpali/tipitaka-tools/internal/dal"
	"github.com/openpali/tipitaka-tools/internal/logging"
	"github.com/openpali/tipitaka-tools/internal/storage"
)

func seedTreeDB(t *testing.T) *dal.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tipitaka.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	stmts := []string{
		`CREATE TABLE books (id INTEGER PRIMARY KEY, code TEXT, abbr TEXT,
			name TEXT, basket TEXT, category TEXT)`,
		`CREATE TABLE tocs (id INTEGER PRIMARY KEY, book_id INTEGER,
			type TEXT, name TEXT, page_number INTEGER)`,
		`CREATE TABLE pages (id INTEGER PRIMARY KEY, book_id INTEGER,
			paragraph TEXT, page_number INTEGER)`,
		`INSERT INTO books VALUES (1, '1V', 'paraj', 'Pārājikapāḷi', 'mula', 'vi')`,
		`INSERT INTO tocs VALUES (1, 1, 'chapter', 'Verañjakaṇḍaṃ', 1)`,
		`INSERT INTO tocs VALUES (2, 1, 'title', 'Paṭhamapārājikaṃ', 10)`,
		`INSERT INTO tocs VALUES (3, 1, 'title', 'Dutiyapārājikaṃ', 40)`,
		`INSERT INTO tocs VALUES (4, 1, 'review', 'ignored entry', 41)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	d, err := dal.Open(path)
	if err != nil {
		t.Fatalf("dal.Open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestTreeBuilderEndToEnd(t *testing.T) {
	dstDir := t.TempDir()
	cfg := config.Default()
	cfg.TargetDir = dstDir
	cfg.Locales = []string{"romn"}
	cfg.BatchSize = 2
	cfg.NavFile = filepath.Join(dstDir, "navigate.js")

	b := &TreeBuilder{
		DB:      seedTreeDB(t),
		Config:  cfg,
		Storage: storage.NewFSStorage(dstDir),
		Process: identityProcess,
		Logger:  logging.Discard(),
	}
	if err := b.Run(context.Background(), []string{"romn"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	base := filepath.Join(dstDir, "romn", "tipitaka", "v", "paraj")
	for _, rel := range []string{"1.md", "1/index.md", "1/1.md", "1/2.md"} {
		if _, err := os.Stat(filepath.Join(base, filepath.FromSlash(rel))); err != nil {
			t.Fatalf("missing %s: %v", rel, err)
		}
	}

	leaf, err := os.ReadFile(filepath.Join(base, "1", "2.md"))
	if err != nil {
		t.Fatalf("leaf: %v", err)
	}
	text := string(leaf)
	if !strings.Contains(text, "title: Dutiyapārājikaṃ") {
		t.Fatalf("leaf title:\n%s", text)
	}
	if !strings.Contains(text, "order: 2") || !strings.Contains(text, "page: 40") {
		t.Fatalf("leaf metadata:\n%s", text)
	}

	if strings.Contains(text, "ignored entry") {
		t.Fatalf("unknown entry type leaked into output")
	}

	nav, err := os.ReadFile(cfg.NavFile)
	if err != nil {
		t.Fatalf("navigation: %v", err)
	}
	if !strings.Contains(string(nav), `"directory": "tipitaka/v/paraj"`) {
		t.Fatalf("autogenerate entry missing:\n%s", nav)
	}
}

func TestTreeBuilderMaxLevelTruncates(t *testing.T) {
	dstDir := t.TempDir()
	cfg := config.Default()
	cfg.TargetDir = dstDir
	cfg.Locales = []string{"romn"}
	cfg.NavFile = filepath.Join(dstDir, "navigate.js")
	level := 0
	cfg.MaxLevel = &level

	b := &TreeBuilder{
		DB:      seedTreeDB(t),
		Config:  cfg,
		Storage: storage.NewFSStorage(dstDir),
		Process: identityProcess,
		Logger:  logging.Discard(),
	}
	if err := b.Run(context.Background(), []string{"romn"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	base := filepath.Join(dstDir, "romn", "tipitaka", "v", "paraj")
	if _, err := os.Stat(filepath.Join(base, "1.md")); err != nil {
		t.Fatalf("chapter leaf missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "1")); !os.IsNotExist(err) {
		t.Fatalf("deeper levels should be truncated")
	}
}

func TestTreeBuilderRerunKeepsExisting(t *testing.T) {
	dstDir := t.TempDir()
	cfg := config.Default()
	cfg.TargetDir = dstDir
	cfg.Locales = []string{"romn"}
	cfg.NavFile = filepath.Join(dstDir, "navigate.js")

	b := &TreeBuilder{
		DB:      seedTreeDB(t),
		Config:  cfg,
		Storage: storage.NewFSStorage(dstDir),
		Process: identityProcess,
		Logger:  logging.Discard(),
	}
	if err := b.Run(context.Background(), []string{"romn"}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	edited := filepath.Join(dstDir, "romn", "tipitaka", "v", "paraj", "1", "1.md")
	if err := os.WriteFile(edited, []byte("hand-edited"), 0o644); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := b.Run(context.Background(), []string{"romn"}); err != nil {
		t.Fatalf("second run: %v", err)
	}

	data, err := os.ReadFile(edited)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hand-edited" {
		t.Fatalf("rerun overwrote existing file: %q", data)
	}
}
