package dal

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tipitaka.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE books (id INTEGER PRIMARY KEY, code TEXT, abbr TEXT,
			name TEXT, basket TEXT, category TEXT)`,
		`CREATE TABLE tocs (id INTEGER PRIMARY KEY, book_id INTEGER,
			type TEXT, name TEXT, page_number INTEGER)`,
		`CREATE TABLE pages (id INTEGER PRIMARY KEY, book_id INTEGER,
			paragraph TEXT, page_number INTEGER)`,
		`INSERT INTO books VALUES (1, '29Dhs', 'dhs', 'Dhammasaṅgaṇī', 'mula', 'abhi')`,
		`INSERT INTO books VALUES (2, '1V', 'para', 'Pārājikapāḷi', 'mula', 'vi')`,
		`INSERT INTO books VALUES (3, 'att1', 'att-sp', 'Samantapāsādikā', 'attha', 'vi')`,
		`INSERT INTO tocs VALUES (1, 1, 'chapter', 'Mātikā', 1)`,
		`INSERT INTO tocs VALUES (2, 1, 'title', 'Tikamātikā', 1)`,
		`INSERT INTO tocs VALUES (3, 1, 'title', 'Dukamātikā', 5)`,
		`INSERT INTO pages VALUES (1, 1, '5', 10)`,
		`INSERT INTO pages VALUES (2, 1, '5', 10)`,
		`INSERT INTO pages VALUES (3, 1, '5', 11)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed %q: %v", stmt, err)
		}
	}
	return path
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Fatalf("expected error for missing database")
	}
}

func TestBooksFilterByBasket(t *testing.T) {
	d, err := Open(seedDB(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	ctx := context.Background()
	all, err := d.Books(ctx, "")
	if err != nil {
		t.Fatalf("Books: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all books = %d, want 3", len(all))
	}

	mula, err := d.Books(ctx, "mula")
	if err != nil {
		t.Fatalf("Books mula: %v", err)
	}
	if len(mula) != 2 || mula[0].Code != "29Dhs" || mula[1].Abbrev != "para" {
		t.Fatalf("mula books = %+v", mula)
	}
}

func TestTOCsOrderedByPage(t *testing.T) {
	d, err := Open(seedDB(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	tocs, err := d.TOCs(context.Background(), 1)
	if err != nil {
		t.Fatalf("TOCs: %v", err)
	}
	if len(tocs) != 3 {
		t.Fatalf("tocs = %d, want 3", len(tocs))
	}
	// Same page keeps source order; later page sorts after.
	if tocs[0].Name != "Mātikā" || tocs[1].Name != "Tikamātikā" || tocs[2].Name != "Dukamātikā" {
		t.Fatalf("toc order = %v %v %v", tocs[0].Name, tocs[1].Name, tocs[2].Name)
	}
	if tocs[0].Type != "chapter" || tocs[2].PageNumber != 5 {
		t.Fatalf("toc fields = %+v", tocs)
	}
}

func TestPagesInSourceOrder(t *testing.T) {
	d, err := Open(seedDB(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	pages, err := d.Pages(context.Background(), 1)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	want := []int{10, 10, 11}
	if len(pages) != len(want) {
		t.Fatalf("pages = %d, want %d", len(pages), len(want))
	}
	for i, p := range pages {
		if p.Division != "5" || p.PageNumber != want[i] {
			t.Fatalf("page %d = %+v, want division 5 page %d", i, p, want[i])
		}
	}
}
