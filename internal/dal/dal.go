// Package dal reads the canonical text database: book records, their
// table-of-contents entries, and the physical page positions recorded
// for numbered divisions. Access is read-only; the database is built
// elsewhere.
package dal

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

type DB struct {
	db *sql.DB
}

// Open connects to an existing database file. A missing file is an
// error: there is nothing sensible to build without the source data.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source database: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open source database: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// BookRecord is one row of the books table.
type BookRecord struct {
	ID       int64
	Code     string
	Abbrev   string
	Name     string
	Basket   string
	Category string
}

// Books lists book records, optionally filtered by basket, in table
// order.
func (d *DB) Books(ctx context.Context, basket string) ([]BookRecord, error) {
	query := `SELECT id, code, abbr, name, basket, category FROM books`
	args := []any{}
	if basket != "" {
		query += ` WHERE basket = ?`
		args = append(args, basket)
	}
	query += ` ORDER BY id`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var books []BookRecord
	for rows.Next() {
		var b BookRecord
		if err := rows.Scan(&b.ID, &b.Code, &b.Abbrev, &b.Name, &b.Basket, &b.Category); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// TOCRecord is one table-of-contents entry of a book.
type TOCRecord struct {
	ID         int64
	BookID     int64
	Type       string
	Name       string
	PageNumber int
}

// TOCs lists a book's contents entries ordered by page number, with
// insertion order breaking ties so entries sharing a page keep their
// source sequence.
func (d *DB) TOCs(ctx context.Context, bookID int64) ([]TOCRecord, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, book_id, type, name, page_number FROM tocs
		 WHERE book_id = ? ORDER BY page_number, id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("query tocs: %w", err)
	}
	defer rows.Close()

	var tocs []TOCRecord
	for rows.Next() {
		var t TOCRecord
		if err := rows.Scan(&t.ID, &t.BookID, &t.Type, &t.Name, &t.PageNumber); err != nil {
			return nil, fmt.Errorf("scan toc: %w", err)
		}
		tocs = append(tocs, t)
	}
	return tocs, rows.Err()
}

// PageRecord maps one occurrence of a numbered division to the
// physical page it starts on.
type PageRecord struct {
	Division   string
	PageNumber int
}

// Pages lists a book's division-to-page recordings in source order,
// ready to seed a page lookup.
func (d *DB) Pages(ctx context.Context, bookID int64) ([]PageRecord, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT paragraph, page_number FROM pages
		 WHERE book_id = ? ORDER BY id`, bookID)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	var pages []PageRecord
	for rows.Next() {
		var p PageRecord
		if err := rows.Scan(&p.Division, &p.PageNumber); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}
