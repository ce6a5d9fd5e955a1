package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/openpali/tipitaka-tools/internal/config"
	"github.com/openpali/tipitaka-tools/internal/dal"
	"github.com/openpali/tipitaka-tools/internal/hierarchy"
	"github.com/openpali/tipitaka-tools/internal/sidebar"
	"github.com/openpali/tipitaka-tools/internal/storage"
	"github.com/openpali/tipitaka-tools/internal/translit"
)

// dbSourceScript is the script the relational corpus is stored in.
const dbSourceScript = "Burmese"

// TreeBuilder generates the per-locale directory skeleton from the
// relational corpus: every contents entry becomes a numbered
// directory or leaf page carrying title, order and page frontmatter.
type TreeBuilder struct {
	DB      *dal.DB
	Config  *config.Config
	Storage *storage.FSStorage
	Process translit.ProcessFunc
	Logger  *slog.Logger
}

// Run builds the tree for every listed locale. MaxLevel in the config
// truncates the hierarchy; nil means all levels.
func (b *TreeBuilder) Run(ctx context.Context, locales []string) error {
	if b.DB == nil || b.Config == nil || b.Storage == nil || b.Process == nil {
		return errors.New("tree builder missing dependencies")
	}
	if b.Logger == nil {
		b.Logger = slog.Default()
	}
	if len(locales) == 0 {
		locales = b.Config.Locales
	}
	for _, locale := range locales {
		if !config.IsLocale(locale) {
			return fmt.Errorf("unknown locale %q (valid: %s)", locale, strings.Join(config.Locales, ", "))
		}
	}

	records, err := b.DB.Books(ctx, "mula")
	if err != nil {
		return err
	}
	type dbBook struct {
		rec  dal.BookRecord
		book config.Book
	}
	var books []dbBook
	for _, rec := range records {
		book, ok := config.BookForRef(rec.Code)
		if !ok {
			b.Logger.Warn("book record has no table entry", "code", rec.Code)
			continue
		}
		books = append(books, dbBook{rec: rec, book: book})
	}

	maxLevel := -1
	if b.Config.MaxLevel != nil {
		maxLevel = *b.Config.MaxLevel
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, locale := range locales {
		conv := translit.NewConverter(dbSourceScript, b.Process, b.Logger.With("locale", locale))
		writer := storage.NewBatchWriter(b.Storage, b.Config.BatchSize, b.Logger.With("locale", locale))
		g.Go(func() error {
			for _, db := range books {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := b.buildBook(gctx, locale, conv, writer, db.rec, db.book, maxLevel); err != nil {
					b.Logger.Error("book skipped", "locale", locale, "book", db.book.Code, "error", err)
				}
			}
			writer.Flush()
			written, skipped, failed := writer.Stats()
			b.Logger.Info("locale done", "locale", locale,
				"written", written, "skipped", skipped, "failed", failed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if b.Config.NavFile != "" {
		tr := translit.NewConverter(dbSourceScript, b.Process, b.Logger)
		root := sidebar.Build(b.Config.DefaultLocale, tr, nil)
		if err := sidebar.WriteNavigation(b.Config.NavFile, root); err != nil {
			return err
		}
	}
	return nil
}

// buildBook places one book's contents entries into the hierarchy and
// materializes a numbered directory per branch node and a numbered
// page per leaf. Existing files are kept, so reruns only fill gaps.
func (b *TreeBuilder) buildBook(ctx context.Context, locale string, conv *translit.Converter, writer *storage.BatchWriter, rec dal.BookRecord, book config.Book, maxLevel int) error {
	tocs, err := b.DB.TOCs(ctx, rec.ID)
	if err != nil {
		return err
	}
	entries := make([]hierarchy.Entry, 0, len(tocs))
	for _, t := range tocs {
		typ, ok := hierarchy.ParseEntryType(t.Type)
		if !ok {
			continue
		}
		entries = append(entries, hierarchy.Entry{Type: typ, Name: t.Name, Page: t.PageNumber})
	}

	base := append([]string{locale}, book.PathSegments()...)
	for _, placed := range hierarchy.Build(entries, maxLevel) {
		segs := append([]string(nil), base...)
		for i, node := range placed.Path {
			last := i == len(placed.Path)-1
			name := conv.Convert(node.Name, locale)
			if last {
				segs = append(segs, strconv.Itoa(node.Counter)+".md")
				page, err := nodePage(name, node.Counter, node.Page, book)
				if err != nil {
					return err
				}
				writer.EnqueueIfAbsent(strings.Join(segs, "/"), page)
				continue
			}
			segs = append(segs, strconv.Itoa(node.Counter))
			page, err := nodePage(name, node.Counter, node.Page, book)
			if err != nil {
				return err
			}
			writer.EnqueueIfAbsent(strings.Join(append(segs, "index.md"), "/"), page)
		}
	}
	return nil
}

// nodePage renders the stub page for one hierarchy node.
func nodePage(name string, order, page int, book config.Book) ([]byte, error) {
	body := fmt.Sprintf("# %s\n\np. %d\n", name, page)
	fm := pageFrontmatter(name, order, book)
	fm.Page = page
	return assemblePage(fm, nil, body)
}
