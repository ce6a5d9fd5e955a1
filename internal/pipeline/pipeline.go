// Package pipeline orchestrates the migration: it fans out across
// target locales, walks each book's legacy sources, and drives the
// clean/render/transliterate/materialize chain.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/openpali/tipitaka-tools/internal/config"
	"github.com/openpali/tipitaka-tools/internal/dal"
	"github.com/openpali/tipitaka-tools/internal/mdutil"
	"github.com/openpali/tipitaka-tools/internal/render"
	"github.com/openpali/tipitaka-tools/internal/sidebar"
	"github.com/openpali/tipitaka-tools/internal/storage"
	"github.com/openpali/tipitaka-tools/internal/translit"
)

// sourceScript is the script the markdown corpus is stored in.
const sourceScript = "IASTPali"

// failureSamples caps how many failure lines the run summary repeats.
const failureSamples = 5

type Runner struct {
	Config  *config.Config
	Storage *storage.FSStorage
	Process translit.ProcessFunc
	Logger  *slog.Logger

	// DB is optional page-position data; when present, rendered
	// divisions carry physical page attributes.
	DB *dal.DB

	mu       sync.Mutex
	statuses []LocaleStatus
	failures [][]string

	// rawCache holds source file contents so the locale goroutines read
	// each file from disk once instead of once per locale.
	readMu   sync.Mutex
	rawCache map[string][]byte
}

// readSource returns a source file's bytes, reading it at most once
// across all locales. Read failures are not cached.
func (r *Runner) readSource(path string) ([]byte, error) {
	r.readMu.Lock()
	defer r.readMu.Unlock()
	if data, ok := r.rawCache[path]; ok {
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if r.rawCache == nil {
		r.rawCache = make(map[string][]byte)
	}
	r.rawCache[path] = data
	return data, nil
}

// localeContext holds everything one locale's goroutine touches.
// Nothing in here is shared across locales: each gets its own
// converter cache and its own batch writer.
type localeContext struct {
	idx       int
	locale    string
	converter *translit.Converter
	writer    *storage.BatchWriter
	runner    *Runner
}

// Run migrates the listed books (all books when the filter is empty)
// into every target locale, then writes the navigation module. An
// unknown locale or book reference is fatal before any work starts.
func (r *Runner) Run(ctx context.Context, locales []string, bookRefs []string) error {
	if r.Config == nil || r.Storage == nil || r.Process == nil {
		return errors.New("pipeline runner missing dependencies")
	}
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
	if len(locales) == 0 {
		locales = r.Config.Locales
	}
	for _, locale := range locales {
		if !config.IsLocale(locale) {
			return fmt.Errorf("unknown locale %q (valid: %s)", locale, strings.Join(config.Locales, ", "))
		}
	}
	books, err := resolveBooks(bookRefs)
	if err != nil {
		return err
	}

	r.statuses = make([]LocaleStatus, len(locales))
	r.failures = make([][]string, len(locales))
	for i, locale := range locales {
		r.statuses[i] = LocaleStatus{Locale: locale, Stage: "waiting", Total: len(books)}
		if err := r.Storage.ClearLocale(locale); err != nil {
			return err
		}
	}

	pages, err := r.loadPageLookups(ctx, books)
	if err != nil {
		return err
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i, locale := range locales {
		lc := &localeContext{
			idx:       i,
			locale:    locale,
			converter: translit.NewConverter(sourceScript, r.Process, r.Logger.With("locale", locale)),
			writer:    storage.NewBatchWriter(r.Storage, r.Config.BatchSize, r.Logger.With("locale", locale)),
			runner:    r,
		}
		g.Go(func() error {
			return lc.run(gctx, books, pages, start)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := r.writeNavigation(books); err != nil {
		r.Logger.Error("navigation module not written", "error", err)
	}
	r.summarize(start)
	return nil
}

// resolveBooks maps reference strings to the book table, defaulting to
// every book in volume order.
func resolveBooks(refs []string) ([]config.Book, error) {
	if len(refs) == 0 {
		var books []config.Book
		for _, code := range config.SortedCodes() {
			b, _ := config.BookByCode(code)
			books = append(books, b)
		}
		return books, nil
	}
	var books []config.Book
	seen := make(map[string]bool)
	for _, ref := range refs {
		b, ok := config.BookForRef(ref)
		if !ok {
			return nil, fmt.Errorf("unknown book reference %q", ref)
		}
		if !seen[b.Code] {
			seen[b.Code] = true
			books = append(books, b)
		}
	}
	sort.SliceStable(books, func(i, j int) bool { return books[i].Volume() < books[j].Volume() })
	return books, nil
}

// loadPageLookups seeds one page lookup per book from the optional
// database. Lookups are read-only after this point; each locale resets
// a private copy's cursors via book-scoped rebuilds instead of sharing
// cursor state, so the map values here hold the raw recordings.
func (r *Runner) loadPageLookups(ctx context.Context, books []config.Book) (map[string][]dal.PageRecord, error) {
	if r.DB == nil {
		return nil, nil
	}
	recs, err := r.DB.Books(ctx, "")
	if err != nil {
		return nil, err
	}
	byCode := make(map[string]int64)
	for _, rec := range recs {
		byCode[rec.Code] = rec.ID
	}
	lookups := make(map[string][]dal.PageRecord)
	for _, book := range books {
		id, ok := byCode[book.Code]
		if !ok {
			continue
		}
		pages, err := r.DB.Pages(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(pages) > 0 {
			lookups[book.Code] = pages
		}
	}
	return lookups, nil
}

func (lc *localeContext) run(ctx context.Context, books []config.Book, pages map[string][]dal.PageRecord, start time.Time) error {
	r := lc.runner
	r.setStage(lc.idx, "processing")

	workers := r.Config.Workers
	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, book := range books {
		g.Go(func() error {
			err := lc.migrateBook(gctx, book, pages[book.Code])
			if err != nil {
				var be *BookError
				if errors.As(err, &be) {
					r.recordFailure(lc.idx, be.Book, be.Unwrap())
					err = nil
				}
			}
			r.bookDone(lc.idx, lc.locale, start)
			return err
		})
	}
	err := g.Wait()
	lc.writer.Flush()

	written, skipped, failed := lc.writer.Stats()
	r.mu.Lock()
	r.statuses[lc.idx].Written = written
	r.statuses[lc.idx].Skipped = skipped
	r.statuses[lc.idx].Errors += failed
	r.statuses[lc.idx].Stage = "done"
	r.mu.Unlock()

	r.Logger.Info("locale done", "locale", lc.locale,
		"written", written, "skipped", skipped, "failed", failed,
		"cached", lc.converter.CacheLen())
	return err
}

// migrateBook walks one book: the root file becomes the book's index
// page, then the book directory is walked recursively. A panic inside
// one book is contained and reported as that book's failure.
func (lc *localeContext) migrateBook(ctx context.Context, book config.Book, pages []dal.PageRecord) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &BookError{Book: book.Code, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()
	if err := ctx.Err(); err != nil {
		return err
	}

	lookup := render.NewPageLookup()
	for _, p := range pages {
		lookup.Record(p.Division, p.PageNumber)
	}
	renderer := &render.Renderer{Book: book, Pages: lookup}

	srcRoot := lc.runner.Config.SourceDir
	rootFile := filepath.Join(srcRoot, book.Code+".md")
	var rootLinks []mdutil.Link
	if data, err := lc.runner.readSource(rootFile); err == nil {
		rootLinks = mdutil.ListLinks(data)
		if err := lc.migrateFile(data, book, renderer, "", true, 1); err != nil {
			return &BookError{Book: book.Code, Err: err}
		}
	} else if !os.IsNotExist(err) {
		return &BookError{Book: book.Code, Err: err}
	}

	bookDir := filepath.Join(srcRoot, book.Code)
	if _, err := os.Stat(bookDir); os.IsNotExist(err) {
		return nil
	}
	if err := lc.migrateDir(ctx, bookDir, book, renderer, "", rootLinks); err != nil {
		return &BookError{Book: book.Code, Err: err}
	}
	return nil
}

// migrateDir recursively migrates a source directory. Entries follow
// the order the parent page links them in; anything the parent does
// not mention sorts after, in natural numeric order.
func (lc *localeContext) migrateDir(ctx context.Context, dir string, book config.Book, renderer *render.Renderer, relPath string, parentLinks []mdutil.Link) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read source dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	byName := make(map[string]os.DirEntry, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
			byName[e.Name()] = e
		}
	}
	orderNames(names, parentLinks)

	order := 1
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry := byName[name]
		full := filepath.Join(dir, name)
		if entry.IsDir() {
			childRel := joinRel(relPath, name)
			data, _ := lc.runner.readSource(full + ".md")
			if err := lc.migrateDir(ctx, full, book, renderer, childRel, mdutil.ListLinks(data)); err != nil {
				return err
			}
			continue
		}
		data, err := lc.runner.readSource(full)
		if err != nil {
			lc.runner.Logger.Warn("unreadable source file", "path", full, "error", err)
			continue
		}
		if err := lc.migrateFile(data, book, renderer, joinRel(relPath, name), false, order); err != nil {
			return err
		}
		order++
	}
	return nil
}

// migrateFile runs the clean/render/transliterate chain for one source
// file and queues the result for writing.
func (lc *localeContext) migrateFile(data []byte, book config.Book, renderer *render.Renderer, relPath string, isRoot bool, order int) error {
	cleaned := CleanContent(string(data), book.Abbrev)
	if cleaned == "" {
		return nil
	}

	// Only chrome lines may be dropped during cleaning; the identity
	// locale carries the source text unchanged, so a large shortfall
	// there means real content was lost.
	if scheme, ok := config.SchemeFor(sourceScript, lc.locale); ok && scheme.Identity() {
		src := strings.Count(string(data), "\n") + 1
		kept := strings.Count(cleaned, "\n") + 1
		if substantialLoss(src, kept) {
			lc.runner.Logger.Warn("cleaned page lost a substantial share of source lines",
				"locale", lc.locale, "book", book.Code, "path", relPath, "source", src, "kept", kept)
		}
	}

	stem := ""
	if relPath != "" {
		stem = strings.TrimSuffix(filepath.Base(relPath), ".md")
	}
	title := pageTitle([]byte(cleaned), stem, isRoot, book)
	cleaned = stripLeadingTitle(cleaned, title)

	res := renderer.Render(cleaned)
	body := lc.converter.Convert(res.Body, lc.locale)
	title = lc.converter.Convert(title, lc.locale)

	// Script conversion is line-preserving; a changed line count means
	// a segment got mangled.
	if got, want := strings.Count(body, "\n"), strings.Count(res.Body, "\n"); got != want {
		lc.runner.Logger.Warn("conversion changed line count",
			"locale", lc.locale, "book", book.Code, "path", relPath, "got", got, "want", want)
	}

	page, err := assemblePage(pageFrontmatter(title, order, book), res.Imports, body)
	if err != nil {
		return err
	}
	lc.writer.Enqueue(destPath(lc.locale, book, relPath, isRoot), page)
	return nil
}

// destPath maps a source-relative path to the output layout:
// <locale>/tipitaka/<basket>/<category...>/<abbrev>/<slugged path>.mdx
func destPath(locale string, book config.Book, relPath string, isRoot bool) string {
	segs := append([]string{locale}, book.PathSegments()...)
	if isRoot {
		return strings.Join(append(segs, "index.mdx"), "/")
	}
	parts := strings.Split(relPath, "/")
	for i, p := range parts {
		parts[i] = slugSegment(p)
	}
	parts[len(parts)-1] += ".mdx"
	return strings.Join(append(segs, parts...), "/")
}

func slugSegment(name string) string {
	name = strings.TrimSuffix(name, ".md")
	return strings.ReplaceAll(strings.ToLower(name), ".", "-")
}

func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}

// orderNames sorts entries by the parent's link order first, natural
// numeric order for the rest.
func orderNames(names []string, parentLinks []mdutil.Link) {
	rank := make(map[string]int, len(parentLinks))
	for i, l := range parentLinks {
		target := strings.TrimSuffix(strings.ToLower(l.Target), ".md")
		if _, ok := rank[target]; !ok {
			rank[target] = i
		}
	}
	c := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(names, func(i, j int) bool {
		ri, iok := rank[slugSegment(names[i])]
		rj, jok := rank[slugSegment(names[j])]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		default:
			return c.CompareString(names[i], names[j]) < 0
		}
	})
}

// writeNavigation assembles the sidebar from the default locale's
// converter and points every migrated book at its index page.
func (r *Runner) writeNavigation(books []config.Book) error {
	if r.Config.NavFile == "" {
		return nil
	}
	links := make(map[string]string, len(books))
	for _, book := range books {
		links[book.Code] = strings.Join(book.PathSegments(), "/")
	}
	tr := translit.NewConverter(sourceScript, r.Process, r.Logger)
	root := sidebar.Build(r.Config.DefaultLocale, tr, links)
	return sidebar.WriteNavigation(r.Config.NavFile, root)
}

func (r *Runner) setStage(idx int, stage string) {
	r.mu.Lock()
	r.statuses[idx].Stage = stage
	r.mu.Unlock()
}

// bookDone advances a locale's progress and logs percentage, rate and
// projected time remaining.
func (r *Runner) bookDone(idx int, locale string, start time.Time) {
	r.mu.Lock()
	r.statuses[idx].Done++
	done, total := r.statuses[idx].Done, r.statuses[idx].Total
	r.mu.Unlock()

	elapsed := time.Since(start)
	rate := float64(done) / elapsed.Seconds()
	var eta time.Duration
	if rate > 0 {
		eta = time.Duration(float64(total-done)/rate) * time.Second
	}
	r.Logger.Info("progress", "locale", locale,
		"done", done, "total", total,
		"pct", fmt.Sprintf("%.0f%%", float64(done)*100/float64(total)),
		"rate", fmt.Sprintf("%.1f books/s", rate),
		"eta", eta.Round(time.Second))
}

func (r *Runner) recordFailure(idx int, book string, err error) {
	r.mu.Lock()
	r.statuses[idx].Errors++
	r.failures[idx] = append(r.failures[idx], fmt.Sprintf("%s: %v", book, err))
	locale := r.statuses[idx].Locale
	r.mu.Unlock()
	r.Logger.Error("book failed", "locale", locale, "book", book, "error", err)
}

// Statuses returns a snapshot of per-locale progress.
func (r *Runner) Statuses() []LocaleStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]LocaleStatus, len(r.statuses))
	copy(out, r.statuses)
	return out
}

func (r *Runner) summarize(start time.Time) {
	var failures []string
	var errCount int
	r.mu.Lock()
	for _, fs := range r.failures {
		failures = append(failures, fs...)
	}
	for _, s := range r.statuses {
		errCount += s.Errors
	}
	r.mu.Unlock()

	r.Logger.Info("migration complete", "elapsed", time.Since(start).Round(time.Second), "errors", errCount)
	for i, f := range failures {
		if i == failureSamples {
			r.Logger.Warn("further failures omitted", "count", len(failures)-failureSamples)
			break
		}
		r.Logger.Warn("failure", "detail", f)
	}
}
