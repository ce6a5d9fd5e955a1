// Package translit adapts an external script-conversion function for use
// on marked-up Pāli text. The converter itself is a black box; this
// package's job is to make sure it only ever sees runs of convertible
// letters, never numerals, punctuation, component tags, or markdown
// link targets.
package translit

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/openpali/tipitaka-tools/internal/config"
)

// ProcessFunc is the external transliteration entry point,
// process(fromScript, toScript, text). It may fail per call; failures
// are recovered by substituting the original segment.
type ProcessFunc func(from, to, text string) (string, error)

// Converter transliterates text into configured target locales. One
// Converter (and its cache) belongs to exactly one locale context and is
// never shared across the outer locale fan-out.
type Converter struct {
	sourceScript string
	process      ProcessFunc
	cache        *Cache
	logger       *slog.Logger
}

var (
	// passThroughPattern matches runs the converter must never see:
	// digit runs and runs of anything outside the letter classes Pāli
	// romanizations use — ASCII, Latin-1 letters (ñ, excluding the
	// multiplication and division signs), Extended-A macron vowels and
	// Extended Additional underdot consonants.
	passThroughPattern = regexp.MustCompile(`[0-9]+|[^0-9A-Za-z_\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{00FF}\x{0100}-\x{017F}\x{1E00}-\x{1EFF}]+`)

	// componentTagPattern matches a structural component tag, opening
	// or closing, including its attributes.
	componentTagPattern = regexp.MustCompile(`</?[A-Z][A-Za-z]*(?:\s[^>]*)?>`)

	// linkTargetPattern captures the destination of a markdown link so
	// it can be swapped for a placeholder before conversion.
	linkTargetPattern = regexp.MustCompile(`\]\(([^)]*)\)`)
)

// NewConverter builds a converter for text stored in sourceScript
// ("IASTPali" for the markdown corpus, "Burmese" for the relational one).
func NewConverter(sourceScript string, process ProcessFunc, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		sourceScript: sourceScript,
		process:      process,
		cache:        NewCache(DefaultCacheLimit),
		logger:       logger,
	}
}

// CacheLen exposes the cache size for run summaries.
func (c *Converter) CacheLen() int { return c.cache.Len() }

// Convert renders text in the given locale. The identity locale returns
// input unchanged without consulting the external converter. Conversion
// never fails: any converter error degrades to the original text.
func (c *Converter) Convert(text, locale string) string {
	if text == "" {
		return text
	}
	scheme, ok := config.SchemeFor(c.sourceScript, locale)
	if !ok || scheme.Identity() {
		return text
	}
	if cached, hit := c.cache.Get(text, locale); hit {
		return cached
	}

	protected, spans := protectMarkup(text)
	converted := c.convertSegments(protected, scheme)
	for _, corr := range scheme.Corrections {
		converted = strings.ReplaceAll(converted, corr.From, corr.To)
	}
	result := restoreMarkup(converted, spans)

	c.cache.Put(text, locale, result)
	return result
}

// convertSegments feeds only transliterable runs to the external
// converter, keeping pass-through runs verbatim.
func (c *Converter) convertSegments(text string, scheme config.Scheme) string {
	var b strings.Builder
	b.Grow(len(text) * 2)

	last := 0
	for _, loc := range passThroughPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			b.WriteString(c.convertOne(text[last:loc[0]], scheme))
		}
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		b.WriteString(c.convertOne(text[last:], scheme))
	}
	return b.String()
}

func (c *Converter) convertOne(segment string, scheme config.Scheme) string {
	if strings.TrimSpace(segment) == "" {
		return segment
	}
	out, err := c.process(scheme.From, scheme.To, segment)
	if err != nil {
		c.logger.Warn("transliteration failed, keeping original segment",
			"locale", scheme.Locale, "segment", truncate(segment, 30), "error", err)
		return segment
	}
	return out
}

// protectMarkup swaps every component tag and markdown link destination
// for a placeholder built from NUL bytes and digits, both of which the
// segmenter classifies as pass-through. Tag content between an opening
// and closing tag stays convertible.
func protectMarkup(text string) (string, []string) {
	var spans []string
	hide := func(s string) string {
		spans = append(spans, s)
		return fmt.Sprintf("\x00%d\x00", len(spans)-1)
	}
	protected := componentTagPattern.ReplaceAllStringFunc(text, hide)
	protected = linkTargetPattern.ReplaceAllStringFunc(protected, func(m string) string {
		sub := linkTargetPattern.FindStringSubmatch(m)
		return "](" + hide(sub[1]) + ")"
	})
	return protected, spans
}

func restoreMarkup(text string, spans []string) string {
	for i, span := range spans {
		text = strings.Replace(text, fmt.Sprintf("\x00%d\x00", i), span, 1)
	}
	return text
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
