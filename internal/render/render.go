package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/openpali/tipitaka-tools/internal/config"
)

// editionCode tags every division with the printed edition the page
// numbers refer to.
const editionCode = "vri"

// Result carries the transformed body plus the import lines the
// component tags require.
type Result struct {
	Imports    []string
	Body       string
	Divisions  int
	Paragraphs int
}

// Renderer turns one book's legacy markdown into component markup.
// Pages may be nil when no page data exists for the book.
type Renderer struct {
	Book  config.Book
	Pages *PageLookup
}

var boldSpan = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// Render rewrites a markdown body: division and paragraph markers
// become wrapper tags with computed attributes, short and liturgical
// lines are centered, verse blocks are flagged, and the contents
// block (if any) is re-seated after the opening homage.
func (r *Renderer) Render(body string) Result {
	tokens, toc := tokenize(body)

	st := &emitter{book: r.Book, pages: r.Pages}
	for i, tok := range tokens {
		switch tok.kind {
		case tokSeparator:
			st.closeParagraph()
			st.closeDivision()
		case tokDivision:
			st.closeParagraph()
			st.closeDivision()
			st.openDivision(tok.num)
		case tokParagraph:
			st.closeParagraph()
			st.beginParagraph(tok.num, tok.text)
		case tokHeading:
			st.closeParagraph()
			st.heading(tok)
		case tokTocBlock:
			st.closeParagraph()
		case tokBlank:
			if st.para != nil && !terminatesAfterBlank(tokens, i) {
				st.para.lines = append(st.para.lines, tok.raw)
			} else {
				st.closeParagraph()
				st.out = append(st.out, tok.raw)
			}
		case tokText:
			if st.para != nil {
				st.para.lines = append(st.para.lines, tok.raw)
			} else {
				st.standalone(tok.raw)
			}
		}
	}
	st.closeParagraph()
	st.closeDivision()

	out := st.out
	if len(toc) > 0 {
		out = insertTocBlock(out, toc)
	}

	rendered := strings.Join(out, "\n")
	rendered = boldSpan.ReplaceAllString(rendered, "<Emph>$1</Emph>")

	res := Result{
		Body:       rendered,
		Divisions:  st.divisions,
		Paragraphs: st.paragraphs,
	}
	if st.divisions > 0 || st.paragraphs > 0 {
		res.Imports = append(res.Imports,
			"import Division from '@components/Division.astro';",
			"import Paragraph from '@components/Paragraph.astro';",
			"import Emph from '@components/Emph.astro';",
		)
	}
	if len(toc) > 0 {
		res.Imports = append(res.Imports, "import Toc from '@components/Toc.astro';")
	}
	return res
}

// terminatesAfterBlank reports whether the token after a blank line
// is a construct that closes an open paragraph, so the blank belongs
// between blocks rather than inside the paragraph.
func terminatesAfterBlank(tokens []token, i int) bool {
	for j := i + 1; j < len(tokens); j++ {
		switch tokens[j].kind {
		case tokBlank:
			continue
		case tokDivision, tokParagraph, tokSeparator, tokHeading, tokTocBlock:
			return true
		default:
			return false
		}
	}
	return true
}

type paraState struct {
	num   string
	lines []string
}

type emitter struct {
	book  config.Book
	pages *PageLookup

	out        []string
	para       *paraState
	inDivision bool
	divisions  int
	paragraphs int
}

func (e *emitter) openDivision(num string) {
	attrs := fmt.Sprintf(`number=%q book=%q edition=%q volume=%q`,
		num, e.book.Abbrev, editionCode, strconv.Itoa(e.book.Volume()))
	if e.pages != nil {
		if page, ok := e.pages.Next(num); ok {
			attrs += fmt.Sprintf(` page=%q`, strconv.Itoa(page))
		}
	}
	e.out = append(e.out, "<Division "+attrs+">")
	e.inDivision = true
	e.divisions++
}

func (e *emitter) closeDivision() {
	if !e.inDivision {
		return
	}
	e.out = append(e.out, "</Division>")
	e.inDivision = false
}

func (e *emitter) beginParagraph(num, first string) {
	e.para = &paraState{num: num, lines: []string{first}}
}

func (e *emitter) closeParagraph() {
	if e.para == nil {
		return
	}
	lines := trimBlankTail(e.para.lines)
	kind := "normal"
	switch {
	case isVerseBlock(lines):
		kind = "verses"
	case shouldCenter(strings.Join(lines, "\n"), e.inDivision):
		kind = "centered"
	}
	e.out = append(e.out, fmt.Sprintf(`<Paragraph number=%q type=%q>`, e.para.num, kind))
	e.out = append(e.out, lines...)
	e.out = append(e.out, "</Paragraph>")
	e.para = nil
	e.paragraphs++
}

// heading renders numbered headings as forced centered paragraphs;
// prose headings pass through as markdown.
func (e *emitter) heading(tok token) {
	if !numberedHeading.MatchString(tok.text) {
		e.out = append(e.out, tok.raw)
		return
	}
	e.out = append(e.out,
		`<Paragraph type="centered">`,
		"**"+tok.text+"**",
		"</Paragraph>")
	e.paragraphs++
}

// standalone handles a bare text line outside any paragraph: set-apart
// lines get their own centered wrapper, everything else is kept as-is.
func (e *emitter) standalone(raw string) {
	trimmed := strings.TrimSpace(raw)
	if !isVerseLine(trimmed) && shouldCenter(trimmed, e.inDivision) {
		e.out = append(e.out,
			`<Paragraph type="centered">`,
			trimmed,
			"</Paragraph>")
		e.paragraphs++
		return
	}
	e.out = append(e.out, raw)
}

func trimBlankTail(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// insertTocBlock seats the extracted contents after the paragraph
// holding the opening homage, or at the end when no homage exists.
func insertTocBlock(out []string, items []tocItem) []string {
	block := make([]string, 0, len(items)+2)
	block = append(block, "<Toc>")
	for _, it := range items {
		block = append(block, it.raw)
	}
	block = append(block, "</Toc>")

	at := -1
	for i, line := range out {
		if strings.Contains(line, invocationAnchor) {
			for j := i; j < len(out); j++ {
				if strings.HasPrefix(strings.TrimSpace(out[j]), "</Paragraph>") {
					at = j + 1
					break
				}
			}
			break
		}
	}
	if at == -1 {
		return append(out, block...)
	}
	merged := make([]string, 0, len(out)+len(block))
	merged = append(merged, out[:at]...)
	merged = append(merged, block...)
	merged = append(merged, out[at:]...)
	return merged
}
