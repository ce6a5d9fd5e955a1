package pipeline

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openpali/tipitaka-tools/internal/config"
	"github.com/openpali/tipitaka-tools/internal/links"
	"github.com/openpali/tipitaka-tools/internal/mdutil"
)

// untitled is the sentinel used while resolving a page title.
const untitled = "Untitled"

// CleanContent strips the legacy site chrome from a source page:
// breadcrumb lines, previous/next navigation links, then normalizes
// every internal link target relative to the book.
func CleanContent(content, bookSlug string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "[Home](/)") {
			continue
		}
		if strings.HasPrefix(line, "[Go to ") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(links.RewriteAll(strings.Join(kept, "\n"), bookSlug))
}

// pageTitle resolves a title for one page: the first level-1 heading,
// else the source file stem, with the book's full name overriding both
// for the book's root page.
func pageTitle(cleaned []byte, stem string, isRoot bool, book config.Book) string {
	if isRoot {
		return book.Name
	}
	if t := mdutil.ExtractTitle(cleaned); t != "" {
		return t
	}
	if stem != "" {
		return stem
	}
	return untitled
}

// stripLeadingTitle drops a leading `# title` line: the site renders
// the frontmatter title itself, so keeping the heading doubles it.
func stripLeadingTitle(content, title string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "# "+title {
		return strings.TrimLeft(strings.Join(lines[1:], "\n"), "\n")
	}
	return content
}

// substantialLoss reports whether cleaning dropped enough of a page's
// lines to warrant manual review. Chrome stripping accounts for a
// handful of lines per page; losing more than that and more than a
// fifth of the source points at content loss.
func substantialLoss(srcLines, keptLines int) bool {
	lost := srcLines - keptLines
	return lost > 8 && lost*5 > srcLines
}

// pageType discriminates generated canon pages from the site's other
// content collections.
const pageType = "tipitaka"

type sidebarMeta struct {
	Order int `yaml:"order"`
}

type frontmatter struct {
	Title           string      `yaml:"title"`
	TableOfContents bool        `yaml:"tableOfContents"`
	Sidebar         sidebarMeta `yaml:"sidebar"`
	Type            string      `yaml:"type"`
	Basket          string      `yaml:"basket"`
	Book            string      `yaml:"book,omitempty"`
	Refs            []string    `yaml:"refs,omitempty"`
	Page            int         `yaml:"page,omitempty"`
}

// pageFrontmatter fills the fixed-shape header for one generated page.
// The in-page table of contents stays disabled: canon pages carry no
// intermediate headings for the site to index.
func pageFrontmatter(title string, order int, book config.Book) frontmatter {
	return frontmatter{
		Title:   title,
		Sidebar: sidebarMeta{Order: order},
		Type:    pageType,
		Basket:  book.Basket,
		Book:    book.Code,
		Refs:    book.Refs,
	}
}

func encodeFrontmatter(fm frontmatter) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close frontmatter: %w", err)
	}
	buf.WriteString("---\n\n")
	return buf.Bytes(), nil
}

// assemblePage joins frontmatter, component imports and the body into
// the final page bytes.
func assemblePage(fm frontmatter, imports []string, body string) ([]byte, error) {
	head, err := encodeFrontmatter(fm)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Write(head)
	for _, imp := range imports {
		buf.WriteString(imp)
		buf.WriteByte('\n')
	}
	if len(imports) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
