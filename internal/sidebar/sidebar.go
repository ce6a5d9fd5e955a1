// Package sidebar assembles the navigation tree for the generated
// site and writes it out as an importable JS module.
package sidebar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openpali/tipitaka-tools/internal/config"
)

// Node is one sidebar entry. Exactly one of Link, Autogenerate or
// Items is set on any node the builder produces: a leaf pointing at a
// page, a directory the site expands on its own, or an explicit group.
type Node struct {
	Label        string            `json:"label"`
	Translations map[string]string `json:"translations,omitempty"`
	Collapsed    bool              `json:"collapsed,omitempty"`
	Link         string            `json:"link,omitempty"`
	Autogenerate *Autogenerate     `json:"autogenerate,omitempty"`
	Items        []*Node           `json:"items,omitempty"`
}

type Autogenerate struct {
	Directory string `json:"directory"`
}

// Translator renders a Pāli name into a locale's script. The
// transliteration converter satisfies this.
type Translator interface {
	Convert(text, locale string) string
}

// Build assembles the full tree: root, baskets, sub-basket groups,
// then one node per book. Group headings use the static label tables;
// book labels are transliterated into every locale, with the primary
// locale's rendering as the display label. links overrides a book's
// node to point at a concrete page instead of an autogenerated
// directory, keyed by book code.
func Build(primary string, tr Translator, links map[string]string) *Node {
	root := groupNode(config.RootLabel, tr)
	for _, basket := range []string{config.BasketVinaya, config.BasketSutta, config.BasketAbhidhamma} {
		basketNode := groupNode(config.BasketLabels[basket], tr)
		for _, category := range config.CategoryOrder[basket] {
			books := booksIn(basket, category)
			if len(books) == 0 {
				continue
			}
			parent := basketNode
			if category != "" {
				label, ok := config.CategoryLabels[category]
				if !ok {
					label = config.GroupLabel{Label: category}
				}
				group := groupNode(label, tr)
				basketNode.Items = append(basketNode.Items, group)
				parent = group
			}
			for _, book := range books {
				parent.Items = append(parent.Items, bookNode(book, primary, tr, links[book.Code]))
			}
		}
		root.Items = append(root.Items, basketNode)
	}
	return root
}

// groupNode builds a heading node. Groups without a conventional
// static spelling table fall back to mechanical transliteration of the
// label, the same way book names are rendered.
func groupNode(label config.GroupLabel, tr Translator) *Node {
	translations := label.Translations
	if translations == nil {
		translations = translationsFor(label.Label, tr)
	}
	return &Node{
		Label:        label.Label,
		Translations: translations,
		Collapsed:    true,
	}
}

// translationsFor renders a name into every locale, keyed by the
// BCP-47 language code the site expects in translation maps.
func translationsFor(name string, tr Translator) map[string]string {
	translations := make(map[string]string, len(config.Locales))
	for _, locale := range config.Locales {
		translations[config.LanguageCodes[locale]] = tr.Convert(name, locale)
	}
	return translations
}

func bookNode(book config.Book, primary string, tr Translator, link string) *Node {
	translations := translationsFor(book.Name, tr)
	n := &Node{
		Label:        tr.Convert(book.Name, primary),
		Translations: translations,
		Collapsed:    true,
	}
	if link != "" {
		n.Link = link
		return n
	}
	n.Autogenerate = &Autogenerate{Directory: strings.Join(book.PathSegments(), "/")}
	return n
}

func booksIn(basket, category string) []config.Book {
	var books []config.Book
	for _, b := range config.BooksInBasket(basket) {
		if b.Category == category {
			books = append(books, b)
		}
	}
	return books
}

// WriteNavigation serializes the tree as `export const sidebar = …;`
// so the site imports it directly.
func WriteNavigation(path string, root *Node) error {
	var buf bytes.Buffer
	buf.WriteString("export const sidebar = ")
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode([]*Node{root}); err != nil {
		return fmt.Errorf("encode sidebar: %w", err)
	}
	// Encode appends a newline; the statement terminator goes before it.
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, ';', '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("navigation dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write navigation: %w", err)
	}
	return nil
}
