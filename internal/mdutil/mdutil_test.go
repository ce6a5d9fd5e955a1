package mdutil

import "testing"

func TestExtractTitle(t *testing.T) {
	src := []byte("intro line\n\n# Pārājikapāḷi\n\n## Section\n")
	if got := ExtractTitle(src); got != "Pārājikapāḷi" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTitleStripsInlineMarkup(t *testing.T) {
	src := []byte("# **Verañjakaṇḍa** suttaṃ\n")
	if got := ExtractTitle(src); got != "Verañjakaṇḍa suttaṃ" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTitleMissing(t *testing.T) {
	if got := ExtractTitle([]byte("no headings here\n")); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}

func TestListLinks(t *testing.T) {
	src := []byte("* [One](1V/1.md)\n* [Two](1V/2.md)\n\nSee [Three](3.md).\n")
	got := ListLinks(src)
	if len(got) != 3 {
		t.Fatalf("expected 3 links, got %d: %+v", len(got), got)
	}
	if got[0].Text != "One" || got[0].Target != "1V/1.md" {
		t.Fatalf("first link wrong: %+v", got[0])
	}
	if got[2].Target != "3.md" {
		t.Fatalf("third link wrong: %+v", got[2])
	}
}
