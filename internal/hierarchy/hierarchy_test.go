package hierarchy

import "testing"

func entries(types ...EntryType) []Entry {
	out := make([]Entry, len(types))
	for i, t := range types {
		out[i] = Entry{Type: t, Name: t.String(), Page: i + 1}
	}
	return out
}

func TestBuildCounterReset(t *testing.T) {
	placed := Build(entries(Chapter, Title, Chapter, Title, Title), -1)

	wantCounters := []int{1, 1, 2, 1, 2}
	if len(placed) != len(wantCounters) {
		t.Fatalf("expected %d placements, got %d", len(wantCounters), len(placed))
	}
	for i, want := range wantCounters {
		if placed[i].Counter != want {
			t.Fatalf("entry %d: counter %d, want %d", i, placed[i].Counter, want)
		}
	}
}

func TestBuildSiblingsOfSameType(t *testing.T) {
	placed := Build(entries(Chapter, Subhead, Subhead), -1)

	if placed[1].Counter != 1 || placed[2].Counter != 2 {
		t.Fatalf("same-type entries should be siblings, got counters %d, %d",
			placed[1].Counter, placed[2].Counter)
	}
	if len(placed[2].Path) != 2 {
		t.Fatalf("second sibling path depth %d, want 2", len(placed[2].Path))
	}
}

func TestBuildShallowerEntryClosesSkippedLevels(t *testing.T) {
	placed := Build(entries(Chapter, Subhead, Subhead, Title), -1)

	// The title is shallower than the subheads, so it must close both
	// and attach directly under the chapter.
	last := placed[3]
	if len(last.Path) != 2 {
		t.Fatalf("title path depth %d, want 2", len(last.Path))
	}
	if last.Path[0].Type != Chapter || last.Path[1].Type != Title {
		t.Fatalf("title path types wrong: %+v", last.Path)
	}
}

func TestBuildMaxLevelTruncation(t *testing.T) {
	placed := Build(entries(Chapter, Title, Subhead, Chapter, Title), 0)

	if len(placed) != 2 {
		t.Fatalf("maxLevel=0 should keep only chapters, got %d placements", len(placed))
	}
	for i, p := range placed {
		if p.Entry.Type != Chapter {
			t.Fatalf("placement %d is %s, want chapter", i, p.Entry.Type)
		}
		if len(p.Path) != 1 {
			t.Fatalf("placement %d path depth %d, want 1", i, len(p.Path))
		}
	}
	if placed[1].Counter != 2 {
		t.Fatalf("second chapter counter %d, want 2", placed[1].Counter)
	}
}

func TestBuildSkippedTypesConsumeNothing(t *testing.T) {
	placed := Build(entries(Chapter, Subsubhead, Title), 1)

	if len(placed) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placed))
	}
	if placed[1].Entry.Type != Title || placed[1].Counter != 1 {
		t.Fatalf("title placement wrong: %+v", placed[1])
	}
}

func TestBuildEmptyInput(t *testing.T) {
	if got := Build(nil, -1); len(got) != 0 {
		t.Fatalf("expected empty result, got %d placements", len(got))
	}
}

func TestBuildDeepPathCopy(t *testing.T) {
	placed := Build(entries(Chapter, Title, Title), -1)

	// Paths must be independent copies: the second title must not have
	// overwritten the first title's recorded path.
	first := placed[1].Path
	if first[len(first)-1].Counter != 1 {
		t.Fatalf("first title path mutated: %+v", first)
	}
	second := placed[2].Path
	if second[len(second)-1].Counter != 2 {
		t.Fatalf("second title path wrong: %+v", second)
	}
}

func TestParseEntryType(t *testing.T) {
	for i, name := range []string{"chapter", "title", "subhead", "subsubhead", "subsubhead-head"} {
		got, ok := ParseEntryType(name)
		if !ok || got != EntryType(i) {
			t.Fatalf("ParseEntryType(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseEntryType("verse"); ok {
		t.Fatal("unknown type should not parse")
	}
}
