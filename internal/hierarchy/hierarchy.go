// Package hierarchy reconstructs the nested structure of a book from its
// flat, page-ordered table-of-contents records. Nesting is derived only
// from the sequence of structural types: a deeper type opens a child, a
// shallower one closes every deeper ancestor.
package hierarchy

// EntryType is the structural type of a TOC record, ordered from
// shallowest to deepest.
type EntryType int

const (
	Chapter EntryType = iota
	Title
	Subhead
	Subsubhead
	SubsubheadHead
)

var typeNames = []string{"chapter", "title", "subhead", "subsubhead", "subsubhead-head"}

func (t EntryType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// ParseEntryType maps a stored type string onto its EntryType.
func ParseEntryType(s string) (EntryType, bool) {
	for i, name := range typeNames {
		if name == s {
			return EntryType(i), true
		}
	}
	return 0, false
}

// Entry is one TOC record as delivered by the record stream, already
// ordered by page number.
type Entry struct {
	Type EntryType
	Name string
	Page int
}

// Node is one placed hierarchy element. Counter is 1-based and scoped to
// (parent, type); Level is the node's depth index.
type Node struct {
	Type    EntryType
	Name    string
	Page    int
	Counter int
	Level   int
}

// Placed pairs an entry with its full root-to-node path. The path's
// counters determine the target directory layout.
type Placed struct {
	Entry   Entry
	Path    []Node
	Counter int
}

// Build places the ordered entries into a hierarchy. maxLevel truncates
// the recognized depth (0 keeps only chapters); a negative maxLevel keeps
// every level. Entries whose type falls outside the (possibly truncated)
// recognized list are skipped entirely: they consume no counters and
// produce no output. An empty input yields an empty result.
func Build(entries []Entry, maxLevel int) []Placed {
	depth := len(typeNames)
	if maxLevel >= 0 && maxLevel+1 < depth {
		depth = maxLevel + 1
	}

	counters := make([]int, depth)
	var current []Node
	var out []Placed

	for _, e := range entries {
		level := int(e.Type)
		if level < 0 || level >= depth {
			continue
		}

		// A shallower-or-equal entry restarts counting for everything
		// below it.
		for i := level + 1; i < depth; i++ {
			counters[i] = 0
		}
		counters[level]++

		// Keep only strictly shallower ancestors, so a same-type entry
		// becomes a sibling even when intermediate levels were skipped.
		keep := 0
		for keep < len(current) && current[keep].Level < level {
			keep++
		}
		current = current[:keep]
		current = append(current, Node{
			Type:    e.Type,
			Name:    e.Name,
			Page:    e.Page,
			Counter: counters[level],
			Level:   level,
		})

		path := make([]Node, len(current))
		copy(path, current)
		out = append(out, Placed{Entry: e, Path: path, Counter: counters[level]})
	}
	return out
}
