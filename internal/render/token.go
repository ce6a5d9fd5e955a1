package render

import (
	"regexp"
	"strings"
)

// tokenKind classifies one source line for the structural transducer.
type tokenKind int

const (
	tokText tokenKind = iota
	tokBlank
	tokSeparator // a lone --- line; closes open structures, emits nothing
	tokDivision  // (N.) or (N–M.)
	tokParagraph // N\. text
	tokHeading   // markdown heading
	tokTocBlock  // placeholder where a removed contents block started
)

type token struct {
	kind tokenKind
	raw  string
	num  string // division/paragraph number, possibly a range
	text string // remainder after the marker, or heading text
}

// tocItem is one extracted contents line: a markdown list link.
type tocItem struct {
	raw    string
	text   string
	target string
}

var (
	divisionMarker  = regexp.MustCompile(`^\((\d+(?:[–-]\d+)?)\.\)$`)
	paragraphMarker = regexp.MustCompile(`^(\d+(?:[–-]\d+)?)\\\.\s+(.*)$`)
	headingLine     = regexp.MustCompile(`^#{1,6}\s+(.*)$`)
	tocItemLine     = regexp.MustCompile(`^\s*\*\s+\[([^\]]+)\]\(([^)]+)\)\s*$`)
	// numberedHeading spots heading texts that are structural markers
	// ("1. Verañjakaṇḍa") rather than prose headings.
	numberedHeading = regexp.MustCompile(`^\d+(?:[–-]\d+)?\.\s+.*$`)
)

// tokenize runs the two lexical passes: first the contents-block
// extraction (list-link runs are pulled out before any structural
// parsing), then per-line classification.
func tokenize(body string) ([]token, []tocItem) {
	lines := strings.Split(body, "\n")

	var items []tocItem
	blockClosed := false
	blockStart := -1
	kept := make([]string, 0, len(lines))
	markers := make([]bool, 0, len(lines))

	for _, line := range lines {
		m := tocItemLine.FindStringSubmatch(line)
		switch {
		case m != nil && !blockClosed:
			if blockStart == -1 {
				blockStart = len(kept)
				kept = append(kept, "")
				markers = append(markers, true)
			}
			items = append(items, tocItem{raw: strings.TrimSpace(line), text: m[1], target: m[2]})
		case strings.TrimSpace(line) == "":
			kept = append(kept, line)
			markers = append(markers, false)
		default:
			// A non-blank, non-item line ends the collecting run.
			if blockStart != -1 {
				blockClosed = true
			}
			kept = append(kept, line)
			markers = append(markers, false)
		}
	}

	tokens := make([]token, 0, len(kept))
	for i, line := range kept {
		if markers[i] {
			tokens = append(tokens, token{kind: tokTocBlock})
			continue
		}
		tokens = append(tokens, classify(line))
	}
	return tokens, items
}

func classify(line string) token {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return token{kind: tokBlank, raw: line}
	case trimmed == "---":
		return token{kind: tokSeparator, raw: line}
	}
	if m := divisionMarker.FindStringSubmatch(trimmed); m != nil {
		return token{kind: tokDivision, raw: line, num: m[1]}
	}
	if m := paragraphMarker.FindStringSubmatch(trimmed); m != nil {
		return token{kind: tokParagraph, raw: line, num: m[1], text: m[2]}
	}
	if m := headingLine.FindStringSubmatch(trimmed); m != nil {
		return token{kind: tokHeading, raw: line, text: strings.TrimSpace(m[1])}
	}
	return token{kind: tokText, raw: line}
}
