package render

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// invocationAnchor is the stable prefix of the homage that opens most
// books. Its paragraph anchors the reinserted contents block.
const invocationAnchor = "Namo tassa bhagavato"

// centerMaxLen is the longest line still treated as a short
// set-apart line when it stands outside a division.
const centerMaxLen = 80

// ritualPhrases match the fixed liturgical formulas that are always
// centered regardless of length: section closings, the opening
// homage, recitation-section colophons, and elision markers.
var ritualPhrases = []*regexp.Regexp{
	regexp.MustCompile(`niṭṭhit(aṃ|ā|o)\.?\s*$`),
	regexp.MustCompile(invocationAnchor),
	regexp.MustCompile(`bhāṇavār`),
	regexp.MustCompile(`…pe…|\.\.\.pe\.\.\.`),
}

func matchesRitualPhrase(text string) bool {
	for _, re := range ritualPhrases {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// isVerseLine reports whether a line is wrapped in single-underscore
// italics, the legacy convention for verse.
func isVerseLine(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 3 || strings.HasPrefix(t, "__") {
		return false
	}
	return strings.HasPrefix(t, "_") && strings.HasSuffix(t, "_")
}

// isVerseBlock applies the share heuristic: a block is verse when at
// least 70% of its non-empty lines are italic-wrapped.
func isVerseBlock(lines []string) bool {
	total, verse := 0, 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if isVerseLine(line) {
			verse++
		}
	}
	return total > 0 && verse*10 >= total*7
}

// shouldCenter decides whether a block of text is set apart. Only text
// outside any division qualifies: ritual formulas always, other text
// only when short.
func shouldCenter(text string, inDivision bool) bool {
	if inDivision {
		return false
	}
	if matchesRitualPhrase(text) {
		return true
	}
	return utf8.RuneCountInString(strings.TrimSpace(text)) <= centerMaxLen
}
