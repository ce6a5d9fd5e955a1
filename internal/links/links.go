// Package links rewrites legacy markdown link targets into the slug
// scheme of the generated site. Legacy content hard-codes book-code
// prefixed, mixed-case, .md-suffixed paths; routing in the new tree is
// lowercase, hyphenated, extension-free and never repeats the book code
// inside the book's own subtree.
package links

import (
	"regexp"
	"strings"

	"github.com/openpali/tipitaka-tools/internal/config"
)

var (
	dashRuns   = regexp.MustCompile(`-+`)
	slugChars  = strings.NewReplacer(" ", "-", ".", "-", "_", "-")
	mdLink     = regexp.MustCompile(`(\[[^\]]*\]\()([^)]+)(\))`)
	schemeLike = []string{"http://", "https://", "mailto:", "tel:"}
)

// Slugify converts one path segment into site form: trailing ".md"
// stripped, spaces/dots/underscores hyphenated, hyphen runs collapsed,
// lowercased. Applying it twice yields the same result.
func Slugify(segment string) string {
	s := strings.TrimSuffix(segment, ".md")
	s = slugChars.Replace(s)
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// Normalize rewrites a single raw link target relative to the file whose
// slug is currentSlug. Absolute and anchor-only targets pass through.
// Normalize is idempotent.
func Normalize(raw, currentSlug string) string {
	if raw == "" || strings.HasPrefix(raw, "#") {
		return raw
	}
	for _, scheme := range schemeLike {
		if strings.HasPrefix(raw, scheme) {
			return raw
		}
	}

	path := raw
	fragment := ""
	if i := strings.Index(raw, "#"); i >= 0 {
		path, fragment = raw[:i], raw[i:]
	}

	absolute := strings.HasPrefix(path, "/")
	dirStyle := strings.HasSuffix(path, "/") && path != "/"

	var segs []string
	for _, part := range strings.Split(path, "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			segs = append(segs, part)
		default:
			segs = append(segs, Slugify(part))
		}
	}

	// Drop redundant leading book references: the file's own slug or any
	// known book code/abbreviation/alternate ref. Iterated to a fixed
	// point so normalization stays idempotent even for doubled prefixes.
	for len(segs) > 0 && segs[0] != ".." {
		if segs[0] != currentSlug && !isBookRef(segs[0]) {
			break
		}
		segs = segs[1:]
	}

	out := strings.Join(segs, "/")
	if absolute {
		out = "/" + out
	}
	if dirStyle && out != "" && !strings.HasSuffix(out, "/") {
		out += "/"
	}
	return out + fragment
}

// RewriteAll normalizes every markdown link target in a body.
func RewriteAll(body, currentSlug string) string {
	return mdLink.ReplaceAllStringFunc(body, func(m string) string {
		parts := mdLink.FindStringSubmatch(m)
		return parts[1] + Normalize(parts[2], currentSlug) + parts[3]
	})
}

func isBookRef(seg string) bool {
	_, ok := config.BookForRef(seg)
	return ok
}
