package translit

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/openpali/tipitaka-tools/internal/logging"
)

func upperProcess(from, to, text string) (string, error) {
	return strings.ToUpper(text), nil
}

func TestConvertIdentityLocaleNeverCallsProcess(t *testing.T) {
	called := false
	c := NewConverter("IASTPali", func(from, to, text string) (string, error) {
		called = true
		return text, nil
	}, logging.Discard())

	in := "Verañjakaṇḍa 12. pāḷi"
	if got := c.Convert(in, "romn"); got != in {
		t.Fatalf("identity locale changed text: %q", got)
	}
	if called {
		t.Fatal("external converter invoked for identity locale")
	}
}

func TestConvertPreservesDigitsAndPunctuation(t *testing.T) {
	c := NewConverter("IASTPali", upperProcess, logging.Discard())

	got := c.Convert("dhammā 123, pāḷi.", "thai")
	want := "DHAMMĀ 123, PĀḶI."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertProtectsLinkTargets(t *testing.T) {
	c := NewConverter("IASTPali", upperProcess, logging.Discard())

	got := c.Convert("see [Verañja](1/2.md) here", "thai")
	if !strings.Contains(got, "](1/2.md)") {
		t.Fatalf("link target was transliterated: %q", got)
	}
	if !strings.Contains(got, "[VERAÑJA]") {
		t.Fatalf("link text was not transliterated: %q", got)
	}
}

func TestConvertProtectsComponentTags(t *testing.T) {
	c := NewConverter("IASTPali", upperProcess, logging.Discard())

	in := `<Division number="1" book="dhs" edition="vri" volume="29">paññatti</Division>`
	got := c.Convert(in, "thai")
	want := `<Division number="1" book="dhs" edition="vri" volume="29">PAÑÑATTI</Division>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertKeepsDiacriticWordsWhole(t *testing.T) {
	var segments []string
	c := NewConverter("IASTPali", func(from, to, text string) (string, error) {
		segments = append(segments, text)
		return strings.ToUpper(text), nil
	}, logging.Discard())

	if got := c.Convert("verañjāyaṃ", "thai"); got != "VERAÑJĀYAṂ" {
		t.Fatalf("got %q", got)
	}
	if len(segments) != 1 || segments[0] != "verañjāyaṃ" {
		t.Fatalf("word split into segments %q", segments)
	}
}

func TestConvertSegmentFailureKeepsOriginal(t *testing.T) {
	c := NewConverter("IASTPali", func(from, to, text string) (string, error) {
		if strings.Contains(text, "bad") {
			return "", errors.New("converter exploded")
		}
		return strings.ToUpper(text), nil
	}, logging.Discard())

	got := c.Convert("good bad good", "sinh")
	if got != "GOOD bad GOOD" {
		t.Fatalf("got %q, want %q", got, "GOOD bad GOOD")
	}
}

func TestConvertAppliesCorrections(t *testing.T) {
	// The romn-from-Burmese scheme rewrites a doubled period to a single one.
	c := NewConverter("Burmese", func(from, to, text string) (string, error) {
		return text + "..", nil
	}, logging.Discard())

	got := c.Convert("abc", "romn")
	if got != "abc." {
		t.Fatalf("correction not applied: %q", got)
	}
}

func TestConvertCachesByTextAndLocale(t *testing.T) {
	calls := 0
	c := NewConverter("IASTPali", func(from, to, text string) (string, error) {
		calls++
		return strings.ToUpper(text), nil
	}, logging.Discard())

	c.Convert("pāḷi", "thai")
	c.Convert("pāḷi", "thai")
	if calls != 1 {
		t.Fatalf("expected one converter call, got %d", calls)
	}
	c.Convert("pāḷi", "sinh")
	if calls != 2 {
		t.Fatalf("expected distinct cache entry per locale, got %d calls", calls)
	}
}

func TestCacheEvictsOldestHalf(t *testing.T) {
	cache := NewCache(10)
	for i := 0; i < 11; i++ {
		cache.Put(fmt.Sprintf("t%d", i), "thai", "v")
	}
	if cache.Len() != 6 {
		t.Fatalf("expected 6 entries after eviction, got %d", cache.Len())
	}
	if _, ok := cache.Get("t0", "thai"); ok {
		t.Fatal("oldest entry survived eviction")
	}
	if _, ok := cache.Get("t10", "thai"); !ok {
		t.Fatal("newest entry was evicted")
	}
}
