package sidebar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openpali/tipitaka-tools/internal/config"
)

// upperTranslator marks conversions so tests can tell locales apart
// without a real transliterator.
type upperTranslator struct{}

func (upperTranslator) Convert(text, locale string) string {
	if locale == "romn" {
		return text
	}
	return locale + ":" + text
}

func TestBuildTreeShape(t *testing.T) {
	root := Build("romn", upperTranslator{}, nil)

	if root.Label != "Tipiṭaka" || !root.Collapsed {
		t.Fatalf("root = %+v", root)
	}
	if len(root.Items) != 3 {
		t.Fatalf("baskets = %d, want 3", len(root.Items))
	}
	vinaya := root.Items[0]
	if vinaya.Label != "Vinayapiṭaka" {
		t.Fatalf("first basket = %q", vinaya.Label)
	}
	// Vinaya books sit directly under the basket.
	if len(vinaya.Items) != 5 || vinaya.Items[0].Label != "Pārājikapāḷi" {
		t.Fatalf("vinaya items = %+v", vinaya.Items)
	}
	first := vinaya.Items[0]
	if first.Autogenerate == nil || first.Autogenerate.Directory != "tipitaka/v/paraj" {
		t.Fatalf("autogenerate = %+v", first.Autogenerate)
	}
	// Translation maps are keyed by language code, matching the static
	// group headings.
	if first.Translations["th"] != "thai:Pārājikapāḷi" {
		t.Fatalf("translations = %v", first.Translations)
	}
	if _, ok := first.Translations["thai"]; ok {
		t.Fatalf("translations keyed by locale, not language: %v", first.Translations)
	}

	sutta := root.Items[1]
	if len(sutta.Items) == 0 || sutta.Items[0].Label != "Dīghanikāya" {
		t.Fatalf("sutta groups = %+v", sutta.Items)
	}
}

func TestBuildLinkOverride(t *testing.T) {
	links := map[string]string{"1V": "tipitaka/v/paraj/1"}
	root := Build("romn", upperTranslator{}, links)

	first := root.Items[0].Items[0]
	if first.Link != "tipitaka/v/paraj/1" || first.Autogenerate != nil {
		t.Fatalf("override not applied: %+v", first)
	}
	second := root.Items[0].Items[1]
	if second.Autogenerate == nil {
		t.Fatalf("unrelated book lost autogenerate: %+v", second)
	}
}

func TestBuildPatthanaSections(t *testing.T) {
	root := Build("romn", upperTranslator{}, nil)
	abhi := root.Items[2]

	var labels []string
	for _, item := range abhi.Items {
		labels = append(labels, item.Label)
	}
	joined := strings.Join(labels, "|")
	for _, want := range []string{"Dhammānuloma", "Dhammapaccanīya", "Dhammānulomapaccanīya", "Dhammapaccanīyānuloma"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing section %q in %q", want, joined)
		}
	}
}

func TestBuildGroupFallbackTranslations(t *testing.T) {
	root := Build("romn", upperTranslator{}, nil)
	abhi := root.Items[2]

	// Groups without a static spelling table get transliterated labels
	// in every language.
	for _, item := range abhi.Items {
		if strings.HasPrefix(item.Label, "Dhamm") {
			if got := item.Translations["th"]; got != "thai:"+item.Label {
				t.Fatalf("group %q translations = %v", item.Label, item.Translations)
			}
		}
	}
	// Static tables are kept as-is.
	sutta := root.Items[1]
	if got := sutta.Items[0].Translations["th"]; got != "ทีฆนิกาย" {
		t.Fatalf("static group translation = %q", got)
	}
}

func TestWriteNavigation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "navigate.js")
	root := Build("romn", upperTranslator{}, nil)
	if err := WriteNavigation(path, root); err != nil {
		t.Fatalf("WriteNavigation: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "export const sidebar = [") {
		t.Fatalf("bad prefix: %.60q", text)
	}
	if !strings.HasSuffix(text, ";\n") {
		t.Fatalf("bad suffix: %.20q", text[len(text)-20:])
	}

	// The payload between the export statement and the terminator is
	// plain JSON.
	payload := strings.TrimSuffix(strings.TrimPrefix(text, "export const sidebar = "), ";\n")
	var nodes []*Node
	if err := json.Unmarshal([]byte(payload), &nodes); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Label != "Tipiṭaka" {
		t.Fatalf("payload = %+v", nodes)
	}
	if strings.Contains(text, `\u0e`) {
		t.Fatalf("non-ascii script text was escaped")
	}
	if !strings.Contains(text, config.RootLabel.Translations["my"]) {
		t.Fatalf("translations missing from output")
	}
}
