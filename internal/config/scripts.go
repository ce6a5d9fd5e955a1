package config

// Locales are the target script identifiers (ISO 15924, lowercased), in
// canonical processing order.
var Locales = []string{"romn", "mymr", "thai", "sinh", "deva", "khmr", "laoo", "lana"}

// DefaultLocale is the script the navigation module is generated from.
const DefaultLocale = "romn"

// LanguageCodes maps a locale to the BCP-47 language code used in
// sidebar translation maps.
var LanguageCodes = map[string]string{
	"romn": "en",
	"mymr": "my",
	"thai": "th",
	"sinh": "si",
	"deva": "hi",
	"khmr": "kh",
	"laoo": "lo",
	"lana": "ln",
}

// Correction is a literal post-conversion replacement applied after the
// external transliterator has run.
type Correction struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Scheme describes how one locale is produced from the source script.
type Scheme struct {
	Locale      string
	From        string
	To          string
	Corrections []Correction
}

// Identity reports whether the scheme leaves text untouched.
func (s Scheme) Identity() bool { return s.From == s.To }

// romanSource covers the md-tree corpus, which is stored in IAST roman.
var romanSource = []Scheme{
	{Locale: "romn", From: "IASTPali", To: "IASTPali"},
	{Locale: "mymr", From: "IASTPali", To: "Burmese"},
	{Locale: "thai", From: "IASTPali", To: "Thai"},
	{Locale: "sinh", From: "IASTPali", To: "Sinhala"},
	{Locale: "deva", From: "IASTPali", To: "Devanagari"},
	{Locale: "khmr", From: "IASTPali", To: "Khmer"},
	{Locale: "laoo", From: "IASTPali", To: "LaoPali"},
	{Locale: "lana", From: "IASTPali", To: "TaiTham"},
}

// burmeseSource covers the relational corpus, which is stored in Burmese
// script. The correction tables fix known converter mis-mappings.
var burmeseSource = []Scheme{
	{Locale: "mymr", From: "Burmese", To: "Burmese"},
	{Locale: "romn", From: "Burmese", To: "IASTPali",
		Corrections: []Correction{{From: "..", To: "."}}},
	{Locale: "thai", From: "Burmese", To: "Thai",
		Corrections: []Correction{{From: "ึ", To: "ิํ"}, {From: "๚", To: "."}}},
	{Locale: "sinh", From: "Burmese", To: "Sinhala",
		Corrections: []Correction{{From: "..", To: "."}}},
	{Locale: "deva", From: "Burmese", To: "Devanagari",
		Corrections: []Correction{{From: "..", To: "."}}},
	{Locale: "khmr", From: "Burmese", To: "Khmer",
		Corrections: []Correction{{From: "៕", To: "."}}},
	{Locale: "laoo", From: "Burmese", To: "LaoPali",
		Corrections: []Correction{{From: "ຯຯ", To: "."}}},
	{Locale: "lana", From: "Burmese", To: "TaiTham",
		Corrections: []Correction{{From: "᪩", To: "."}}},
}

// SchemeFor returns the scheme converting sourceScript text into the
// given locale. Known source scripts are "IASTPali" and "Burmese".
func SchemeFor(sourceScript, locale string) (Scheme, bool) {
	var table []Scheme
	switch sourceScript {
	case "IASTPali":
		table = romanSource
	case "Burmese":
		table = burmeseSource
	default:
		return Scheme{}, false
	}
	for _, s := range table {
		if s.Locale == locale {
			return s, true
		}
	}
	return Scheme{}, false
}

// IsLocale reports whether code names a supported locale.
func IsLocale(code string) bool {
	for _, l := range Locales {
		if l == code {
			return true
		}
	}
	return false
}
