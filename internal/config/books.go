package config

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Basket identifiers, matching the three top-level directories of the
// generated tree.
const (
	BasketVinaya     = "v"
	BasketSutta      = "sutta"
	BasketAbhidhamma = "abhi"
)

// Book is one canonical text. Code is the stable legacy identifier
// ("1V", "29Dhs"), Abbrev the directory slug, Category the sub-basket
// grouping ("" for books sitting directly under their basket). Refs
// lists alternate reference strings older content uses in links.
type Book struct {
	Code     string
	Abbrev   string
	Name     string
	Basket   string
	Category string
	Refs     []string
}

// PathSegments returns the directory path of the book below a locale
// root, e.g. ["tipitaka", "sutta", "khu", "kh"].
func (b Book) PathSegments() []string {
	segs := []string{"tipitaka", b.Basket}
	if b.Category != "" {
		segs = append(segs, strings.Split(b.Category, "/")...)
	}
	return append(segs, b.Abbrev)
}

// Volume returns the numeric edition-volume prefix of the book code
// ("29Dhs" -> 29). Zero when the code has no numeric prefix.
func (b Book) Volume() int {
	m := volumePrefix.FindString(b.Code)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

// MatchesRef reports whether s equals the book code, abbreviation or one
// of the alternate reference strings. Matching is case-insensitive since
// legacy links carry inconsistent casing.
func (b Book) MatchesRef(s string) bool {
	if strings.EqualFold(s, b.Code) || strings.EqualFold(s, b.Abbrev) {
		return true
	}
	for _, r := range b.Refs {
		if strings.EqualFold(s, r) {
			return true
		}
	}
	return false
}

var volumePrefix = regexp.MustCompile(`^\d+`)

// Books is the static book table. Order within the slice is the order
// books appear inside their group in the sidebar.
var Books = []Book{
	// Vinayapiṭaka
	{Code: "1V", Abbrev: "paraj", Name: "Pārājikapāḷi", Basket: BasketVinaya, Refs: []string{"para"}},
	{Code: "2V", Abbrev: "pacit", Name: "Pācittiyapāḷi", Basket: BasketVinaya, Refs: []string{"paci"}},
	{Code: "3V", Abbrev: "maha-vi", Name: "Mahāvaggapāḷi", Basket: BasketVinaya, Refs: []string{"vi-maha"}},
	{Code: "4V", Abbrev: "cula-vi", Name: "Cūḷavaggapāḷi", Basket: BasketVinaya, Refs: []string{"cula"}},
	{Code: "5V", Abbrev: "pariv", Name: "Parivārapāḷi", Basket: BasketVinaya, Refs: []string{"pari"}},

	// Dīghanikāya
	{Code: "6D", Abbrev: "sila", Name: "Sīlakkhandhavaggapāḷi", Basket: BasketSutta, Category: "d"},
	{Code: "7D", Abbrev: "maha-di", Name: "Mahāvaggapāḷi", Basket: BasketSutta, Category: "d", Refs: []string{"dn-maha"}},
	{Code: "8D", Abbrev: "pathika", Name: "Pāthikavaggapāḷi", Basket: BasketSutta, Category: "d", Refs: []string{"pthi"}},

	// Majjhimanikāya
	{Code: "9M", Abbrev: "mula", Name: "Mūlapaṇṇāsapāḷi", Basket: BasketSutta, Category: "m"},
	{Code: "10M", Abbrev: "majjh", Name: "Majjhimapaṇṇāsapāḷi", Basket: BasketSutta, Category: "m", Refs: []string{"majj"}},
	{Code: "11M", Abbrev: "upari", Name: "Uparipaṇṇāsapāḷi", Basket: BasketSutta, Category: "m", Refs: []string{"upar"}},

	// Saṃyuttanikāya
	{Code: "12S1", Abbrev: "saga", Name: "Sagāthāvaggasaṃyuttapāḷi", Basket: BasketSutta, Category: "s"},
	{Code: "12S2", Abbrev: "nidana", Name: "Nidānavaggasaṃyuttapāḷi", Basket: BasketSutta, Category: "s", Refs: []string{"nida"}},
	{Code: "13S3", Abbrev: "khandha", Name: "Khandhavaggasaṃyuttapāḷi", Basket: BasketSutta, Category: "s", Refs: []string{"khan"}},
	{Code: "13S4", Abbrev: "salaya", Name: "Saḷāyatanavaggasaṃyuttapāḷi", Basket: BasketSutta, Category: "s", Refs: []string{"sala"}},
	{Code: "14S5", Abbrev: "maha-sa", Name: "Mahāvaggasaṃyuttapāḷi", Basket: BasketSutta, Category: "s", Refs: []string{"sn-maha"}},

	// Aṅguttaranikāya
	{Code: "15A1", Abbrev: "a1", Name: "Ekakanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "15A2", Abbrev: "a2", Name: "Dukanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "15A3", Abbrev: "a3", Name: "Tikanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "15A4", Abbrev: "a4", Name: "Catukkanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "16A5", Abbrev: "a5", Name: "Pañcakanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "16A6", Abbrev: "a6", Name: "Chakkanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "16A7", Abbrev: "a7", Name: "Sattakanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "17A8", Abbrev: "a8", Name: "Aṭṭhakanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "17A9", Abbrev: "a9", Name: "Navakanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "17A10", Abbrev: "a10", Name: "Dasakanipātapāḷi", Basket: BasketSutta, Category: "a"},
	{Code: "17A11", Abbrev: "a11", Name: "Ekādasakanipātapāḷi", Basket: BasketSutta, Category: "a"},

	// Khuddakanikāya
	{Code: "18Kh", Abbrev: "kh", Name: "Khuddakapāṭhapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "18Dh", Abbrev: "dh", Name: "Dhammapadapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "18Ud", Abbrev: "ud", Name: "Udānapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "18It", Abbrev: "it", Name: "Itivuttakapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "18Sn", Abbrev: "sn", Name: "Suttanipātapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "19Vv", Abbrev: "vv", Name: "Vimānavatthupāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "19Pv", Abbrev: "pv", Name: "Petavatthupāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "19Th1", Abbrev: "thera", Name: "Theragāthāpāḷi", Basket: BasketSutta, Category: "khu", Refs: []string{"th1"}},
	{Code: "19Th2", Abbrev: "theri", Name: "Therīgāthāpāḷi", Basket: BasketSutta, Category: "khu", Refs: []string{"th2"}},
	{Code: "20Ap1", Abbrev: "ap1", Name: "Therāpadānapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "20Ap2", Abbrev: "ap2", Name: "Therīapadānapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "21Bu", Abbrev: "bu", Name: "Buddhavaṃsapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "21Cp", Abbrev: "cp", Name: "Cariyāpiṭakapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "22J", Abbrev: "ja1", Name: "Jātakapāḷi 1", Basket: BasketSutta, Category: "khu"},
	{Code: "23J", Abbrev: "ja2", Name: "Jātakapāḷi 2", Basket: BasketSutta, Category: "khu"},
	{Code: "24Mn", Abbrev: "mn", Name: "Mahāniddesapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "25Cn", Abbrev: "cn", Name: "Cūḷaniddesapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "26Ps", Abbrev: "ps", Name: "Paṭisambhidāmaggapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "27Ne", Abbrev: "ne", Name: "Nettipāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "27Pe", Abbrev: "pe", Name: "Peṭakopadesapāḷi", Basket: BasketSutta, Category: "khu"},
	{Code: "28Mi", Abbrev: "mi", Name: "Milindapañhapāḷi", Basket: BasketSutta, Category: "khu"},

	// Abhidhammapiṭaka
	{Code: "29Dhs", Abbrev: "dhs", Name: "Dhammasaṅgaṇīpāḷi", Basket: BasketAbhidhamma},
	{Code: "30Vbh", Abbrev: "vbh", Name: "Vibhaṅgapāḷi", Basket: BasketAbhidhamma},
	{Code: "31Dht", Abbrev: "dht", Name: "Dhātukathāpāḷi", Basket: BasketAbhidhamma},
	{Code: "31Pu", Abbrev: "pu", Name: "Puggalapaññattipāḷi", Basket: BasketAbhidhamma},
	{Code: "32Kv", Abbrev: "kv", Name: "Kathāvatthupāḷi", Basket: BasketAbhidhamma},

	// Yamaka
	{Code: "33Y1", Abbrev: "y1", Name: "Mūlayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "33Y2", Abbrev: "y2", Name: "Khandhayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "33Y3", Abbrev: "y3", Name: "Āyatanayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "33Y4", Abbrev: "y4", Name: "Dhātuyamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "33Y5", Abbrev: "y5", Name: "Saccayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "34Y6", Abbrev: "y6", Name: "Saṅkhārayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "34Y7", Abbrev: "y7", Name: "Anusayayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "34Y8", Abbrev: "y8", Name: "Cittayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "35Y9", Abbrev: "y9", Name: "Dhammayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},
	{Code: "35Y10", Abbrev: "y10", Name: "Indriyayamakapāḷi", Basket: BasketAbhidhamma, Category: "y"},

	// Paṭṭhāna, Dhammānuloma
	{Code: "36P1", Abbrev: "p1-1", Name: "Tikapaṭṭhānapāḷi 1", Basket: BasketAbhidhamma, Category: "p/anu", Refs: []string{"p1"}},
	{Code: "37P1", Abbrev: "p1-2", Name: "Tikapaṭṭhānapāḷi 2", Basket: BasketAbhidhamma, Category: "p/anu"},
	{Code: "38P2", Abbrev: "p2", Name: "Dukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anu"},
	{Code: "39P3", Abbrev: "p3", Name: "Dukatikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anu"},
	{Code: "39P4", Abbrev: "p4", Name: "Tikadukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anu"},
	{Code: "39P5", Abbrev: "p5", Name: "Tikatikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anu"},
	{Code: "39P6", Abbrev: "p6", Name: "Dukadukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anu"},

	// Paṭṭhāna, Dhammapaccanīya
	{Code: "40P7", Abbrev: "p7", Name: "Tikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pac"},
	{Code: "40P8", Abbrev: "p8", Name: "Dukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pac"},
	{Code: "40P9", Abbrev: "p9", Name: "Dukatikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pac"},
	{Code: "40P10", Abbrev: "p10", Name: "Tikadukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pac"},
	{Code: "40P11", Abbrev: "p11", Name: "Tikatikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pac"},
	{Code: "40P12", Abbrev: "p12", Name: "Dukadukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pac"},

	// Paṭṭhāna, Dhammānulomapaccanīya
	{Code: "40P13", Abbrev: "p13", Name: "Tikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anupac"},
	{Code: "40P14", Abbrev: "p14", Name: "Dukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anupac"},
	{Code: "40P15", Abbrev: "p15", Name: "Dukatikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anupac"},
	{Code: "40P16", Abbrev: "p16", Name: "Tikadukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anupac"},
	{Code: "40P17", Abbrev: "p17", Name: "Tikatikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anupac"},
	{Code: "40P18", Abbrev: "p18", Name: "Dukadudakapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/anupac"},

	// Paṭṭhāna, Dhammapaccanīyānuloma
	{Code: "40P19", Abbrev: "p19", Name: "Tikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pacanu"},
	{Code: "40P20", Abbrev: "p20", Name: "Dukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pacanu"},
	{Code: "40P21", Abbrev: "p21", Name: "Dukatikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pacanu"},
	{Code: "40P22", Abbrev: "p22", Name: "Tikadukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pacanu"},
	{Code: "40P23", Abbrev: "p23", Name: "Tikatikapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pacanu"},
	{Code: "40P24", Abbrev: "p24", Name: "Dukadukapaṭṭhānapāḷi", Basket: BasketAbhidhamma, Category: "p/pacanu"},
}

// BookByCode finds a book by its legacy code.
func BookByCode(code string) (Book, bool) {
	for _, b := range Books {
		if b.Code == code {
			return b, true
		}
	}
	return Book{}, false
}

// BookForRef finds the book a reference string belongs to, trying codes
// and abbreviations before alternate refs.
func BookForRef(ref string) (Book, bool) {
	for _, b := range Books {
		if b.MatchesRef(ref) {
			return b, true
		}
	}
	return Book{}, false
}

// BooksInBasket filters the table by basket.
func BooksInBasket(basket string) []Book {
	var out []Book
	for _, b := range Books {
		if b.Basket == basket {
			out = append(out, b)
		}
	}
	return out
}

// SortedCodes returns all book codes ordered by numeric volume prefix,
// which is the deterministic processing order for a run.
func SortedCodes() []string {
	codes := make([]string, len(Books))
	for i, b := range Books {
		codes[i] = b.Code
	}
	sort.SliceStable(codes, func(i, j int) bool {
		bi, _ := BookByCode(codes[i])
		bj, _ := BookByCode(codes[j])
		return bi.Volume() < bj.Volume()
	})
	return codes
}
