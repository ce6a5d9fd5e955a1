package config

// GroupLabel is a fixed sidebar group heading with its per-language
// renderings. Book labels are transliterated at run time; these group
// headings are static data because several scripts use conventional
// spellings a mechanical conversion would not produce.
type GroupLabel struct {
	Label        string
	Translations map[string]string
}

// RootLabel heads the whole generated sidebar.
var RootLabel = GroupLabel{
	Label: "Tipiṭaka",
	Translations: map[string]string{
		"my": "တိပိဋက", "th": "ติปิฏก", "si": "තිපිටක", "en": "Tipiṭaka",
		"hi": "तिपिटक", "kh": "តិបិដក", "lo": "ຕິປິຕກ", "ln": "ᨲᩥᨸᩥᨭᨠ",
	},
}

// BasketLabels maps basket identifiers to their headings.
var BasketLabels = map[string]GroupLabel{
	BasketVinaya: {
		Label: "Vinayapiṭaka",
		Translations: map[string]string{
			"my": "ဝိနယပိဋက", "th": "วินัยปิฎก", "si": "විනයපිටක", "en": "Vinayapiṭaka",
			"hi": "विनयपिटक", "kh": "វិនយបិដក", "lo": "ວິນຍປິຕກ", "ln": "ᩅᩥᨶᩥᨿᨸᩥᨭᨠ",
		},
	},
	BasketSutta: {
		Label: "Suttantapiṭaka",
		Translations: map[string]string{
			"my": "သုတ္တန္တပိဋက", "th": "สุตฺตนฺตปิฏก", "si": "සුත්තන්තපිටක", "en": "Suttantapiṭaka",
			"hi": "सुत्तन्तपिटक", "kh": "សុត្តន្តបិដក", "lo": "ສຸຕ຺ຕນ຺ຕປິຕກ", "ln": "ᩈᩩᨲ᩠ᨲᨶ᩠ᨲᨸᩥᨭᨠ",
		},
	},
	BasketAbhidhamma: {
		Label: "Abhidhammapiṭaka",
		Translations: map[string]string{
			"my": "အဘိဓမ္မပိဋက", "th": "อภิธมฺมปิฏก", "si": "අභිධම්මපිටක", "en": "Abhidhammapiṭaka",
			"hi": "अभिधम्मपिटक", "kh": "អភិធម្មបិដក", "lo": "ອບິທມ຺ມປິຕກ", "ln": "ᩋᨽᩥᨵᨾ᩠ᨾᨸᩥᨭᨠ",
		},
	},
}

// CategoryLabels maps sub-basket category path segments (as stored in
// Book.Category) to their headings.
var CategoryLabels = map[string]GroupLabel{
	"d": {
		Label: "Dīghanikāya",
		Translations: map[string]string{
			"my": "ဒီဃနိကာယ်", "th": "ทีฆนิกาย", "si": "දීඝනිකාය", "en": "Dīghanikāya",
			"hi": "दीघनिकाय", "kh": "ទីឃនិកាយ", "lo": "ທີຄນິກາຍ", "ln": "ᨴᩦᨣᨶᩥᨠᩣᨿ",
		},
	},
	"m": {
		Label: "Majjhimanikāya",
		Translations: map[string]string{
			"my": "မဇ္ဈိမနိကာယ်", "th": "มัชฌิมนิกาย", "si": "මජ්ඣිමනිකාය", "en": "Majjhimanikāya",
			"hi": "मज्झिमनिकाय", "kh": "មជ្ឈិមនិកាយ", "lo": "ມັຊຌິມນິກາຍ", "ln": "ᨾᨩ᩠ᨩᩥᨾᨶᩥᨠᩣᨿ",
		},
	},
	"s": {
		Label: "Saṃyuttanikāya",
		Translations: map[string]string{
			"my": "သံယုတ္တနိကာယ်", "th": "สํยุตตนิกาย", "si": "සංයුත්තනිකාය", "en": "Saṃyuttanikāya",
			"hi": "संयुत्तनिकाय", "kh": "សំយុត្តនិកាយ", "lo": "ສໍຍຸຕຕນິກາຍ", "ln": "ᨈᩘᨿᩩᨲ᩠ᨲᨶᩥᨠᩣᨿ",
		},
	},
	"a": {
		Label: "Aṅguttaranikāya",
		Translations: map[string]string{
			"my": "အင်္ဂုတ္တရနိကာယ်", "th": "อังคุตตรนิกาย", "si": "අඞ්ගුත්තරනිකාය", "en": "Aṅguttaranikāya",
			"hi": "अङ्गुत्तरनिकाय", "kh": "អង្គុត្តរនិកាយ", "lo": "ອັງຄຸຕຕຣນິກາຍ", "ln": "ᨋᩘᨣᩩᨲ᩠ᨲᩁᨶᩥᨠᩣᨿ",
		},
	},
	"khu": {
		Label: "Khuddakanikāya",
		Translations: map[string]string{
			"my": "ခုဒ္ဒကနိကာယ်", "th": "ขุททกนิกาย", "si": "ඛුද්දකනිකාය", "en": "Khuddakanikāya",
			"hi": "खुद्दकनिकाय", "kh": "ខុទ្ទកនិកាយ", "lo": "ຂຸທທກນິກາຍ", "ln": "ᨡᩩᨴ᩠ᨴᨠᨶᩥᨠᩣᨿ",
		},
	},
	"y":         {Label: "Yamaka"},
	"p":         {Label: "Paṭṭhāna"},
	"p/anu":     {Label: "Dhammānuloma"},
	"p/pac":     {Label: "Dhammapaccanīya"},
	"p/anupac":  {Label: "Dhammānulomapaccanīya"},
	"p/pacanu":  {Label: "Dhammapaccanīyānuloma"},
}

// CategoryOrder fixes the sidebar ordering of sub-basket groups.
var CategoryOrder = map[string][]string{
	BasketSutta:      {"d", "m", "s", "a", "khu"},
	BasketAbhidhamma: {"", "y", "p/anu", "p/pac", "p/anupac", "p/pacanu"},
	BasketVinaya:     {""},
}
