// Package telex converts Telex keystroke sequences into precomposed
// Vietnamese text. Conversion is a pure function of the whole raw buffer:
// first vowel/consonant digraphs, then tone marks.
package telex

import "strings"

// Tone suffix letters, in table column order.
const (
	ToneAcute = 's' // sắc
	ToneGrave = 'f' // huyền
	ToneHook  = 'r' // hỏi
	ToneTilde = 'x' // ngã
	ToneDot   = 'j' // nặng
)

const toneSuffixes = "sfrxj"

type rule struct {
	pattern     string
	replacement string
}

// Applied in order, each one globally.
var digraphs = []rule{
	{"aa", "â"}, {"aw", "ă"}, {"ee", "ê"}, {"oo", "ô"}, {"ow", "ơ"}, {"uw", "ư"}, {"dd", "đ"},
	{"AA", "Â"}, {"AW", "Ă"}, {"EE", "Ê"}, {"OO", "Ô"}, {"OW", "Ơ"}, {"UW", "Ư"}, {"DD", "Đ"},
	{"Aa", "Â"}, {"Aw", "Ă"}, {"Ee", "Ê"}, {"Oo", "Ô"}, {"Ow", "Ơ"}, {"Uw", "Ư"}, {"Dd", "Đ"},
}

// Row: base vowel followed by its forms for s f r x j.
var toneRows = [...]string{
	"aáàảãạ", "ăắằẳẵặ", "âấầẩẫậ",
	"eéèẻẽẹ", "êếềểễệ",
	"iíìỉĩị",
	"oóòỏõọ", "ôốồổỗộ", "ơớờởỡợ",
	"uúùủũụ", "ưứừửữự",
	"yýỳỷỹỵ",
	"AÁÀẢÃẠ", "ĂẮẰẲẴẶ", "ÂẤẦẨẪẬ",
	"EÉÈẺẼẸ", "ÊẾỀỂỄỆ",
	"IÍÌỈĨỊ",
	"OÓÒỎÕỌ", "ÔỐỒỔỖỘ", "ƠỚỜỞỠỢ",
	"UÚÙỦŨỤ", "ƯỨỪỬỮỰ",
	"YÝỲỶỸỴ",
}

// tones[vowel][column]
var tones = buildToneTable()

func buildToneTable() map[rune][5]rune {
	t := make(map[rune][5]rune, len(toneRows))
	for _, row := range toneRows {
		rs := []rune(row)
		if len(rs) != 6 {
			panic("code error telex tone row=" + row)
		}
		var forms [5]rune
		copy(forms[:], rs[1:])
		t[rs[0]] = forms
	}
	return t
}

// Transliterate never fails, unknown sequences pass through unchanged.
// Not idempotent: call once per buffer change with the full raw buffer.
func Transliterate(raw string) string {
	return TonePass(DigraphPass(raw))
}

func DigraphPass(s string) string {
	for _, r := range digraphs {
		if strings.Contains(s, r.pattern) {
			s = strings.ReplaceAll(s, r.pattern, r.replacement)
		}
	}
	return s
}

// TonePass replaces every (toneable vowel, suffix letter) pair.
// Pairs never overlap: result of replacement is neither a base vowel nor a suffix,
// so single left-to-right scan equals per-pair global replace.
func TonePass(s string) string {
	if !strings.ContainsAny(s, toneSuffixes) {
		return s
	}
	rs := []rune(s)
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		if i+1 < len(rs) {
			if toned, ok := Tone(rs[i], rs[i+1]); ok {
				out = append(out, toned)
				i++
				continue
			}
		}
		out = append(out, rs[i])
	}
	return string(out)
}

// Tone looks up precomposed form of vowel with tone suffix letter.
func Tone(vowel, suffix rune) (rune, bool) {
	col := strings.IndexRune(toneSuffixes, suffix)
	if col < 0 {
		return 0, false
	}
	forms, ok := tones[vowel]
	if !ok {
		return 0, false
	}
	return forms[col], true
}

// Vowels returns toneable base vowels, lowercase first.
func Vowels() []rune {
	vs := make([]rune, 0, len(toneRows))
	for _, row := range toneRows {
		r := []rune(row)
		vs = append(vs, r[0])
	}
	return vs
}

func Suffixes() []rune { return []rune(toneSuffixes) }
