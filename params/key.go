package params

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical folds ident into the form keys are compared in.
//
//	Canonical("IAmYourFather")  // "i_am_your_father"
//	Canonical("iAmYour_mother") // "i_am_your_mother"
//	Canonical("on_your_face2")  // "on_your_face2"
func Canonical(ident string) string {
	return strings.Join(words(ident), "_")
}

// UpperCamel renders ident as its canonical words, title-cased and without separators.
//
//	UpperCamel("s_m")    // "SM"
//	UpperCamel("Nitrat") // "Nitrat"
func UpperCamel(ident string) string {
	caser := cases.Title(language.Und)

	var b strings.Builder
	for _, w := range words(ident) {
		b.WriteString(caser.String(w))
	}

	return b.String()
}

// words splits ident at underscores and before each upper-case letter, lower-casing each word.
func words(ident string) []string {
	var (
		ws  []string
		cur []rune
	)

	flush := func() {
		if len(cur) > 0 {
			ws = append(ws, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	for _, r := range ident {
		switch {
		case r == '_':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}

	flush()

	return ws
}

// lowerFirst lower-cases the first letter of s.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
