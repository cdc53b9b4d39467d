package cast

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	ISO88591 = "ISO-8859-1"
	UTF8     = "UTF-8"
)

// A Transliterator re-encodes strings between charsets.
type Transliterator interface {
	// Transliterate re-encodes s from the from charset into the to charset.
	// Characters the to charset cannot represent are replaced by the nearest one it can.
	Transliterate(s, from, to string) string
}

// substitutes are replacements for characters without a decomposition
// that lands in a single-byte charset.
var substitutes = map[rune]string{
	'‘': "'", '’': "'", '‚': "'", '′': "'",
	'“': `"`, '”': `"`, '„': `"`, '″': `"`,
	'‐': "-", '‒': "-", '–': "-", '—': "-", '―': "-",
	'•': "o", '€': "EUR",
	'Œ': "OE", 'œ': "oe",
	'Ł': "L", 'ł': "l",
	'Đ': "D", 'đ': "d",
	'Ø': "O", 'ø': "o",
	'ı': "i",
}

// A TextTransliterator implements Transliterator with golang.org/x/text.
//
// Charset names are resolved through the IANA registry first and the WHATWG index second.
// Unknown names are read as UTF-8.
type TextTransliterator struct {
	stripMarks transform.Transformer
}

// NewTransliterator constructs a TextTransliterator.
func NewTransliterator() TextTransliterator {
	return TextTransliterator{stripMarks: runes.Remove(runes.In(unicode.Mn))}
}

// Transliterate implements Transliterator.
//
// Characters missing from the to charset are, in order of preference,
// replaced with an entry in a table of common punctuation and letters,
// decomposed with their diacritics stripped,
// or replaced with "?".
func (tt TextTransliterator) Transliterate(s, from, to string) string {
	decoded := decode(s, lookupEncoding(from))

	target := lookupEncoding(to)
	if isUTF8(target) {
		return decoded
	}

	enc := target.NewEncoder()
	var b strings.Builder
	for _, r := range decoded {
		if out, err := enc.String(string(r)); err == nil {
			b.WriteString(out)
			continue
		}

		b.WriteString(tt.substitute(enc, r))
	}

	return b.String()
}

// substitute finds the nearest encodable replacement for r.
func (tt TextTransliterator) substitute(enc *encoding.Encoder, r rune) string {
	if sub, ok := substitutes[r]; ok {
		if out, err := enc.String(sub); err == nil {
			return out
		}
	}

	stripper := tt.stripMarks
	if stripper == nil {
		stripper = runes.Remove(runes.In(unicode.Mn))
	}

	if stripped, _, err := transform.String(stripper, norm.NFKD.String(string(r))); err == nil && stripped != "" {
		if out, err := enc.String(stripped); err == nil {
			return out
		}
	}

	return "?"
}

// lookupEncoding resolves a charset name, falling back to UTF-8.
func lookupEncoding(name string) encoding.Encoding {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc
	}

	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc
	}

	return xunicode.UTF8
}

func isUTF8(enc encoding.Encoding) bool {
	name, err := ianaindex.IANA.Name(enc)
	return err == nil && name == UTF8
}

// decode converts s from enc into UTF-8, replacing undecodable bytes with utf8.RuneError.
func decode(s string, enc encoding.Encoding) string {
	if isUTF8(enc) {
		return strings.ToValidUTF8(s, string(utf8.RuneError))
	}

	out, err := enc.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, string(utf8.RuneError))
	}

	return out
}
