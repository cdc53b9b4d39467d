package cast

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerRe      = regexp.MustCompile(`^\s*-?[0-9]+\s*$`)
	floatRe        = regexp.MustCompile(`^\s*-?[0-9.,]+\s*$`)
	leadingFloatRe = regexp.MustCompile(`^-?[0-9]*(\.[0-9]*)?`)
)

// A Caster casts raw parameter values as a Type.
//
// A Caster is bound to the charset of the request its values came from,
// which AsISO and AsUTF8 transliterate from.
// A Caster is safe for concurrent use.
type Caster struct {
	charset  string
	translit Transliterator
}

// The OptFn applies functional options to a *Caster when constructing it.
type OptFn func(*Caster)

// WithCharset sets the charset raw string values are encoded in.
// An empty charset leaves the default, UTF-8.
func WithCharset(charset string) OptFn {
	return func(c *Caster) {
		if charset != "" {
			c.charset = charset
		}
	}
}

// WithContentType sets the charset raw string values are encoded in
// from the value of a Content-Type header.
func WithContentType(contentType string) OptFn {
	return func(c *Caster) {
		c.charset = Charset(contentType)
	}
}

// WithTransliterator replaces the Transliterator used by AsISO and AsUTF8.
func WithTransliterator(t Transliterator) OptFn {
	return func(c *Caster) {
		c.translit = t
	}
}

// New constructs a *Caster with the provided functional options.
//
// By default, values are assumed to be UTF-8 encoded
// and transliterated with a TextTransliterator.
func New(opts ...OptFn) *Caster {
	c := &Caster{charset: DefaultCharset}
	for _, opt := range opts {
		opt(c)
	}

	if c.translit == nil {
		c.translit = NewTransliterator()
	}

	return c
}

// Charset returns the charset the *Caster assumes raw strings are encoded in.
func (c *Caster) Charset() string { return c.charset }

// Cast attempts to cast v as t.
// On failure, Cast returns a *Error naming t.
//
// Cast panics if t is not one of the Type constants:
// that is a programming error, not a data error.
func (c *Caster) Cast(t Type, v any) (any, error) {
	var (
		val any
		err error
	)

	switch t {
	case AsInteger:
		val, err = c.Int(v)
	case AsFloat:
		val, err = c.Float(v)
	case AsArray:
		val, err = c.Array(v)
	case AsString:
		val, err = c.String(v)
	case AsISO:
		val, err = c.ISO(v)
	case AsUTF8:
		val, err = c.UTF8(v)
	case AsJSON:
		val, err = c.JSON(v)
	default:
		panic(fmt.Sprintf("cast: unknown type %q", string(t)))
	}

	if err != nil {
		return nil, err
	}

	return val, nil
}

// Int casts v as an int.
//
// Int accepts Go integers that fit in an int
// and strings of digits with an optional leading minus sign and surrounding whitespace.
func (c *Caster) Int(v any) (int, error) {
	i, ok := toInteger(v)
	if !ok {
		return 0, newError(v, AsInteger)
	}

	return i, nil
}

// Float casts v as a float64.
//
// Float accepts Go floats, JSON numbers in any notation, strings of digits,
// periods and commas (commas read as decimal points), and anything Int accepts.
func (c *Caster) Float(v any) (float64, error) {
	f, ok := toFloat(v)
	if !ok {
		return 0, newError(v, AsFloat)
	}

	return f, nil
}

// Array casts v as an array, which is v itself when v is a slice, array or map.
func (c *Caster) Array(v any) (any, error) {
	a, ok := toArray(v)
	if !ok {
		return nil, newError(v, AsArray)
	}

	return a, nil
}

// String casts v as a string.
//
// String accepts Go strings, bools, integers and floats.
// true is "1" and false is "".
func (c *Caster) String(v any) (string, error) {
	s, ok := toString(v)
	if !ok {
		return "", newError(v, AsString)
	}

	return s, nil
}

// ISO casts v as a string and transliterates it into ISO-8859-1.
func (c *Caster) ISO(v any) (string, error) {
	s, ok := toString(v)
	if !ok {
		return "", newError(v, AsISO)
	}

	return c.translit.Transliterate(s, c.charset, ISO88591), nil
}

// UTF8 casts v as a string and transliterates it into UTF-8.
func (c *Caster) UTF8(v any) (string, error) {
	s, ok := toString(v)
	if !ok {
		return "", newError(v, AsUTF8)
	}

	return c.translit.Transliterate(s, c.charset, UTF8), nil
}

// JSON casts v as a UTF-8 string and decodes the JSON it holds.
//
// Objects decode into map[string]any, arrays into []any and numbers into float64.
// When decoding fails, the *Error's Cause describes where and why.
func (c *Caster) JSON(v any) (any, error) {
	s, err := c.UTF8(v)
	if err != nil {
		return nil, newError(v, AsJSON)
	}

	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, &Error{Value: v, Type: AsJSON, Cause: describeJSONError(err)}
	}

	return out, nil
}

// describeJSONError adds the offset a syntax error occurred at to its message.
func describeJSONError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("syntax error at offset %d: %w", syntaxErr.Offset, err)
	}

	return err
}

func toInteger(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		if !integerRe.MatchString(s) {
			return 0, false
		}

		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}

		return i, true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < math.MinInt || i > math.MaxInt {
			return 0, false
		}

		return int(i), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}

		return int(u), true

	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok && strings.ContainsAny(string(n), "eE") {
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true

	case reflect.String:
		if s := rv.String(); floatRe.MatchString(s) {
			return leadingFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ".")), true
		}
	}

	i, ok := toInteger(v)
	if !ok {
		return 0, false
	}

	return float64(i), true
}

// leadingFloat parses the longest prefix of s that reads as a decimal number,
// so "1.2.3" is 1.2 and "." is 0.
func leadingFloat(s string) float64 {
	prefix := leadingFloatRe.FindString(s)
	if strings.Trim(prefix, "-.") == "" {
		return 0
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}

	return f
}

func toArray(v any) (any, bool) {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v, true
	default:
		return nil, false
	}
}

func toString(v any) (string, bool) {
	if n, ok := v.(json.Number); ok && strings.ContainsAny(string(n), "eE") {
		f, err := n.Float64()
		if err != nil {
			return "", false
		}

		return formatFloat(f, 64), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true

	case reflect.Bool:
		if rv.Bool() {
			return "1", true
		}

		return "", true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true

	case reflect.Float32:
		return formatFloat(rv.Float(), 32), true

	case reflect.Float64:
		return formatFloat(rv.Float(), 64), true

	default:
		return "", false
	}
}

func formatFloat(f float64, bitSize int) string {
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	return strconv.FormatFloat(f, 'g', -1, bitSize)
}
