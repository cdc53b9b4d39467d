package cast

import (
	"mime"
	"regexp"
)

// DefaultCharset is assumed when a request does not declare its charset.
const DefaultCharset = UTF8

var charsetRe = regexp.MustCompile(`charset=([\w-]+)`)

// Charset reads the charset parameter from the value of a Content-Type header.
//
// Charset falls back to scanning for "charset=" when contentType is not a well-formed media type,
// and to DefaultCharset when no charset is declared at all.
func Charset(contentType string) string {
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if cs := params["charset"]; cs != "" {
			return cs
		}

		return DefaultCharset
	}

	if match := charsetRe.FindStringSubmatch(contentType); match != nil {
		return match[1]
	}

	return DefaultCharset
}
