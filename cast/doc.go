/*
Package cast coerces raw request parameter values into a closed set of target representations.

A raw value is whatever a transport source produced for a parameter:
a string from a query string or form, a slice for repeated keys,
or a decoded JSON scalar, array or object.
A [Type] names the representation calling code wants.
[*Caster.Cast] either returns the coerced value or a [*Error] reporting the raw value
and the requested [Type].

Some coercions build on others:

  - AsFloat falls back to AsInteger, widening the result
  - AsISO and AsUTF8 first coerce AsString, then transliterate
  - AsJSON first coerces AsUTF8, then decodes

A failure anywhere in such a chain is always reported against the Type the caller asked for.

Transliteration reads the charset of the request (see [Charset]),
defaulting to UTF-8, and substitutes the nearest representable character
instead of failing.
*/
package cast
