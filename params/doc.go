/*
Package params binds the untyped values an HTTP request carries to naturally-named accessors.

A Store holds the raw values merged from one or more ordered Sources,
such as a request's query string and its body.
Later Sources override earlier ones.
A Store never changes after it is built.

Keys are matched by their canonical form:
an identifier is split into words at underscores and before upper-case letters,
and those words are lower-cased and joined with underscores.
So "OnYourFace", "onYourFace" and "on_your_face" all address the same value,
whereas "OnyourFace" does not.

Accessor names such as "getOnYourFace" or "hasIAmYourMother" are resolved
by Resolve into a Get or a Has and executed by (*Params).Do:

	call, err := params.Resolve("getPage", 1)
	if err != nil {
		return err
	}

	page, err := p.Do(call)

Most Go code uses the typed surface instead: Get, GetOr, Has, GetAs and GetAsOr.
*/
package params
