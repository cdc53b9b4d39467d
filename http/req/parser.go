package req

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"reflect"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/cast"
	"github.com/xy-planning-network/trailhead/params"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxBodyBytes   int64 = 10 << 20
	DefaultMaxMemoryBytes int64 = 32 << 20
)

// A Parser binds the values an HTTP request carries and decodes them into structs.
type Parser struct {
	decoder      *schema.Decoder
	maxBodyBytes int64
	maxMemory    int64
	validator
}

// The OptFn applies functional options to a *Parser when constructing it.
type OptFn func(*Parser)

// WithMaxBodyBytes limits how much of a body Params reads.
func WithMaxBodyBytes(n int64) OptFn {
	return func(p *Parser) {
		if n > 0 {
			p.maxBodyBytes = n
		}
	}
}

// WithMaxMemory sets how much of a multipart body Params holds in memory.
// See [http.Request.ParseMultipartForm].
func WithMaxMemory(n int64) OptFn {
	return func(p *Parser) {
		if n > 0 {
			p.maxMemory = n
		}
	}
}

// NewParser constructs a *Parser with the provided functional options.
func NewParser(opts ...OptFn) *Parser {
	p := &Parser{
		decoder:      newDecoder(),
		maxBodyBytes: DefaultMaxBodyBytes,
		maxMemory:    DefaultMaxMemoryBytes,
		validator:    newValidator(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Params binds the values r carries, in order, from its query string and from its body.
//
// Params reads a body that is URL-encoded, multipart, a JSON object or a YAML mapping,
// no larger than the *Parser's limit.
// Keys keep the order they appear in, except for multipart fields, which are ordered by key.
// r.Body can be read again after Params reads it,
// except for multipart bodies, which remain available through r.MultipartForm.
func (p *Parser) Params(r *http.Request) (*params.Params, error) {
	query, err := params.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("trailhead/http/req: failed parsing query: %w", err)
	}

	ct := r.Header.Get("Content-Type")
	body, err := p.bodySource(r, ct)
	if err != nil {
		return nil, err
	}

	return params.New(query, body).WithCaster(cast.New(cast.WithContentType(ct))), nil
}

func (p *Parser) bodySource(r *http.Request, contentType string) (params.Source, error) {
	if r.Body == nil || r.Body == http.NoBody || contentType == "" {
		return nil, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("trailhead/http/req: %w: bad Content-Type %q: %s", trailhead.ErrBadFormat, contentType, err)
	}

	r.Body = http.MaxBytesReader(nil, r.Body, p.maxBodyBytes)

	switch mediaType {
	case "application/x-www-form-urlencoded":
		b, err := p.readBody(r)
		if err != nil {
			return nil, err
		}

		src, err := params.ParseQuery(string(b))
		if err != nil {
			return nil, fmt.Errorf("trailhead/http/req: failed parsing form: %w", err)
		}

		return src, nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(p.maxMemory); err != nil {
			if exceeded(err, r.Body) {
				return nil, p.tooLarge()
			}

			return nil, fmt.Errorf("trailhead/http/req: %w: failed parsing multipart form: %s", trailhead.ErrBadFormat, err)
		}

		return params.FromValues(r.MultipartForm.Value), nil

	case "application/json":
		b, err := p.readBody(r)
		if err != nil {
			return nil, err
		}

		if len(bytes.TrimSpace(b)) == 0 {
			return nil, nil
		}

		src, err := jsonObject(b)
		if err != nil {
			return nil, fmt.Errorf("trailhead/http/req: %w: request body is not a JSON object: %s", trailhead.ErrBadFormat, err)
		}

		return src, nil

	case "application/yaml", "application/x-yaml", "text/yaml":
		b, err := p.readBody(r)
		if err != nil {
			return nil, err
		}

		src, err := yamlMapping(b)
		if err != nil {
			return nil, fmt.Errorf("trailhead/http/req: %w: request body is not a YAML mapping: %s", trailhead.ErrBadFormat, err)
		}

		return src, nil

	default:
		return nil, nil
	}
}

// readBody reads r.Body, up to the *Parser's limit, and replaces it so it can be read again.
func (p *Parser) readBody(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		if exceeded(err, r.Body) {
			return nil, p.tooLarge()
		}

		return nil, fmt.Errorf("trailhead/http/req: %w: failed reading request body: %s", trailhead.ErrUnexpected, err)
	}

	r.Body = io.NopCloser(bytes.NewReader(b))

	return b, nil
}

func (p *Parser) tooLarge() error {
	return fmt.Errorf("trailhead/http/req: %w: request body exceeds %d bytes", trailhead.ErrNotValid, p.maxBodyBytes)
}

// exceeded reports whether err, or the next read from body, is an [http.MaxBytesError].
// Parsers that wrap read errors without %w still leave the limit error on body.
func exceeded(err error, body io.Reader) bool {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return true
	}

	_, err = body.Read(make([]byte, 1))
	return errors.As(err, &mbe)
}

// jsonObject decodes a JSON object into a Source, in the order its keys appear in.
// Numbers decode into json.Number. A null body is an empty Source.
func jsonObject(b []byte) (params.Source, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if tok == nil {
		return nil, nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("found %v", tok)
	}

	var src params.Source
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("found key %v", tok)
		}

		var val any
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}

		src = append(src, params.Pair{Key: key, Value: val})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return src, nil
}

// yamlMapping decodes a YAML mapping into a Source, in the order its keys appear in.
// An empty or null document is an empty Source.
func yamlMapping(b []byte) (params.Source, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("found %s", root.Tag)
	}

	src := make(params.Source, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		var val any
		if err := root.Content[i+1].Decode(&val); err != nil {
			return nil, err
		}

		src = append(src, params.Pair{Key: root.Content[i].Value, Value: val})
	}

	return src, nil
}

// ParseBody decodes into a pointer to a struct the JSON data in body.
// If successful, ParseBody runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
//
// ParseBody reads all of body, which can't be read from again.
// Use a [io.TeeReader] if body needs to be reused after calling ParseBody.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("trailhead/http/req: %w: ParseBody called with non-pointer: %s", trailhead.ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("trailhead/http/req: %w: failed decoding request body: %s", trailhead.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("trailhead/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// Decode decodes the values bound in ps into a pointer to a struct,
// matching "schema" struct tags against raw and canonical keys alike.
// If successful, Decode runs validation against the contents,
// returning an ErrNotValid if the data fails validation rules.
func (p *Parser) Decode(ps *params.Params, structPtr any) error {
	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("trailhead/http/req: %w: Decode called with %T, not a pointer to a struct", trailhead.ErrBadAny, structPtr)
	}

	if err := p.decoder.Decode(structPtr, toValues(ps)); err != nil {
		return fmt.Errorf("trailhead/http/req: failed decoding request params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("trailhead/http/req: %T failed validation: %w", structPtr, err)
	}

	return nil
}

// toValues flattens the scalar values in ps into url.Values,
// set under both each raw key and its canonical form.
func toValues(ps *params.Params) url.Values {
	vals := make(url.Values)
	if ps == nil {
		return vals
	}

	c := ps.Caster()
	for k, v := range ps.Values() {
		var strs []string
		if list, ok := v.([]any); ok {
			for _, item := range list {
				if s, err := c.String(item); err == nil {
					strs = append(strs, s)
				}
			}
		} else if s, err := c.String(v); err == nil {
			strs = []string{s}
		}

		if strs == nil {
			continue
		}

		vals[k] = strs
		if canon := params.Canonical(k); canon != k {
			if _, ok := vals[canon]; !ok {
				vals[canon] = strs
			}
		}
	}

	return vals
}
