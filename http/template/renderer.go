package template

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// A Renderer executes templates against a fresh *Scope for each call to Render.
// A Renderer is safe for concurrent use.
type Renderer struct {
	parser  Parser
	layouts []string
	pool    sync.Pool
}

// NewRenderer constructs a *Renderer parsing templates with p.
func NewRenderer(p Parser, opts ...RendererOptFn) *Renderer {
	r := &Renderer{
		parser: p,
		pool:   sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Parser returns the Parser r parses templates with.
func (r *Renderer) Parser() Parser { return r.parser }

// Render executes file, bound to values, writing the result to w.
//
// Render returns ErrTemplateNotFound if file does not exist.
// Nothing is written to w unless the template executes successfully.
func (r *Renderer) Render(w io.Writer, file string, values map[string]any) error {
	if !r.parser.Exists(file) {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, file)
	}

	tmpl, err := r.parser.Parse(append(append([]string{}, r.layouts...), file)...)
	if err != nil {
		return fmt.Errorf("failed parsing %s: %w", file, err)
	}

	buf := r.pool.Get().(*bytes.Buffer)
	buf.Reset()
	defer r.pool.Put(buf)

	if err := tmpl.Execute(buf, NewScope(file, values)); err != nil {
		return fmt.Errorf("failed rendering %s: %w", file, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed writing %s: %w", file, err)
	}

	return nil
}
