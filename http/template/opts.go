package template

import "io/fs"

// The ParserOptFn applies functional options to a *Parse when constructing it.
type ParserOptFn func(*Parse)

// WithFn encloses a named function so it can be added to a *Parse's function map.
func WithFn(name string, fn any) ParserOptFn {
	return func(p *Parse) {
		p.AddFn(name, fn)
	}
}

func WithFS(filesys fs.FS) ParserOptFn {
	return func(p *Parse) {
		p.fs = filesys
	}
}

// The RendererOptFn applies functional options to a *Renderer when constructing it.
type RendererOptFn func(*Renderer)

// WithLayouts sets files parsed ahead of every file rendered,
// so the first layout is the template executed.
func WithLayouts(fps ...string) RendererOptFn {
	return func(r *Renderer) {
		r.layouts = append(r.layouts, fps...)
	}
}
