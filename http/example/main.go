/*
Package main provides a toy example use of trailhead's http stack.

Try out:

	/
	/trails?name=Appalachian&length=3524.9
	/trails?name=Appalachian&length=long
	/trails/elevation?gain[]=120&gain[]=85&gain[]=310
	/params?search=Pacific+Crest&password=hunter2
*/
package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/xy-planning-network/trailhead/cast"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/http/template"
	"github.com/xy-planning-network/trailhead/params"
	"github.com/xy-planning-network/trailhead/ranger"
)

//go:embed tmpl/*.tmpl
var files embed.FS

const (
	// these refer to templates that should be available for rendering
	layout  = "tmpl/layout.tmpl"
	index   = "tmpl/index.tmpl"
	trail   = "tmpl/trail.tmpl"
	debugPg = "tmpl/params.tmpl"
)

// Handler shares the initialized Ranger and a renderer for layout pages across all example responses.
type Handler struct {
	*ranger.Ranger
	pages *template.Renderer
}

func main() {
	rng, err := newRanger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rng.Guide(); err != nil {
		rng.Logger().Error(err.Error(), nil)
		os.Exit(1)
	}
}

// newRanger configures a *ranger.Ranger serving the example routes.
func newRanger(opts ...ranger.RangerOption) (*ranger.Ranger, error) {
	rng, err := ranger.New(opts...)
	if err != nil {
		return nil, err
	}

	p := template.NewParser(
		template.WithFS(files),
		template.WithFn(template.Env(rng.Env())),
		template.WithFn(template.Nonce()),
		template.WithFn(template.RootURL(rng.URL())),
	)

	h := &Handler{Ranger: rng, pages: template.NewRenderer(p, template.WithLayouts(layout))}

	routes := []router.Route{
		{Path: "/", Method: http.MethodGet, Handler: h.Action(h.root)},
		{Path: "/trails", Method: http.MethodGet, Handler: h.Action(h.trail)},
		{Path: "/trails/elevation", Method: http.MethodGet, Handler: h.Action(h.elevation)},
		{Path: "/trails/elevation", Method: http.MethodPost, Handler: h.Action(h.elevation)},
	}

	if !rng.Env().IsProduction() {
		routes = append(routes, router.Route{Path: "/params", Method: http.MethodGet, Handler: h.Action(h.debug)})
	}

	h.HandleRoutes(routes)

	return rng, nil
}

// root renders a page through the layout.
func (h *Handler) root(w http.ResponseWriter, r *http.Request, p *params.Params) error {
	return h.pages.Render(w, index, map[string]any{
		"trails": []string{"Appalachian", "Continental Divide", "Pacific Crest"},
	})
}

// trail reads parameters through accessors, rendering a 404 if "name" is missing
// or "length" is present but is not a number.
func (h *Handler) trail(w http.ResponseWriter, r *http.Request, p *params.Params) error {
	name, err := p.GetAs("name", cast.AsString)
	if err != nil {
		return err
	}

	length, err := p.GetAsOr("length", cast.AsFloat, nil)
	if err != nil {
		return err
	}

	return h.pages.Render(w, trail, map[string]any{
		"length": length,
		"name":   name,
		"params": p,
	})
}

// elevation sums every gain provided, either as gain[] query params
// or as a JSON array in a JSON body.
func (h *Handler) elevation(w http.ResponseWriter, r *http.Request, p *params.Params) error {
	gains, err := p.GetAs("gain", cast.AsArray)
	if err != nil {
		return err
	}

	list, ok := gains.([]any)
	if !ok {
		return &cast.Error{Value: gains, Type: cast.AsArray}
	}

	var total float64
	for _, g := range list {
		f, err := p.Caster().Cast(cast.AsFloat, g)
		if err != nil {
			return err
		}

		total += f.(float64)
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{"gain": total})
}

// debug lists the bound parameters, masking secrets, with the page embedded in package template.
func (h *Handler) debug(w http.ResponseWriter, r *http.Request, p *params.Params) error {
	return h.Renderer().Render(w, debugPg, map[string]any{
		"method": r.Method,
		"params": p,
		"path":   r.URL.Path,
	})
}
