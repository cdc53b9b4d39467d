package template_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/template"
	tt "github.com/xy-planning-network/trailhead/http/template/templatetest"
	"github.com/xy-planning-network/trailhead/params"
)

func TestRendererRender(t *testing.T) {
	r := tt.NewRenderer(
		tt.NewMockFile("greet.tmpl", []byte(`{{ if .IsSet "name" }}Hello, {{ .Get "name" }}!{{ else }}Hello?{{ end }}`)),
		tt.NewMockFile("strict.tmpl", []byte(`{{ .Get "name" }}`)),
		tt.NewMockFile("broken.tmpl", []byte(`{{ .Get "name" `)),
	)

	tcs := []struct {
		name     string
		file     string
		values   map[string]any
		expected string
		err      error
	}{
		{"Bound", "greet.tmpl", map[string]any{"name": "<Ford>"}, "Hello, &lt;Ford&gt;!", nil},
		{"Nil-Is-Not-Set", "greet.tmpl", map[string]any{"name": nil}, "Hello?", nil},
		{"Not-Bound", "greet.tmpl", nil, "Hello?", nil},
		{"Strict-Not-Bound", "strict.tmpl", map[string]any{"other": 1}, "", template.ErrValueNotBound},
		{"Not-Found", "missing.tmpl", nil, "", template.ErrTemplateNotFound},
		{"Empty-Name", "", nil, "", template.ErrTemplateNotFound},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)

			// Act
			err := r.Render(b, tc.file, tc.values)

			// Assert
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.expected, b.String())
		})
	}

	t.Run("Parse-Failure", func(t *testing.T) {
		// Arrange
		b := new(bytes.Buffer)

		// Act
		err := r.Render(b, "broken.tmpl", nil)

		// Assert
		require.NotNil(t, err)
		require.Zero(t, b.Len())
	})
}

func TestRendererNotFoundIsNotExist(t *testing.T) {
	// Arrange
	r := tt.NewRenderer()

	// Act
	err := r.Render(new(bytes.Buffer), "missing.tmpl", nil)

	// Assert
	require.ErrorIs(t, err, trailhead.ErrNotExist)
}

func TestRendererWithLayouts(t *testing.T) {
	// Arrange
	p := tt.NewParser(
		tt.NewMockFile("layout.tmpl", []byte(`<main>{{ template "content" . }}</main>`)),
		tt.NewMockFile("page.tmpl", []byte(`{{ define "content" }}{{ .Get "title" }}{{ end }}`)),
	)
	r := template.NewRenderer(p, template.WithLayouts("layout.tmpl"))
	b := new(bytes.Buffer)

	// Act
	err := r.Render(b, "page.tmpl", map[string]any{"title": "Towels"})

	// Assert
	require.Nil(t, err)
	require.Equal(t, "<main>Towels</main>", b.String())
	require.Same(t, p, r.Parser())
}

func TestRendererParams(t *testing.T) {
	// Arrange
	r := tt.NewRenderer()
	p := params.New(params.Source{{Key: "page", Value: "2"}, {Key: "api_token", Value: "s3cret"}})
	b := new(bytes.Buffer)

	// Act
	err := r.Render(b, "tmpl/params.tmpl", map[string]any{"params": p, "method": "GET", "path": "/search"})

	// Assert
	require.Nil(t, err)
	require.Contains(t, b.String(), "<p>GET /search</p>")
	require.Contains(t, b.String(), "Page=2, ApiToken=xxxxxx")
	require.Contains(t, b.String(), "<li>page</li>")
	require.Contains(t, b.String(), "<li>api_token</li>")
	require.NotContains(t, b.String(), "s3cret")
}

func TestRendererConcurrentScopes(t *testing.T) {
	// Arrange
	r := tt.NewRenderer(
		tt.NewMockFile("id.tmpl", []byte(`{{ .Get "id" }}{{ if .IsSet "extra" }}+{{ .Get "extra" }}{{ end }}`)),
	)

	const n = 64
	var (
		wg   sync.WaitGroup
		outs = make([]string, n)
		errs = make([]error, n)
	)

	// Act
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			values := map[string]any{"id": i}
			if i%2 == 0 {
				values["extra"] = fmt.Sprintf("even-%d", i)
			}

			b := new(bytes.Buffer)
			errs[i] = r.Render(b, "id.tmpl", values)
			outs[i] = b.String()
		}(i)
	}
	wg.Wait()

	// Assert
	for i := 0; i < n; i++ {
		require.Nil(t, errs[i])

		expected := fmt.Sprint(i)
		if i%2 == 0 {
			expected += fmt.Sprintf("+even-%d", i)
		}

		require.Equal(t, expected, outs[i])
	}
}

func TestRendererNestedRender(t *testing.T) {
	// Arrange
	var r *template.Renderer
	p := tt.NewParser(
		tt.NewMockFile("outer.tmpl", []byte(`{{ .Get "who" }}[{{ inner }}]{{ .Get "who" }}`)),
		tt.NewMockFile("inner.tmpl", []byte(`{{ .Get "who" }}{{ if .IsSet "secret" }}!{{ end }}`)),
	)
	p.AddFn("inner", func() (string, error) {
		b := new(bytes.Buffer)
		if err := r.Render(b, "inner.tmpl", map[string]any{"who": "inner"}); err != nil {
			return "", err
		}

		return b.String(), nil
	})
	r = template.NewRenderer(p)
	b := new(bytes.Buffer)

	// Act
	err := r.Render(b, "outer.tmpl", map[string]any{"who": "outer", "secret": true})

	// Assert
	require.Nil(t, err)
	require.Equal(t, "outer[inner]outer", b.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRendererWriteFailure(t *testing.T) {
	// Arrange
	r := tt.NewRenderer(tt.NewMockFile("a.tmpl", []byte("a")))

	// Act
	err := r.Render(failWriter{}, "a.tmpl", nil)

	// Assert
	require.NotNil(t, err)
	require.True(t, strings.Contains(err.Error(), "closed"))
}
