package ranger_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/cast"
	"github.com/xy-planning-network/trailhead/http/middleware"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/http/router"
	"github.com/xy-planning-network/trailhead/logger"
	"github.com/xy-planning-network/trailhead/params"
	"github.com/xy-planning-network/trailhead/ranger"
)

func quietLogger() logger.Logger {
	return logger.NewLogger(logger.WithLogger(log.New(io.Discard, "", 0)))
}

func TestNew(t *testing.T) {
	// Arrange
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("PORT", "8080")
	t.Setenv("BASE_URL", "https://trailhead.example.com")
	t.Setenv("SERVER_READ_TIMEOUT", "1s")

	// Act
	rng, err := ranger.New(ranger.WithLogger(quietLogger()))

	// Assert
	require.Nil(t, err)
	require.Equal(t, trailhead.Staging, rng.Env())
	require.Equal(t, ":8080", rng.Server().Addr)
	require.Equal(t, time.Second, rng.Server().ReadTimeout)
	require.Equal(t, ranger.DefaultServerWriteTimeout, rng.Server().WriteTimeout)
	require.Equal(t, "https://trailhead.example.com", rng.URL().String())
	require.NotNil(t, rng.Parser())
	require.NotNil(t, rng.Renderer())
	require.NotNil(t, rng.Visitors())
	require.NotNil(t, rng.Router)
	require.Same(t, rng.Router, rng.Server().Handler)
}

func TestNewOptions(t *testing.T) {
	// Arrange
	l := quietLogger()
	p := req.NewParser()
	srv := &http.Server{Addr: ":9999"}
	rt := router.New(trailhead.Testing, nil)
	u, err := url.Parse("https://example.com")
	require.Nil(t, err)

	// Act
	rng, err := ranger.New(
		ranger.WithEnv("TESTING"),
		ranger.WithLogger(l),
		ranger.WithParser(p),
		ranger.WithServer(srv),
		ranger.WithRouter(rt),
		ranger.WithURL(u),
	)

	// Assert
	require.Nil(t, err)
	require.Equal(t, trailhead.Testing, rng.Env())
	require.Equal(t, l, rng.Logger())
	require.Same(t, p, rng.Parser())
	require.Same(t, srv, rng.Server())
	require.Same(t, rt, rng.Router)
	require.Same(t, rt, srv.Handler)
	require.Same(t, u, rng.URL())
}

func TestNewBadOptions(t *testing.T) {
	tcs := []struct {
		name string
		opt  ranger.RangerOption
	}{
		{"Nil-Context", ranger.WithContext(nil)},
		{"Nil-Logger", ranger.WithLogger(nil)},
		{"Nil-Parser", ranger.WithParser(nil)},
		{"Nil-Renderer", ranger.WithRenderer(nil)},
		{"Nil-Router", ranger.WithRouter(nil)},
		{"Nil-Server", ranger.WithServer(nil)},
		{"Nil-URL", ranger.WithURL(nil)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			rng, err := ranger.New(ranger.WithLogger(quietLogger()), tc.opt)

			// Assert
			require.Nil(t, rng)
			require.ErrorIs(t, err, trailhead.ErrBadConfig)
		})
	}
}

func TestRangerAction(t *testing.T) {
	// Arrange
	rng, err := ranger.New(ranger.WithEnv("TESTING"), ranger.WithLogger(quietLogger()))
	require.Nil(t, err)

	rng.Handle(router.Route{
		Path:   "/trails",
		Method: http.MethodGet,
		Handler: rng.Action(func(w http.ResponseWriter, r *http.Request, p *params.Params) error {
			id, err := p.GetAs("id", cast.AsInteger)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "trail %d", id)
			return nil
		}),
	})

	tcs := []struct {
		name     string
		target   string
		status   int
		routed   bool
		expected string
	}{
		{"Found", "/trails?id=12", http.StatusOK, true, "trail 12"},
		{"Not-Integer", "/trails?id=twelve", http.StatusNotFound, true, ""},
		{"Missing", "/trails", http.StatusNotFound, true, ""},
		{"Unrouted", "/summits", http.StatusNotFound, false, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			// Act
			rng.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.status, w.Code)
			require.Equal(t, tc.routed, w.Header().Get(middleware.RequestIDHeader) != "")
			if tc.expected != "" {
				require.Equal(t, tc.expected, w.Body.String())
			}
		})
	}
}

func TestRangerGuide(t *testing.T) {
	// Arrange
	ctx, cancel := context.WithCancel(context.Background())
	rng, err := ranger.New(
		ranger.WithContext(ctx),
		ranger.WithLogger(quietLogger()),
		ranger.WithServer(&http.Server{Addr: "127.0.0.1:0"}),
	)
	require.Nil(t, err)

	done := make(chan error, 1)

	// Act
	go func() { done <- rng.Guide() }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Assert
	select {
	case err := <-done:
		require.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Guide did not stop after its context was cancelled")
	}
}
