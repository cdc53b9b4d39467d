package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/middleware"
	"github.com/xy-planning-network/trailhead/logger"
	"github.com/xy-planning-network/trailhead/ranger"
)

func newTestRanger(t *testing.T, env trailhead.Environment) *ranger.Ranger {
	t.Helper()

	rng, err := newRanger(
		ranger.WithEnv(env.String()),
		ranger.WithLogger(logger.NewLogger(logger.WithLogger(log.New(io.Discard, "", 0)))),
	)
	require.Nil(t, err)

	return rng
}

func Test(t *testing.T) {
	rng := newTestRanger(t, trailhead.Testing)

	tcs := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		status      int
		contains    []string
	}{
		{"Root", http.MethodGet, "/", "", "", http.StatusOK, []string{"Pacific Crest", "TESTING"}},
		{"Trail", http.MethodGet, "/trails?name=Appalachian&length=3524.9", "", "", http.StatusOK, []string{"<h1>Appalachian</h1>", "3524.9 km"}},
		{"Trail-No-Length", http.MethodGet, "/trails?name=Appalachian", "", "", http.StatusOK, []string{"Length unknown", "Name=Appalachian"}},
		{"Trail-Bad-Length", http.MethodGet, "/trails?name=Appalachian&length=long", "", "", http.StatusNotFound, nil},
		{"Trail-Missing-Name", http.MethodGet, "/trails", "", "", http.StatusNotFound, nil},
		{"Elevation-Query", http.MethodGet, "/trails/elevation?gain[]=120&gain[]=85&gain[]=310", "", "", http.StatusOK, []string{`{"gain":515}`}},
		{"Elevation-JSON", http.MethodPost, "/trails/elevation", "application/json", `{"gain": [1.5, "2,5"]}`, http.StatusOK, []string{`{"gain":4}`}},
		{"Elevation-Scalar", http.MethodGet, "/trails/elevation?gain=120", "", "", http.StatusNotFound, nil},
		{"Params", http.MethodGet, "/params?search=Pacific+Crest&password=hunter2", "", "", http.StatusOK, []string{"GET /params", "search", trailhead.LogMaskVal}},
		{"Not-Found", http.MethodGet, "/not-found", "", "", http.StatusNotFound, nil},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			if tc.contentType != "" {
				r.Header.Set("Content-Type", tc.contentType)
			}

			// Act
			rng.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.status, w.Code)
			for _, s := range tc.contains {
				require.Contains(t, w.Body.String(), s)
			}

			if tc.status == http.StatusOK {
				require.Empty(t, w.Header().Get(middleware.MessageHeader))
			}
		})
	}
}

func TestProductionHidesParams(t *testing.T) {
	// Arrange
	rng := newTestRanger(t, trailhead.Production)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/params", nil)

	// Act
	rng.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}
