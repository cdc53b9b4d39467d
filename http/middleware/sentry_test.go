package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/middleware"
)

func TestReportPanic(t *testing.T) {
	// Arrange + Act
	actual := middleware.ReportPanic(trailhead.Development)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		h        http.HandlerFunc
		expected int
	}{
		{"No-Panic", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusAccepted) }, http.StatusAccepted},
		{"Panic", func(w http.ResponseWriter, r *http.Request) { panic("lost the trail") }, http.StatusInternalServerError},
		{"Panic-Error", func(w http.ResponseWriter, r *http.Request) { panic(fmt.Errorf("lost the trail")) }, http.StatusInternalServerError},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

			// Act
			require.NotPanics(t, func() {
				middleware.ReportPanic(trailhead.Testing)(tc.h).ServeHTTP(w, r)
			})

			// Assert
			require.Equal(t, tc.expected, w.Code)
		})
	}

	t.Run("Abort", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		h := func(w http.ResponseWriter, r *http.Request) { panic(http.ErrAbortHandler) }

		// Act + Assert
		require.Panics(t, func() {
			middleware.ReportPanic(trailhead.Testing)(http.HandlerFunc(h)).ServeHTTP(w, r)
		})
	})
}
