package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead/http/middleware"
	"github.com/xy-planning-network/trailhead/http/req"
	"github.com/xy-planning-network/trailhead/logger"
	"github.com/xy-planning-network/trailhead/params"
)

func TestInjectParams(t *testing.T) {
	tcs := []struct {
		name        string
		target      string
		contentType string
		body        string
		parser      *req.Parser
		status      int
		expected    map[string]any
	}{
		{"Query", "/?id=5&name=wren", "", "", nil, http.StatusOK, map[string]any{"id": "5", "name": "wren"}},
		{"Form", "/?id=5", "application/x-www-form-urlencoded", "id=6&kind=owl", nil, http.StatusOK, map[string]any{"id": "6", "kind": "owl"}},
		{"Bad-Query", "/?id=%zz", "", "", nil, http.StatusBadRequest, nil},
		{"Bad-JSON", "/", "application/json", "[1, 2]", nil, http.StatusBadRequest, nil},
		{
			"Too-Large",
			"/",
			"application/x-www-form-urlencoded",
			"id=" + strings.Repeat("9", 64),
			req.NewParser(req.WithMaxBodyBytes(16)),
			http.StatusRequestEntityTooLarge,
			nil,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			l := new(testLogger)
			w := httptest.NewRecorder()
			method := http.MethodGet
			if tc.body != "" {
				method = http.MethodPost
			}

			r := httptest.NewRequest(method, tc.target, strings.NewReader(tc.body))
			if tc.contentType != "" {
				r.Header.Set("Content-Type", tc.contentType)
			}

			var actual *params.Params

			// Act
			middleware.InjectParams(tc.parser, l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				actual, _ = params.FromContext(rx.Context())
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.status, w.Code)
			if tc.status != http.StatusOK {
				require.Nil(t, actual)
				require.Len(t, l.entries, 1)
				require.Equal(t, logger.LogLevelWarn, l.entries[0].level)
				return
			}

			require.NotNil(t, actual)
			require.Empty(t, l.entries)
			require.Equal(t, tc.expected, actual.Values())
		})
	}
}
