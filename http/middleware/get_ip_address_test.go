package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		hm       http.Header
		expected string
	}{
		{"No-Match", make(http.Header), "0.0.0.0"},
		{
			"Only-Private-IP",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "192.168.0.0")
				return h
			}(),
			"0.0.0.0",
		},
		{
			"Only-Public-IP",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Forwarded-For", "1.1.1.1")
				return h
			}(),
			"1.1.1.1",
		},
		{
			"Get-Before-Proxy",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Real-Ip", "10.0.0.1,1.1.1.1")
				return h
			}(),
			"1.1.1.1",
		},
		{
			"Get-First-Public",
			func() http.Header {
				h := make(http.Header)
				h.Set("X-Real-Ip", "10.255.255.255,8.8.8.8,1.1.1.1,172.16.0.0")
				return h
			}(),
			"1.1.1.1",
		},
		{"Shared-Address-Space", http.Header{"X-Forwarded-For": {"100.64.0.9"}}, middleware.UnknownIPAddress},
		{"Benchmarking-Range", http.Header{"X-Forwarded-For": {"198.19.0.1"}}, middleware.UnknownIPAddress},
		{"Public-IPv6", http.Header{"X-Forwarded-For": {"2606:4700::1111, fd00::1"}}, "2606:4700::1111"},
		{"Private-IPv6", http.Header{"X-Forwarded-For": {"fd00::1"}}, middleware.UnknownIPAddress},
		{"IPv4-Mapped", http.Header{"X-Real-Ip": {"::ffff:1.1.1.1"}}, "1.1.1.1"},
		{"Garbage", http.Header{"X-Forwarded-For": {"not-an-ip, 1.1.1.1.1"}}, middleware.UnknownIPAddress},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.hm))
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("X-Forwarded-For", "10.0.0.1,1.1.1.1")

	var actual string

	// Act
	middleware.InjectIPAddress()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		actual, _ = rx.Context().Value(trailhead.IpAddrKey).(string)
	})).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "1.1.1.1", actual)
}

func TestClientIP(t *testing.T) {
	tcs := []struct {
		name     string
		header   string
		remote   string
		expected string
	}{
		{"Forwarded", "10.0.0.1, 8.8.8.8", "10.0.0.2:5000", "8.8.8.8"},
		{"Remote-Addr", "", "203.0.113.7:5000", "203.0.113.7"},
		{"Private-Forwarded-Falls-Back", "192.168.1.1", "127.0.0.1:5000", "127.0.0.1"},
		{"Remote-IPv6", "", "[::1]:5000", "::1"},
		{"Remote-Without-Port", "", "203.0.113.7", "203.0.113.7"},
		{"Remote-Garbage", "", "pipe", middleware.UnknownIPAddress},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			r.RemoteAddr = tc.remote
			if tc.header != "" {
				r.Header.Set("X-Forwarded-For", tc.header)
			}

			// Act
			actual := middleware.ClientIP(r)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}
