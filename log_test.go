package trailhead_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
)

func TestMask(t *testing.T) {
	for _, tc := range []struct {
		name string
		vals url.Values
		key  string
		want url.Values
	}{
		{"zero", url.Values{}, "", url.Values{}},
		{
			"mismatch",
			url.Values{"password": []string{"hunter2"}},
			"passwrod",
			url.Values{"password": []string{"hunter2"}},
		},
		{
			"match",
			url.Values{"password": []string{"hunter2"}},
			"password",
			url.Values{"password": []string{trailhead.LogMaskVal}},
		},
		{
			"squash-multiple",
			url.Values{"password": []string{"hunter2", "hunter3"}},
			"password",
			url.Values{"password": []string{trailhead.LogMaskVal}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			trailhead.Mask(tc.vals, tc.key)
			require.Equal(t, tc.want, tc.vals)
		})
	}
}

func TestIsMasked(t *testing.T) {
	for _, tc := range []struct {
		key  string
		want bool
	}{
		{"", false},
		{"name", false},
		{"password", true},
		{"Password", true},
		{"user_password", true},
		{"apiToken", true},
		{"client_secret", true},
	} {
		t.Run(tc.key, func(t *testing.T) {
			require.Equal(t, tc.want, trailhead.IsMasked(tc.key))
		})
	}
}
