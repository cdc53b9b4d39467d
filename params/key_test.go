package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead/params"
)

func TestCanonical(t *testing.T) {
	tcs := []struct {
		ident    string
		expected string
	}{
		{"", ""},
		{"_", ""},
		{"a", "a"},
		{"B", "b"},
		{"on_your_face", "on_your_face"},
		{"OnYourFace", "on_your_face"},
		{"onYourFace", "on_your_face"},
		{"OnyourFace", "onyour_face"},
		{"on_your_face2", "on_your_face2"},
		{"OnYourFace2", "on_your_face2"},
		{"IAmYourFather", "i_am_your_father"},
		{"iAmYour_mother", "i_am_your_mother"},
		{"__double__under", "double_under"},
		{"ÆbleGrød", "æble_grød"},
	}

	for _, tc := range tcs {
		t.Run(tc.ident, func(t *testing.T) {
			require.Equal(t, tc.expected, params.Canonical(tc.ident))
		})
	}
}

func TestUpperCamel(t *testing.T) {
	tcs := []struct {
		ident    string
		expected string
	}{
		{"a", "A"},
		{"B", "B"},
		{"s_m", "SM"},
		{"Nitrat", "Nitrat"},
		{"on_your_face2", "OnYourFace2"},
		{"iAmYour_mother", "IAmYourMother"},
		{"æble_grød", "ÆbleGrød"},
	}

	for _, tc := range tcs {
		t.Run(tc.ident, func(t *testing.T) {
			require.Equal(t, tc.expected, params.UpperCamel(tc.ident))
		})
	}
}
