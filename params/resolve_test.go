package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead"
	"github.com/xy-planning-network/trailhead/params"
)

func TestResolve(t *testing.T) {
	tcs := []struct {
		name     string
		accessor string
		args     []any
		expected params.Call
	}{
		{"Get", "getOnYourFace", nil, params.Get{Key: "OnYourFace"}},
		{"Get-Default", "getC", []any{"c"}, params.Get{Key: "C", Default: "c", HasDefault: true}},
		{"Get-Nil-Default", "getC", []any{nil}, params.Get{Key: "C", HasDefault: true}},
		{"Get-Underscore", "getOn_your_face", nil, params.Get{Key: "On_your_face"}},
		{"Get-Digit", "getOnYourFace2", nil, params.Get{Key: "OnYourFace2"}},
		{"Has", "hasIAmYourMother", nil, params.Has{Key: "IAmYourMother"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := params.Resolve(tc.accessor, tc.args...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
			require.Equal(t, tc.expected.Param(), actual.Param())
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tcs := []struct {
		name     string
		accessor string
		args     []any
		err      error
	}{
		{"Get-Too-Many", "getMechaSalmon", []any{"default", "too many parameters"}, params.ErrArgumentCount},
		{"Has-Too-Many", "hasMechaSalmon", []any{"too many parameters"}, params.ErrArgumentCount},
		{"Unknown-Prefix", "superMechaSalmon", []any{"too many parameters"}, params.ErrUnknownAccessor},
		{"Empty", "", nil, params.ErrUnknownAccessor},
		{"No-Tail", "get", nil, params.ErrUnknownAccessor},
		{"Lower-Tail", "getter", nil, params.ErrUnknownAccessor},
		{"Hash", "hashKey", nil, params.ErrUnknownAccessor},
		{"Bad-Character", "getOn-Your-Face", nil, params.ErrUnknownAccessor},
		{"Upper-Prefix", "GetA", nil, params.ErrUnknownAccessor},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := params.Resolve(tc.accessor, tc.args...)

			// Assert
			require.Nil(t, actual)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	require.ErrorIs(t, params.ErrAmbiguousParameter, trailhead.ErrNotValid)
	require.ErrorIs(t, params.ErrArgumentCount, trailhead.ErrBadAny)
	require.ErrorIs(t, params.ErrMissingParameter, trailhead.ErrMissingData)
	require.ErrorIs(t, params.ErrUnknownAccessor, trailhead.ErrNotImplemented)
	require.NotErrorIs(t, params.ErrUnknownAccessor, params.ErrArgumentCount)
}
