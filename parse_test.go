package frac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1/2", "1/2"},
		{"10/20", "1/2"},
		{"3/-4", "-3/4"},
		{"-3/-4", "3/4"},
		{" 7 ", "7/1"},
		{"+5/ 10", "1/2"},
		{"0.25", "1/4"},
		{"-1.5", "-3/2"},
		{"0.5/0.25", "2/1"},
		{"0/9", "0/1"},
		{"123456789012345678901234567890/10", "12345678901234567890123456789/1"},
	}
	for _, tc := range cases {
		f, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, f.String(), tc.in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "/", "a/b", "1/", "/2", "1/2/3", "1e3", "0x10", "1..2", "."} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrSyntax, in)
	}

	_, err := Parse("1/0")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Parse("1/0.00")
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestParseRoundTrip(t *testing.T) {
	for n := int64(-9); n <= 9; n++ {
		for d := int64(1); d <= 9; d++ {
			f := mustFrac(t, n, d)
			got, err := Parse(f.String())
			require.NoError(t, err)
			assert.True(t, got.Equal(f), "%s", f)
		}
	}
}
