package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12.50", 1250},
		{"0.01", 1},
		{"100", 10000},
		{"-3.25", -325},
		{"0", 0},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseAmountRejections(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrMalformedAmount},
		{"abc", ErrMalformedAmount},
		{"1.2.3", ErrMalformedAmount},
		{"0.001", ErrTooPrecise},
		{"99999999999999999999", ErrAmountTooLarge},
	}
	for _, tc := range cases {
		_, err := ParseAmount(tc.in)
		assert.ErrorIs(t, err, tc.want, tc.in)
	}
}

func TestFormatAmountRoundTrip(t *testing.T) {
	for _, units := range []int64{0, 1, 99, 100, 1250, -325} {
		parsed, err := ParseAmount(FormatAmount(units))
		require.NoError(t, err)
		assert.Equal(t, units, parsed)
	}
}
