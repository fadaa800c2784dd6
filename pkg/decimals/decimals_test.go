package decimals

import (
	"testing"

	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEther(t *testing.T) {
	type testcase struct {
		name        string
		input       string
		expected    uint128.Uint128
		expectedErr error
	}
	testcases := []testcase{
		{
			name:     "mint fee",
			input:    "0.0000092",
			expected: uint128.From64(9_200_000_000_000),
		},
		{
			name:     "one wei",
			input:    "0.000000000000000001",
			expected: uint128.From64(1),
		},
		{
			name:     "whole ether",
			input:    "2",
			expected: uint128.From64(2_000_000_000_000_000_000),
		},
		{
			name:     "zero",
			input:    "0",
			expected: uint128.Zero,
		},
		{
			name:        "below one wei",
			input:       "0.0000000000000000001",
			expectedErr: errs.InvalidArgument,
		},
		{
			name:        "negative",
			input:       "-1",
			expectedErr: errs.InvalidArgument,
		},
		{
			name:        "not a number",
			input:       "ten",
			expectedErr: errs.InvalidArgument,
		},
		{
			name:        "overflow",
			input:       "1000000000000000000000",
			expectedErr: errs.OverflowUint128,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			actual, err := ParseEther(tc.input)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "0.0000092", FormatEther(uint128.From64(9_200_000_000_000)))
	assert.Equal(t, "0", FormatEther(uint128.Zero))
	assert.Equal(t, "1.5", FormatEther(uint128.From64(1_500_000_000_000_000_000)))
}

func TestParseUnitsRoundTrip(t *testing.T) {
	for _, s := range []string{"0.045", "0.00000001", "12.000001"} {
		amount, err := ParseUnits(s, EtherDecimals)
		require.NoError(t, err)
		assert.Equal(t, s, FormatUnits(amount, EtherDecimals))
	}
}
