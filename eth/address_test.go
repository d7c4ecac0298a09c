package eth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumAddress(t *testing.T) {
	tests := map[string]string{
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"fb6916095ca1df60bb79ce92ce3ea74c37c5d359":   "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xFB6916095CA1DF60BB79CE92CE3EA74C37C5D359": "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	}
	for input, expected := range tests {
		address, err := ChecksumAddress(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, address.Hex())
	}
}

func TestChecksumAddressInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"0x",
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1bea",
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaedaa",
		"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beazz",
	} {
		_, err := ChecksumAddress(input)
		assert.ErrorIs(t, err, ErrInvalidAddress, input)
	}
}
