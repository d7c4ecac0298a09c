package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threefoldfoundation/tft/tools/evmtools/wallet"
)

func parseOutput(t *testing.T, out string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		label, value, found := strings.Cut(line, ": ")
		require.True(t, found, line)
		values[label] = value
	}
	return values
}

func TestCreateAddress(t *testing.T) {
	out, err := execute(t, NewCreateAddressCommand())
	require.NoError(t, err)

	values := parseOutput(t, out)
	account, err := wallet.LoadAccount(values["Private key"])
	require.NoError(t, err)
	assert.Equal(t, account.Address().Hex(), values["Address"])
	assert.NotContains(t, values, "Keystore")
}

func TestCreateAddressKeystoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, NewCreateAddressCommand(), "--keystore", dir, "--password", "correct-password", "--light")
	require.NoError(t, err)

	values := parseOutput(t, out)
	path := values["Keystore"]
	require.NotEmpty(t, path)
	assert.Equal(t, dir, filepath.Dir(path))
	_, err = os.Stat(path)
	require.NoError(t, err)

	key, err := execute(t, NewExposeKeyCommand(), path, "correct-password")
	require.NoError(t, err)
	assert.Equal(t, values["Private key"]+"\n", key)
}

func TestCreateAddressKeystoreNeedsPassword(t *testing.T) {
	out, err := execute(t, NewCreateAddressCommand(), "--keystore", t.TempDir())
	assert.ErrorIs(t, err, wallet.ErrNoPassword)
	assert.Empty(t, out)
}
