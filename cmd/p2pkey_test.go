package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threefoldfoundation/tft/tools/evmtools/p2p"
)

func TestP2PKey(t *testing.T) {
	dir := t.TempDir()
	privKeyPath := filepath.Join(dir, "p2p_priv.txt")
	peerIDPath := filepath.Join(dir, "p2p_peer_id.txt")

	out, err := execute(t, NewP2PKeyCommand(), "--privKeyPath", privKeyPath, "--peerIDPath", peerIDPath)
	require.NoError(t, err)

	peerID := strings.TrimPrefix(strings.TrimSpace(out), "Peer ID: ")
	written, err := os.ReadFile(peerIDPath)
	require.NoError(t, err)
	assert.Equal(t, peerID, string(written))

	fromKey, err := p2p.PeerIDFromKeyFile(privKeyPath)
	require.NoError(t, err)
	assert.Equal(t, peerID, fromKey.String())
}

func TestP2PKeyRequiresPaths(t *testing.T) {
	_, err := execute(t, NewP2PKeyCommand(), "--privKeyPath", filepath.Join(t.TempDir(), "priv"))
	assert.Error(t, err)
}
