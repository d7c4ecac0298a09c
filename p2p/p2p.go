/*
Package p2p has supporting libp2p functionality.
*/
package p2p

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"

	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/pkg/errors"
)

// GenerateIdentity creates a new secp256k1 libp2p key and the peer id belonging to it.
func GenerateIdentity() (priv crypto.PrivKey, peerID peer.ID, err error) {
	priv, _, err = crypto.GenerateSecp256k1Key(rand.Reader)
	if err != nil {
		err = errors.Wrap(err, "failed to generate private key")
		return
	}
	peerID, err = peer.IDFromPrivateKey(priv)
	return
}

// WriteIdentity writes the hex encoded raw private key to privKeyPath and the
// peer id to peerIDPath. Both files are only readable by the owner.
func WriteIdentity(priv crypto.PrivKey, privKeyPath, peerIDPath string) (peerID peer.ID, err error) {
	raw, err := priv.Raw()
	if err != nil {
		err = errors.Wrap(err, "failed to get raw private key")
		return
	}
	if err = writePrivateFile(privKeyPath, []byte(hex.EncodeToString(raw))); err != nil {
		err = errors.Wrap(err, "failed to write private key to file")
		return
	}
	peerID, err = peer.IDFromPrivateKey(priv)
	if err != nil {
		err = errors.Wrap(err, "failed to create peer ID from private key")
		return
	}
	if err = writePrivateFile(peerIDPath, []byte(peerID.String())); err != nil {
		err = errors.Wrap(err, "failed to write peer ID to file")
	}
	return
}

// writePrivateFile writes data to path with mode 0600, also when path already exists.
func writePrivateFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if err = f.Chmod(0600); err != nil {
		f.Close()
		return err
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PeerIDFromKeyFile derives the peer id from a key file written by WriteIdentity.
func PeerIDFromKeyFile(privKeyPath string) (peerID peer.ID, err error) {
	data, err := os.ReadFile(privKeyPath)
	if err != nil {
		return
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		err = errors.Wrapf(err, "%s does not contain a hex encoded key", privKeyPath)
		return
	}
	priv, err := crypto.UnmarshalSecp256k1PrivateKey(raw)
	if err != nil {
		return
	}
	return peer.IDFromPrivateKey(priv)
}
