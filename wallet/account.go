package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Account is an Ethereum account backed by a private key held in memory.
type Account struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewAccount generates a new random account.
func NewAccount() (*Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate private key")
	}
	return AccountFromKey(key), nil
}

// AccountFromKey wraps an existing private key.
func AccountFromKey(key *ecdsa.PrivateKey) *Account {
	return &Account{
		privateKey: key,
		address:    crypto.PubkeyToAddress(key.PublicKey),
	}
}

// LoadAccount loads an account from a hex encoded private key, with or without 0x prefix.
func LoadAccount(hexKey string) (*Account, error) {
	key, err := crypto.HexToECDSA(trimHexPrefix(strings.TrimSpace(hexKey)))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "%s", err)
	}
	account := AccountFromKey(key)
	log.Debug().Str("address", account.address.Hex()).Msg("account loaded")
	return account, nil
}

// Address returns the address of the account
func (a *Account) Address() common.Address {
	return a.address
}

// PrivateKey returns the private key of the account
func (a *Account) PrivateKey() *ecdsa.PrivateKey {
	return a.privateKey
}

// PrivateKeyHex returns the raw private key as lowercase hex without prefix.
func (a *Account) PrivateKeyHex() string {
	return hex.EncodeToString(crypto.FromECDSA(a.privateKey))
}

// SignTx signs a transaction for the given chain using EIP-155 replay protection.
func (a *Account) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.NewEIP155Signer(chainID), a.privateKey)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
