package wallet

import (
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// DecryptKey decrypts a keystore json document (scrypt or pbkdf2, aes-128-ctr).
// A wrong password results in keystore.ErrDecrypt.
func DecryptKey(keyjson []byte, password string) (*Account, error) {
	key, err := keystore.DecryptKey(keyjson, password)
	if err != nil {
		return nil, err
	}
	return AccountFromKey(key.PrivateKey), nil
}

// DecryptKeyFile reads and decrypts the keystore file at path.
func DecryptKeyFile(path, password string) (*Account, error) {
	keyjson, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keystore file")
	}
	account, err := DecryptKey(keyjson, password)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decrypt %s", path)
	}
	log.Debug().Str("file", path).Str("address", account.Address().Hex()).Msg("keystore decrypted")
	return account, nil
}

// StoreKey encrypts the account with password into a new keystore file in dir
// and returns the path of that file. Light uses the cheap scrypt parameters.
func StoreKey(dir string, account *Account, password string, light bool) (string, error) {
	if account == nil {
		return "", ErrNoAccountLoaded
	}
	if password == "" {
		return "", ErrNoPassword
	}
	scryptN, scryptP := keystore.StandardScryptN, keystore.StandardScryptP
	if light {
		scryptN, scryptP = keystore.LightScryptN, keystore.LightScryptP
	}
	ks := keystore.NewKeyStore(dir, scryptN, scryptP)
	stored, err := ks.ImportECDSA(account.PrivateKey(), password)
	if err != nil {
		return "", errors.Wrap(err, "failed to store key")
	}
	return stored.URL.Path, nil
}
