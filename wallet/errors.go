package wallet

import "github.com/pkg/errors"

var (
	// ErrNoAccountLoaded is returned by operations that need an account when none is given.
	ErrNoAccountLoaded   = errors.New("no account was loaded")
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrNoPassword        = errors.New("a password is required")
)
