package eth

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ChecksumAddress validates a hex encoded address, with or without 0x prefix and in any case,
// and returns it as an Address. Its Hex() is the EIP-55 checksummed form.
// The checksum of mixed case input is not verified.
func ChecksumAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, errors.Wrapf(ErrInvalidAddress, "%q", address)
	}
	return common.HexToAddress(address), nil
}
