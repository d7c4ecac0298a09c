package eth

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimals between ether and wei
const EtherDecimals = 18

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// ParseEther parses a decimal amount of ether like "0.25" or "3".
func ParseEther(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(ErrInvalidAmount, "%q is not a decimal number", amount)
	}
	return d, nil
}

// EtherToWei converts an amount of ether to wei without any rounding.
// Negative amounts, amounts with more than 18 decimals and amounts
// that do not fit in a uint256 are rejected.
func EtherToWei(amount decimal.Decimal) (*big.Int, error) {
	if amount.IsNegative() {
		return nil, errors.Wrapf(ErrInvalidAmount, "%s is negative", amount)
	}
	wei := amount.Shift(EtherDecimals)
	if !wei.IsInteger() {
		return nil, errors.Wrapf(ErrInvalidAmount, "%s has more than %d decimals", amount, EtherDecimals)
	}
	value := wei.BigInt()
	if value.Cmp(maxUint256) > 0 {
		return nil, errors.Wrapf(ErrInvalidAmount, "%s ether does not fit in 256 bits", amount)
	}
	return value, nil
}

// WeiToEther converts an amount of wei to ether
func WeiToEther(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}
