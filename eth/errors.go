package eth

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var (
	ErrNoNodeURL      = errors.New("no node url defined")
	ErrInvalidAddress = errors.New("invalid ethereum address")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidChainID = errors.New("invalid chain id")
)

// InsufficientFundsError is returned when the sending account can not pay for
// both the transferred value and the gas of a transfer.
type InsufficientFundsError struct {
	Balance  *big.Int
	GasPrice *big.Int
	Gas      uint64
	Value    *big.Int
	Cost     *big.Int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s wei is less than the total cost of %s wei", e.Balance, e.Cost)
}

// Report writes the full cost breakdown, one labeled value per line.
func (e *InsufficientFundsError) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Insufficient funds\nbalance: %s\ngas_price: %s\ngas: %d\namount (wei): %s\ntotal cost (wei): %s\n",
		e.Balance, e.GasPrice, e.Gas, e.Value, e.Cost,
	)
	return err
}
