package eth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/threefoldfoundation/tft/tools/evmtools/wallet"
)

// TransferGasLimit is the gas used by a plain value transfer
const TransferGasLimit = params.TxGas

// Sender signs value transfers with a single account and broadcasts them to a node.
type Sender struct {
	node    Node
	account *wallet.Account
	chainID *big.Int
}

// NewSender creates a Sender signing for chainID.
func NewSender(node Node, account *wallet.Account, chainID *big.Int) (*Sender, error) {
	if node == nil {
		return nil, errors.New("no node connection")
	}
	if account == nil {
		return nil, wallet.ErrNoAccountLoaded
	}
	if chainID == nil || chainID.Sign() <= 0 {
		return nil, ErrInvalidChainID
	}
	return &Sender{
		node:    node,
		account: account,
		chainID: new(big.Int).Set(chainID),
	}, nil
}

// Address returns the address of the sending account
func (s *Sender) Address() common.Address {
	return s.account.Address()
}

// TransferCost returns gasPrice*TransferGasLimit + value.
func TransferCost(gasPrice, value *big.Int) *big.Int {
	cost := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(TransferGasLimit))
	return cost.Add(cost, value)
}

// Transfer sends value wei to the to address as a legacy transaction and returns its hash.
//
// If the balance of the account does not cover value and the gas at the current
// gas price, an *InsufficientFundsError is returned and nothing is broadcasted.
func (s *Sender) Transfer(ctx context.Context, to string, value *big.Int) (common.Hash, error) {
	if value == nil || value.Sign() < 0 {
		return common.Hash{}, ErrInvalidAmount
	}
	recipient, err := ChecksumAddress(to)
	if err != nil {
		return common.Hash{}, err
	}
	from := s.account.Address()

	balance, err := s.node.BalanceAt(ctx, from, nil)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get the account balance")
	}
	gasPrice, err := s.node.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get the gas price")
	}
	nonce, err := s.node.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get the account nonce")
	}
	log.Debug().Str("from", from.Hex()).Str("balance", balance.String()).Str("gasPrice", gasPrice.String()).Uint64("nonce", nonce).Msg("account state")

	cost := TransferCost(gasPrice, value)
	if balance.Cmp(cost) < 0 {
		return common.Hash{}, &InsufficientFundsError{
			Balance:  balance,
			GasPrice: gasPrice,
			Gas:      TransferGasLimit,
			Value:    value,
			Cost:     cost,
		}
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &recipient,
		Value:    value,
		Gas:      TransferGasLimit,
		GasPrice: gasPrice,
	})
	signedTx, err := s.account.SignTx(tx, s.chainID)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to sign transaction")
	}
	if err = s.node.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to broadcast transaction")
	}
	log.Info().Str("tx", signedTx.Hash().Hex()).Str("to", recipient.Hex()).Str("ether", WeiToEther(value).String()).Msg("transfer submitted")
	return signedTx.Hash(), nil
}
