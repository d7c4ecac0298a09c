package eth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Node is the part of the Ethereum JSON-RPC api needed to send a value transfer.
// An *ethclient.Client satisfies it.
type Node interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Dial connects to the Ethereum node listening at url.
func Dial(ctx context.Context, url string) (*ethclient.Client, error) {
	if url == "" {
		return nil, ErrNoNodeURL
	}
	cl, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", url)
	}
	log.Debug().Str("url", url).Msg("connected to ethereum node")
	return cl, nil
}

// DialNode is Dial returning the connection as a Node together with
// the function closing it.
func DialNode(ctx context.Context, url string) (Node, func(), error) {
	cl, err := Dial(ctx, url)
	if err != nil {
		return nil, nil, err
	}
	return cl, cl.Close, nil
}

// ParseChainID parses a base 10 chain id, which has to be strictly positive.
func ParseChainID(s string) (*big.Int, error) {
	chainID, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidChainID, "%q is not an integer", s)
	}
	if chainID.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidChainID, "%s has to be positive", chainID)
	}
	return chainID, nil
}
