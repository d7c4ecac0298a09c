package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/threefoldfoundation/tft/tools/evmtools/eth"
	"github.com/threefoldfoundation/tft/tools/evmtools/wallet"
)

// Dialer opens a connection to the node at url.
// The returned close function is called once the command is done with the node.
type Dialer func(ctx context.Context, url string) (node eth.Node, closeNode func(), err error)

// NewSendTxCommand creates the transaction sender.
func NewSendTxCommand(dial Dialer) *cobra.Command {
	return newCommand(&cobra.Command{
		Use:     "sendtx node_url chain_id private_key to_address amount",
		Short:   "send ether from a private key to another account",
		Long:    "sign a legacy value transfer of amount ether with the given private key and submit it to the node",
		Example: "sendtx http://localhost:8545 1337 0x<private key> 0x<address> 0.5",
		Args:    cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendTx(cmd, dial, args[0], args[1], args[2], args[3], args[4])
		},
	})
}

func sendTx(cmd *cobra.Command, dial Dialer, nodeURL, chainIDArg, privateKey, to, amountArg string) error {
	ctx := cmd.Context()

	chainID, err := eth.ParseChainID(chainIDArg)
	if err != nil {
		return err
	}
	amount, err := eth.ParseEther(amountArg)
	if err != nil {
		return err
	}
	value, err := eth.EtherToWei(amount)
	if err != nil {
		return err
	}

	node, closeNode, err := dial(ctx, nodeURL)
	if err != nil {
		return err
	}
	if closeNode != nil {
		defer closeNode()
	}

	account, err := wallet.LoadAccount(privateKey)
	if err != nil {
		return err
	}
	sender, err := eth.NewSender(node, account, chainID)
	if err != nil {
		return err
	}

	hash, err := sender.Transfer(ctx, to, value)
	var fundsErr *eth.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		if err := fundsErr.Report(cmd.OutOrStdout()); err != nil {
			return err
		}
		return errReported
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash.Hex())
	return nil
}
