package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/threefoldfoundation/tft/tools/evmtools/p2p"
)

// NewP2PKeyCommand creates the libp2p identity generator.
func NewP2PKeyCommand() *cobra.Command {
	var privKeyPath, peerIDPath string
	c := newCommand(&cobra.Command{
		Use:   "p2pkey",
		Short: "generate a secp256k1 libp2p identity",
		Long:  "generate a secp256k1 libp2p key, write the hex encoded private key and the peer ID to files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, _, err := p2p.GenerateIdentity()
			if err != nil {
				return err
			}
			peerID, err := p2p.WriteIdentity(priv, privKeyPath, peerIDPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Peer ID:", peerID)
			return nil
		},
	})
	c.Flags().StringVar(&privKeyPath, "privKeyPath", "", "Private Key File Path")
	c.Flags().StringVar(&peerIDPath, "peerIDPath", "", "Peer ID File Path")
	c.MarkFlagRequired("privKeyPath")
	c.MarkFlagRequired("peerIDPath")
	return c
}
