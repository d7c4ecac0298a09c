package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/threefoldfoundation/tft/tools/evmtools/wallet"
)

// NewExposeKeyCommand creates the keystore extractor.
func NewExposeKeyCommand() *cobra.Command {
	return newCommand(&cobra.Command{
		Use:   "exposekey accountfile password",
		Short: "print the raw private key of a keystore file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := wallet.DecryptKeyFile(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), account.PrivateKeyHex())
			return nil
		},
	})
}
