package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/threefoldfoundation/tft/tools/evmtools/wallet"
)

// NewCreateAddressCommand creates the account generator.
func NewCreateAddressCommand() *cobra.Command {
	var (
		keystoreDir string
		password    string
		light       bool
	)
	c := newCommand(&cobra.Command{
		Use:   "create-eth-address",
		Short: "generate a new ethereum account",
		Long:  "generate a new ethereum account and optionally store it encrypted in a keystore directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keystoreDir != "" && password == "" {
				return wallet.ErrNoPassword
			}
			account, err := wallet.NewAccount()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Address:", account.Address().Hex())
			fmt.Fprintln(out, "Private key:", account.PrivateKeyHex())
			if keystoreDir == "" {
				return nil
			}
			path, err := wallet.StoreKey(keystoreDir, account, password, light)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Keystore:", path)
			return nil
		},
	})
	c.Flags().StringVar(&keystoreDir, "keystore", "", "directory to store the encrypted key in")
	c.Flags().StringVar(&password, "password", "", "password to encrypt the key with")
	c.Flags().BoolVar(&light, "light", false, "use light scrypt parameters, faster but weaker")
	return c
}
