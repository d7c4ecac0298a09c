package main

import "github.com/threefoldfoundation/tft/tools/evmtools/cmd"

func main() {
	cmd.Execute(cmd.NewCreateAddressCommand())
}
