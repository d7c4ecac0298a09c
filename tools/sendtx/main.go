package main

import (
	"github.com/threefoldfoundation/tft/tools/evmtools/cmd"
	"github.com/threefoldfoundation/tft/tools/evmtools/eth"
)

func main() {
	cmd.Execute(cmd.NewSendTxCommand(eth.DialNode))
}
