package main

import "github.com/OliveiraBeatr1z/bytebank-ledger/internal/cli"

func main() {
	cli.Execute()
}
