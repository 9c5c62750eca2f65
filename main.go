package main

import "client-ledger/cmd"

func main() {
	cmd.Execute()
}
