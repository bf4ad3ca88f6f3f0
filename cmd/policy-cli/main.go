package main

import "wallet-policy-core/cmd/policy-cli/cmd"

func main() {
	cmd.Execute()
}
