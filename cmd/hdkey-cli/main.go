package main

import "hdkey-core/cmd/hdkey-cli/cmd"

func main() {
	cmd.Execute()
}
