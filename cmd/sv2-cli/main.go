package main

import "sv2/cmd/sv2-cli/cmd"

func main() {
	cmd.Execute()
}
